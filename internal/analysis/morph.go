package analysis

import (
	"sort"
	"strings"
)

// Features holds the morphological features of a token, e.g.
// Case=Nom|Gender=Neut|Number=Sing becomes {"Case": "Nom", ...}.
// Multi-valued features keep their comma separated value.
type Features map[string]string

// ParseFeatures parses a CoNLL-U FEATS column. "_" and "" give an empty map.
func ParseFeatures(s string) Features {
	f := Features{}
	if s == "" || s == "_" {
		return f
	}
	for _, pair := range strings.Split(s, "|") {
		name, value, ok := strings.Cut(pair, "=")
		if !ok || name == "" {
			continue
		}
		f[name] = value
	}
	return f
}

// Get returns the value of feature name or ""
func (f Features) Get(name string) string {
	return f[name]
}

// Has reports whether feature name has value, also inside a multi-valued
// feature like PronType=Art,Dem.
func (f Features) Has(name, value string) bool {
	v, ok := f[name]
	if !ok {
		return false
	}
	for _, part := range strings.Split(v, ",") {
		if part == value {
			return true
		}
	}
	return false
}

// String renders the features in CoNLL-U order (sorted by name)
func (f Features) String() string {
	if len(f) == 0 {
		return "_"
	}
	names := make([]string, 0, len(f))
	for name := range f {
		names = append(names, name)
	}
	sort.Strings(names)

	pairs := make([]string, len(names))
	for i, name := range names {
		pairs[i] = name + "=" + f[name]
	}
	return strings.Join(pairs, "|")
}
