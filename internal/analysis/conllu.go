package analysis

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"
)

const conlluColumns = 10

// ParseCoNLLU reads the word lines of a CoNLL-U document. Every token maps
// to one syntactic word: empty nodes (1.1) are skipped, and the surface
// form of a multi-word token range (3-4 zum) is kept on the words it
// covers.
func ParseCoNLLU(doc string) ([]Token, error) {
	var (
		tokens     []Token
		surface    string
		surfaceEnd int
	)

	scanner := bufio.NewScanner(strings.NewReader(doc))
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			surface, surfaceEnd = "", 0
			continue
		}
		if strings.HasPrefix(line, "#") {
			continue
		}

		cols := strings.Split(line, "\t")
		if len(cols) != conlluColumns {
			return nil, fmt.Errorf("line %d: expected %d columns, got %d", lineNo, conlluColumns, len(cols))
		}

		if strings.Contains(cols[0], ".") {
			continue
		}
		if _, end, ok := strings.Cut(cols[0], "-"); ok {
			n, err := strconv.Atoi(end)
			if err != nil {
				return nil, fmt.Errorf("line %d: bad range %q", lineNo, cols[0])
			}
			surface, surfaceEnd = cols[1], n
			continue
		}

		tok := Token{
			Text:  cols[1],
			Lemma: cols[2],
			POS:   cols[3],
			Tag:   cols[4],
			Morph: ParseFeatures(cols[5]),
			Dep:   cols[7],
		}
		if id, err := strconv.Atoi(cols[0]); err == nil && id <= surfaceEnd {
			tok.Surface = surface
		}
		tokens = append(tokens, tok)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read CoNLL-U: %w", err)
	}

	return tokens, nil
}
