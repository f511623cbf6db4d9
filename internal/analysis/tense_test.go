package analysis

import "testing"

func TestClassifyTense(t *testing.T) {
	tests := []struct {
		name   string
		tokens []Token
		want   Tense
	}{
		{
			name: "present",
			tokens: []Token{
				tok("Ich", "ich", "PRON", "Case=Nom"),
				tok("lese", "lesen", "VERB", "Tense=Pres|VerbForm=Fin"),
			},
			want: Praesens,
		},
		{
			name: "perfekt",
			tokens: []Token{
				tok("Ich", "ich", "PRON", ""),
				tok("habe", "haben", "AUX", "Tense=Pres|VerbForm=Fin"),
				tok("gelesen", "lesen", "VERB", "VerbForm=Part"),
			},
			want: Perfekt,
		},
		{
			name: "perfekt wins over past participle marked past",
			tokens: []Token{
				tok("habe", "haben", "AUX", "Tense=Pres"),
				tok("gelesen", "lesen", "VERB", "Tense=Past|VerbForm=Part"),
			},
			want: Perfekt,
		},
		{
			name: "plusquamperfekt",
			tokens: []Token{
				tok("hatte", "haben", "AUX", "Tense=Past"),
				tok("gelesen", "lesen", "VERB", "VerbForm=Part"),
			},
			want: Plusquamperfekt,
		},
		{
			name: "praeteritum verb",
			tokens: []Token{
				tok("Ich", "ich", "PRON", ""),
				tok("las", "lesen", "VERB", "Tense=Past|VerbForm=Fin"),
			},
			want: Praeteritum,
		},
		{
			name: "praeteritum aux",
			tokens: []Token{
				tok("war", "sein", "AUX", "Tense=Past"),
				tok("müde", "müde", "ADJ", ""),
			},
			want: Praeteritum,
		},
		{
			name: "futur",
			tokens: []Token{
				tok("werde", "werden", "AUX", "Tense=Pres"),
				tok("lesen", "lesen", "VERB", "VerbForm=Inf"),
			},
			want: Futur,
		},
		{
			name: "werden without verb",
			tokens: []Token{
				tok("wird", "werden", "AUX", "Tense=Pres"),
				tok("alt", "alt", "ADJ", ""),
			},
			want: Praesens,
		},
		{
			name:   "empty",
			tokens: nil,
			want:   Praesens,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyTense(tt.tokens); got != tt.want {
				t.Errorf("ClassifyTense() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClassifyTense_FromCoNLLU(t *testing.T) {
	tokens, err := ParseCoNLLU(perfektDoc)
	if err != nil {
		t.Fatalf("ParseCoNLLU() error = %v", err)
	}
	if got := ClassifyTense(tokens); got != Perfekt {
		t.Errorf("Expected Perfekt, got %v", got)
	}
}

func TestTenseLabel(t *testing.T) {
	tests := []struct {
		tense Tense
		want  string
	}{
		{Praesens, "现在时 (Präsens)"},
		{Perfekt, "现在完成时 (Perfekt)"},
		{Plusquamperfekt, "过去完成时 (Plusquamperfekt)"},
		{Praeteritum, "过去时 (Präteritum)"},
		{Futur, "将来时 (Futur)"},
	}

	for _, tt := range tests {
		if got := tt.tense.Label(); got != tt.want {
			t.Errorf("Label() = %q, want %q", got, tt.want)
		}
	}
}
