package correction

import (
	"context"
	"testing"
)

func messages(r Result) []string {
	var out []string
	for _, e := range r.Errors {
		out = append(out, e.Message)
	}
	return out
}

func TestLimitedCorrect_LowercaseWithoutPeriod(t *testing.T) {
	result := NewLimited().Correct(context.Background(), "haus ist gross")

	want := []struct {
		message     string
		replacement string
	}{
		{"可能需要将'ss'改为'ß'（低可信度建议）", "ß"},
		{"德语句子首字母应该大写", "Haus ist gross"},
		{"句子结尾应该有标点符号", "haus ist gross."},
	}

	if len(result.Errors) != len(want) {
		t.Fatalf("Expected %d errors, got %v", len(want), messages(result))
	}
	for i, w := range want {
		e := result.Errors[i]
		if e.Message != w.message {
			t.Errorf("Error %d: expected %q, got %q", i, w.message, e.Message)
		}
		if len(e.Replacements) != 1 || e.Replacements[0] != w.replacement {
			t.Errorf("Error %d: expected replacement %q, got %v", i, w.replacement, e.Replacements)
		}
		if e.Category != CategoryLowConfidence {
			t.Errorf("Error %d: expected category %s, got %s", i, CategoryLowConfidence, e.Category)
		}
	}

	if result.Corrected != result.Original {
		t.Errorf("Limited mode must not change the text: %q != %q", result.Corrected, result.Original)
	}
	if !result.HasChanges || !result.LimitedMode {
		t.Errorf("Expected HasChanges and LimitedMode, got %+v", result)
	}
}

func TestLimitedCorrect_NeverMutates(t *testing.T) {
	inputs := []string{
		"",
		"a",
		"Das ist gut.",
		"ich habe ein das Buch",
		"Wasser und Kaese",
		"über alles",
		"Gruesse!",
		"eine der besten?",
	}

	limited := NewLimited()
	for _, in := range inputs {
		result := limited.Correct(context.Background(), in)
		if result.Corrected != in || result.Original != in {
			t.Errorf("Correct(%q) changed the text to %q", in, result.Corrected)
		}
		if result.HasChanges != (len(result.Errors) > 0) {
			t.Errorf("Correct(%q): HasChanges=%v with %d errors", in, result.HasChanges, len(result.Errors))
		}
		if !result.LimitedMode {
			t.Errorf("Correct(%q): expected LimitedMode", in)
		}
	}
}

func TestLimitedCorrect_Rules(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"clean", "Das ist gut.", nil},
		{"single lowercase letter", "a", []string{"句子结尾应该有标点符号"}},
		{"empty", "", nil},
		{"lowercase umlaut", "über alles!", []string{"德语句子首字母应该大写"}},
		{"case insensitive", "Das ist GROSS!", []string{"可能需要将'ss'改为'ß'（低可信度建议）"}},
		{"article table order", "Ich sehe ein das Haus eine der Katzen.", []string{
			"可能需要将'ein das'改为'ein'（低可信度建议）",
			"可能需要将'eine der'改为'ein'（低可信度建议）",
		}},
		{"question mark", "Wie geht es dir?", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := messages(NewLimited().Correct(context.Background(), tt.text))
			if len(got) != len(tt.want) {
				t.Fatalf("Expected %v, got %v", tt.want, got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Message %d: expected %q, got %q", i, tt.want[i], got[i])
				}
			}
		})
	}
}

func TestLimitedCorrect_CapitalizesUmlaut(t *testing.T) {
	result := NewLimited().Correct(context.Background(), "öl ist teuer.")

	if len(result.Errors) != 1 {
		t.Fatalf("Expected one error, got %v", messages(result))
	}
	if result.Errors[0].Replacements[0] != "Öl ist teuer." {
		t.Errorf("Expected 'Öl ist teuer.', got %q", result.Errors[0].Replacements[0])
	}
}
