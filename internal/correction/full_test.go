package correction

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
)

type fakeChecker struct {
	matches  []Match
	checkErr error
	availErr error
	checks   int
}

func (f *fakeChecker) Check(ctx context.Context, text string) ([]Match, error) {
	f.checks++
	return f.matches, f.checkErr
}

func (f *fakeChecker) Available(ctx context.Context) error {
	return f.availErr
}

func TestProbe(t *testing.T) {
	t.Run("available checker gives full corrector", func(t *testing.T) {
		c := Probe(context.Background(), &fakeChecker{}, zerolog.Nop())
		if c.Limited() {
			t.Error("Expected full corrector")
		}
		if _, ok := c.(*Full); !ok {
			t.Errorf("Expected *Full, got %T", c)
		}
	})
	t.Run("unavailable checker gives limited corrector", func(t *testing.T) {
		c := Probe(context.Background(), &fakeChecker{availErr: errors.New("connection refused")}, zerolog.Nop())
		if !c.Limited() {
			t.Error("Expected limited corrector")
		}
	})
	t.Run("nil checker gives limited corrector", func(t *testing.T) {
		c := Probe(context.Background(), nil, zerolog.Nop())
		if _, ok := c.(*Limited); !ok {
			t.Errorf("Expected *Limited, got %T", c)
		}
	})
}

func TestFullCorrect(t *testing.T) {
	checker := &fakeChecker{matches: []Match{
		{
			Message:      "Dieser Satz fängt nicht mit einem großen Buchstaben an.",
			Context:      "haus ist gross",
			Offset:       0,
			Length:       4,
			Category:     "CASING",
			RuleID:       "UPPERCASE_SENTENCE_START",
			Replacements: []string{"Haus"},
		},
		{
			Message:      "Möglicher Tippfehler gefunden.",
			Context:      "haus ist gross",
			Offset:       9,
			Length:       5,
			Category:     "TYPOS",
			RuleID:       "GERMAN_SPELLER_RULE",
			Replacements: []string{"groß", "Gross", "grob", "gros"},
		},
	}}
	full := NewFull(checker, nil, zerolog.Nop())

	result := full.Correct(context.Background(), "haus ist gross")

	if result.Corrected != "Haus ist groß" {
		t.Errorf("Expected 'Haus ist groß', got %q", result.Corrected)
	}
	if !result.HasChanges {
		t.Error("Expected HasChanges")
	}
	if result.LimitedMode {
		t.Error("Full result must not be limited")
	}
	if len(result.Errors) != 2 {
		t.Fatalf("Expected 2 errors, got %d", len(result.Errors))
	}
	if got := result.Errors[1].Replacements; len(got) != MaxReplacements {
		t.Errorf("Expected %d replacements, got %v", MaxReplacements, got)
	}
	if result.Errors[0].RuleID != "UPPERCASE_SENTENCE_START" || result.Errors[0].Category != "CASING" {
		t.Errorf("Unexpected error record %+v", result.Errors[0])
	}
	if result.Errors[1].Offset != 9 || result.Errors[1].Length != 5 {
		t.Errorf("Unexpected offset/length %+v", result.Errors[1])
	}
}

func TestFullCorrect_NoMatches(t *testing.T) {
	full := NewFull(&fakeChecker{}, nil, zerolog.Nop())

	result := full.Correct(context.Background(), "Das ist gut.")
	if result.HasChanges || len(result.Errors) != 0 {
		t.Errorf("Expected no changes, got %+v", result)
	}
	if result.Corrected != "Das ist gut." {
		t.Errorf("Unexpected corrected text %q", result.Corrected)
	}
}

func TestFullCorrect_FallsBackOnError(t *testing.T) {
	checker := &fakeChecker{checkErr: errors.New("503")}
	full := NewFull(checker, nil, zerolog.Nop())

	result := full.Correct(context.Background(), "haus ist gross")
	if !result.LimitedMode {
		t.Error("Expected limited result after checker failure")
	}
	if result.Corrected != result.Original {
		t.Error("Fallback must not change the text")
	}
	if len(result.Errors) != 3 {
		t.Errorf("Expected 3 hints, got %d", len(result.Errors))
	}
	if full.Limited() {
		t.Error("Full corrector stays full after a failed call")
	}

	// The checker is still consulted on the next call
	full.Correct(context.Background(), "Hallo.")
	if checker.checks != 2 {
		t.Errorf("Expected 2 checks, got %d", checker.checks)
	}
}

func TestApplyReplacements(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		matches []Match
		want    string
	}{
		{
			name: "unsorted matches",
			text: "ich gehe nach hause",
			matches: []Match{
				{Offset: 14, Length: 5, Replacements: []string{"Hause"}},
				{Offset: 0, Length: 3, Replacements: []string{"Ich"}},
			},
			want: "Ich gehe nach Hause",
		},
		{
			name: "no replacements keeps text",
			text: "Das ist gut",
			matches: []Match{
				{Offset: 0, Length: 3},
			},
			want: "Das ist gut",
		},
		{
			name: "overlapping match skipped",
			text: "abcdef",
			matches: []Match{
				{Offset: 0, Length: 4, Replacements: []string{"X"}},
				{Offset: 2, Length: 2, Replacements: []string{"Y"}},
			},
			want: "Xef",
		},
		{
			name: "out of range skipped",
			text: "abc",
			matches: []Match{
				{Offset: 2, Length: 5, Replacements: []string{"X"}},
			},
			want: "abc",
		},
		{
			name: "offsets after non-ascii",
			text: "Ich heiße mueller",
			matches: []Match{
				{Offset: 10, Length: 7, Replacements: []string{"Müller"}},
			},
			want: "Ich heiße Müller",
		},
		{
			name: "offsets count utf-16 units",
			text: "😀 gehts",
			matches: []Match{
				{Offset: 3, Length: 5, Replacements: []string{"geht's"}},
			},
			want: "😀 geht's",
		},
		{
			name: "insertion",
			text: "Hallo",
			matches: []Match{
				{Offset: 5, Length: 0, Replacements: []string{"!"}},
			},
			want: "Hallo!",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ApplyReplacements(tt.text, tt.matches); got != tt.want {
				t.Errorf("ApplyReplacements() = %q, want %q", got, tt.want)
			}
		})
	}
}
