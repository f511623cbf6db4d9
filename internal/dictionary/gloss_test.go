package dictionary

import "testing"

func TestGloss(t *testing.T) {
	tests := []struct {
		name    string
		entries []Entry
		want    string
	}{
		{
			name:    "no entries",
			entries: nil,
			want:    "",
		},
		{
			name: "single definition",
			entries: []Entry{{Meanings: []Meaning{
				{PartOfSpeech: "noun", Definitions: []Definition{{Definition: "book"}}},
			}}},
			want: "noun: book",
		},
		{
			name: "skips meanings without part of speech or definitions",
			entries: []Entry{{Meanings: []Meaning{
				{PartOfSpeech: "", Definitions: []Definition{{Definition: "x"}}},
				{PartOfSpeech: "verb"},
				{PartOfSpeech: "adjective", Definitions: []Definition{{Definition: "big"}, {Definition: "tall"}, {Definition: "great"}}},
			}}},
			want: "adjective: big; tall",
		},
		{
			name: "only first entry",
			entries: []Entry{
				{Meanings: []Meaning{{PartOfSpeech: "noun", Definitions: []Definition{{Definition: "first"}}}}},
				{Meanings: []Meaning{{PartOfSpeech: "noun", Definitions: []Definition{{Definition: "second"}}}}},
			},
			want: "noun: first",
		},
		{
			name: "nothing qualifies",
			entries: []Entry{{Meanings: []Meaning{{PartOfSpeech: "noun"}}}},
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Gloss(tt.entries); got != tt.want {
				t.Errorf("Gloss() = %q, want %q", got, tt.want)
			}
		})
	}
}
