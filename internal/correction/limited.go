package correction

import (
	"context"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// CategoryLowConfidence marks suggestions from the fallback table
const CategoryLowConfidence = "LOW_CONFIDENCE"

type hint struct {
	pattern     string
	replacement string
}

// Checked in order. The table is a toy: "ss" fires on "Wasser" too.
var hints = []hint{
	{"ss", "ß"},
	{"ae", "ä"},
	{"oe", "ö"},
	{"ue", "ü"},
	{"ein der", "ein"},
	{"ein die", "eine"},
	{"ein das", "ein"},
	{"eine der", "ein"},
	{"eine das", "ein"},
}

// Limited lists hints without changing the text
type Limited struct{}

func NewLimited() *Limited {
	return &Limited{}
}

func (l *Limited) Limited() bool {
	return true
}

// Correct collects hints for text. Corrected is always the original text.
func (l *Limited) Correct(_ context.Context, text string) Result {
	var errs []ErrorRecord

	lower := strings.ToLower(text)
	for _, h := range hints {
		if !strings.Contains(lower, h.pattern) {
			continue
		}
		errs = append(errs, ErrorRecord{
			Message:      fmt.Sprintf("可能需要将'%s'改为'%s'（低可信度建议）", h.pattern, h.replacement),
			Category:     CategoryLowConfidence,
			Replacements: []string{h.replacement},
		})
	}

	if first, size := utf8.DecodeRuneInString(text); unicode.IsLower(first) && utf8.RuneCountInString(text) > 1 {
		errs = append(errs, ErrorRecord{
			Message:      "德语句子首字母应该大写",
			Category:     CategoryLowConfidence,
			Replacements: []string{string(unicode.ToUpper(first)) + text[size:]},
		})
	}

	if text != "" && !strings.HasSuffix(text, ".") && !strings.HasSuffix(text, "!") && !strings.HasSuffix(text, "?") {
		errs = append(errs, ErrorRecord{
			Message:      "句子结尾应该有标点符号",
			Category:     CategoryLowConfidence,
			Replacements: []string{text + "."},
		})
	}

	return Result{
		Original:    text,
		Corrected:   text,
		HasChanges:  len(errs) > 0,
		Errors:      errs,
		LimitedMode: true,
	}
}
