package analysis

import "strings"

// FormatAnalysis renders results as a bullet list, one line per word:
//
//	• Haus：NOUN (名词)，中性名词，主格
//
// The lemma is appended only when it differs from the word.
func FormatAnalysis(results []TokenAnalysis) string {
	var sb strings.Builder
	for _, r := range results {
		sb.WriteString("• ")
		sb.WriteString(r.Word)
		sb.WriteString("：")
		if r.Error != "" {
			sb.WriteString(r.Error)
			sb.WriteString("\n")
			continue
		}
		sb.WriteString(r.DisplayPOS())
		if r.Explanation != "" {
			sb.WriteString(explanationSep)
			sb.WriteString(r.Explanation)
		}
		if r.Lemma != "" && r.Lemma != r.Word {
			sb.WriteString(explanationSep)
			sb.WriteString("词根：")
			sb.WriteString(r.Lemma)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
