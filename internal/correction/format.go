package correction

import (
	"fmt"
	"strings"
)

// NoErrorsMessage is shown when a check finds nothing to correct
const NoErrorsMessage = "没有发现错误，文本正确！"

const limitedBanner = "注意：完整的语法检查功能不可用（无法连接 LanguageTool 服务）。\n以下是基于简单规则的建议：\n\n"

// FormatCorrections renders a Result as plain text
func FormatCorrections(r Result) string {
	if !r.HasChanges {
		return NoErrorsMessage
	}

	var sb strings.Builder
	if r.LimitedMode {
		sb.WriteString(limitedBanner)
	} else {
		fmt.Fprintf(&sb, "纠正后的文本：%s\n\n错误详情：\n", r.Corrected)
	}

	for i, e := range r.Errors {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, e.Message)
		if len(e.Replacements) > 0 {
			fmt.Fprintf(&sb, "   建议修改: %s\n", strings.Join(e.Replacements, ", "))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
