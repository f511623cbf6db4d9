package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/jerrypanguo/Deutsch-Learning/internal/analysis"
	"github.com/jerrypanguo/Deutsch-Learning/internal/correction"
	"github.com/jerrypanguo/Deutsch-Learning/internal/pronunciation"
	"github.com/jerrypanguo/Deutsch-Learning/internal/translation"
)

// Renderer writes everything the user sees. In plain mode results are
// printed as text lists instead of tables.
type Renderer struct {
	out   io.Writer
	plain bool

	title   func(a ...interface{}) string
	success func(a ...interface{}) string
	warn    func(a ...interface{}) string
	fail    func(a ...interface{}) string
	note    func(a ...interface{}) string
}

// NewRenderer creates a renderer writing to out
func NewRenderer(out io.Writer, plain bool) *Renderer {
	return &Renderer{
		out:     out,
		plain:   plain,
		title:   color.New(color.FgCyan, color.Bold).SprintFunc(),
		success: color.New(color.FgGreen, color.Bold).SprintFunc(),
		warn:    color.New(color.FgYellow, color.Bold).SprintFunc(),
		fail:    color.New(color.FgRed, color.Bold).SprintFunc(),
		note:    color.New(color.FgGreen, color.Italic).SprintFunc(),
	}
}

func (r *Renderer) println(a ...interface{}) {
	fmt.Fprintln(r.out, a...)
}

func (r *Renderer) newTable(header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(r.out)
	if len(header) > 0 {
		table.SetHeader(header)
		table.SetAutoFormatHeaders(false)
	}
	table.SetAutoWrapText(false)
	return table
}

// Welcome prints the banner
func (r *Renderer) Welcome() {
	line := strings.Repeat("─", 36)
	r.println()
	r.println(r.title(line))
	r.println(r.title(welcomeTitle))
	r.println(r.note(welcomeSubtitle))
	r.println(r.title(line))
	r.println()
}

// Menu prints the numbered main menu
func (r *Renderer) Menu() {
	table := r.newTable()
	table.SetBorder(false)
	table.SetColumnSeparator("")
	table.AppendBulk(menuItems)
	table.Render()
}

// Prompt prints an input prompt without a newline
func (r *Renderer) Prompt(prompt string) {
	fmt.Fprint(r.out, prompt)
}

// ModeHeader prints the title and instructions of a feature mode
func (r *Renderer) ModeHeader(m modeText) {
	r.println()
	r.println(r.title(m.title))
	r.println(m.intro)
	r.println(quitHint)
	r.println()
}

// Warning prints a highlighted warning line
func (r *Renderer) Warning(msg string) {
	r.println(r.warn(msg))
}

// Error prints a highlighted error line
func (r *Renderer) Error(msg string) {
	r.println(r.fail(msg))
}

// Farewell prints the goodbye message
func (r *Renderer) Farewell() {
	r.println()
	r.println(r.title(farewellMessage))
	r.println()
}

// Translation prints a translation and its gloss block
func (r *Renderer) Translation(res translation.Result) {
	r.println()
	r.println(r.success("翻译结果: ") + res.Translated)
	if res.Explanation != "" {
		r.println()
		r.println(r.success("详细解释: "))
		r.println(res.Explanation)
	}
	r.println()
}

// Analysis prints the sentence translation followed by one row per word
func (r *Renderer) Analysis(sentence string, results []analysis.TokenAnalysis) {
	r.println()
	r.println(r.success("句子翻译: ") + sentence)
	r.println()

	if r.plain {
		fmt.Fprint(r.out, analysis.FormatAnalysis(results))
		r.println()
		return
	}

	table := r.newTable("单词", "词性", "词根", "说明")
	for _, res := range results {
		if res.Error != "" {
			table.Append([]string{res.Word, "", "", res.Error})
			continue
		}
		table.Append([]string{res.Word, res.DisplayPOS(), res.Lemma, res.Explanation})
	}
	table.Render()
	r.println()
}

// Correction prints the check result
func (r *Renderer) Correction(res correction.Result) {
	if !res.HasChanges {
		r.println(r.success(correction.NoErrorsMessage))
		r.println()
		return
	}

	if r.plain {
		r.println()
		fmt.Fprint(r.out, correction.FormatCorrections(res))
		return
	}

	r.println()
	r.println(r.warn("原始文本: ") + res.Original)
	if !res.LimitedMode {
		r.println(r.success("纠正后的文本: ") + res.Corrected)
	}
	r.println()

	table := r.newTable("错误/建议", "建议修改")
	for _, e := range res.Errors {
		replacements := "无建议"
		if len(e.Replacements) > 0 {
			replacements = strings.Join(e.Replacements, ", ")
		}
		table.Append([]string{e.Message, replacements})
	}
	table.Render()
	r.println()
}

// Pronunciation prints the tips and, when present, the IPA breakdown
func (r *Renderer) Pronunciation(res pronunciation.Result) {
	r.println()
	r.println(r.title(fmt.Sprintf("'%s' 的发音指导", res.Text)))

	if r.plain {
		for _, tip := range res.Tips {
			r.println("• " + tip)
		}
	} else {
		table := r.newTable("发音提示")
		for _, tip := range res.Tips {
			table.Append([]string{tip})
		}
		table.Render()
	}

	if res.IPA != "" {
		r.println()
		r.println(r.success("国际音标 (IPA): "))
		r.println(res.IPA)
	}
	r.println()
}
