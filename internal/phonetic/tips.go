package phonetic

import "strings"

// DefaultTip is returned when no spelling in the table occurs
const DefaultTip = "没有发现特殊发音难点，请注意德语的重音通常在第一个音节。"

type rule struct {
	spellings []string
	tip       string
}

// Matching is case sensitive, so a capital "W" at the start of a word does
// not trigger the 'w' tip.
var rules = []rule{
	{[]string{"ei"}, "'ei' 发音: [aɪ̯] - 双元音，类似汉语\"爱\"的音"},
	{[]string{"ie"}, "'ie' 发音: [iː] - 长元音，发长\"i\"的音"},
	{[]string{"eu", "äu"}, "'eu' 发音: [ɔʏ̯] - 双元音，类似汉语\"欧伊\"连读的音"},
	{[]string{"ch"}, "'ch' 发音: 在i、e、ä、ö、ü后发 [ç]（像汉语\"希\"的音）；在a、o、u后发 [x]（像汉语\"喝\"的音）"},
	{[]string{"sch"}, "'sch' 发音: [ʃ] - 清擦音，类似汉语\"诗\"的声母"},
	{[]string{"w"}, "'w' 发音: [v] - 浊擦音，发\"v\"的音"},
	{[]string{"v"}, "'v' 发音: 大多数情况下发 [f]，某些外来词中发 [v]"},
	{[]string{"z"}, "'z' 发音: [ts] - 清塞擦音，类似汉语\"资\"的声母"},
	{[]string{"r"}, "'r' 发音: [ʁ] - 浊擦音，发自喉咙的\"r\"音"},
	{[]string{"ß"}, "'ß' 发音: [s] - 清擦音，发\"s\"的音"},
	{[]string{"ü"}, "'ü' 发音: [y] - 圆唇前高元音，嘴型发\"i\"但嘴唇圆"},
	{[]string{"ö"}, "'ö' 发音: [ø] - 圆唇前中元音，嘴型发\"e\"但嘴唇圆"},
	{[]string{"ä"}, "'ä' 发音: [ɛ] - 前中低元音，类似汉语\"哎\"的音"},
}

// Tips returns the pronunciation tips for text in table order, or only
// DefaultTip when nothing matches.
func Tips(text string) []string {
	var tips []string
	for _, r := range rules {
		for _, s := range r.spellings {
			if strings.Contains(text, s) {
				tips = append(tips, r.tip)
				break
			}
		}
	}

	if len(tips) == 0 {
		return []string{DefaultTip}
	}
	return tips
}
