package console

const (
	welcomeTitle    = "德语学习助手 (Deutsch Lernhelfer)"
	welcomeSubtitle = "专为A1级别德语学习者设计"

	menuPrompt = "请选择功能 (1-5): "

	invalidChoiceMessage = "无效选择，请重新输入！"
	emptyInputMessage    = "请输入有效文本！"
	inputTooLongMessage  = "输入过长，请缩短后重试！"
	farewellMessage      = "感谢使用德语学习助手！Auf Wiedersehen!"
	quitHint             = "输入 'q' 返回主菜单。"

	limitedWarning     = "警告：完整的语法检查功能不可用（无法连接 LanguageTool 服务）"
	limitedWarningMore = "将使用基本拼写检查功能，功能有限"

	noAudioMessage       = "无法生成音频文件"
	playingMessage       = "正在播放发音..."
	playbackFailed       = "无法播放音频，请检查您的音频设置"
	playbackDisabledNote = "音频播放已关闭，音频文件："
)

var menuItems = [][]string{
	{"1", "翻译功能"},
	{"2", "语法分析"},
	{"3", "拼写纠错"},
	{"4", "发音指导"},
	{"5", "退出程序"},
}

type modeText struct {
	title  string
	intro  string
	prompt string
}

var modes = map[State]modeText{
	Translate: {
		title:  "翻译模式",
		intro:  "输入德语文本将翻译成中文，输入中文文本将翻译成德语。",
		prompt: "请输入要翻译的文本: ",
	},
	Analyze: {
		title:  "语法分析模式",
		intro:  "分析德语句子的词性、单词成分和时态",
		prompt: "请输入要分析的德语句子: ",
	},
	Correct: {
		title:  "拼写纠错模式",
		intro:  "检查并纠正德语句子中的拼写和语法错误",
		prompt: "请输入要纠错的德语句子: ",
	},
	Pronounce: {
		title:  "发音指导模式",
		intro:  "获取德语单词的发音指导和音频",
		prompt: "请输入要查询发音的德语单词: ",
	},
}
