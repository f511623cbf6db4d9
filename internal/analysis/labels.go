package analysis

const unknownPOSLabel = "未知"

var posLabels = map[string]string{
	"ADJ":   "形容词",
	"ADP":   "介词",
	"ADV":   "副词",
	"AUX":   "助动词",
	"CCONJ": "并列连词",
	"DET":   "限定词",
	"INTJ":  "感叹词",
	"NOUN":  "名词",
	"NUM":   "数词",
	"PART":  "虚词",
	"PRON":  "代词",
	"PROPN": "专有名词",
	"PUNCT": "标点符号",
	"SCONJ": "从属连词",
	"SYM":   "符号",
	"VERB":  "动词",
	"X":     "其他",
}

var caseLabels = map[string]string{
	"Nom": "主格",
	"Gen": "属格",
	"Dat": "与格",
	"Acc": "宾格",
}

var tenseLabels = map[string]string{
	"Pres": "现在时",
	"Past": "过去时",
	"Perf": "完成时",
	"Fut":  "将来时",
}

var numberLabels = map[string]string{
	"Sing": "单数",
	"Plur": "复数",
}

var genderLabels = map[string]string{
	"Masc": "阳性",
	"Fem":  "阴性",
	"Neut": "中性",
}

var personLabels = map[string]string{
	"1": "第一人称",
	"2": "第二人称",
	"3": "第三人称",
}

// POSLabel returns the Chinese name of a UPOS tag
func POSLabel(pos string) string {
	if label, ok := posLabels[pos]; ok {
		return label
	}
	return unknownPOSLabel
}
