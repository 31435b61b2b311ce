package i18n

// Ключи каталога сообщений
const (
	MsgRecommendationColor    = "recommendation.color"
	MsgRecommendationParity   = "recommendation.parity"
	MsgRecommendationDozen    = "recommendation.dozen"
	MsgRecommendationDiagonal = "recommendation.diagonal"
	MsgNoPattern              = "recommendation.none"
)

// LabelKey Ключ названия метки: red, even, third, diagonal_1...
func LabelKey(label string) string {
	return "label." + label
}

// PluralLabelKey Ключ названия метки во множественном числе
func PluralLabelKey(label string) string {
	return "label." + label + ".plural"
}
