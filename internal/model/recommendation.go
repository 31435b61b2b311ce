package model

// Thresholds Пороги срабатывания рекомендаций. Передаются клиентом, не сохраняются
type Thresholds struct {
	ColorParity int
	Dozen       int
	Diagonal    int
}

// ThresholdBounds Допустимый диапазон одного порога и значение по умолчанию
type ThresholdBounds struct {
	Min     int
	Max     int
	Default int
}

type RecommendationKind string

const (
	RecommendationColor    RecommendationKind = "color"
	RecommendationParity   RecommendationKind = "parity"
	RecommendationDozen    RecommendationKind = "dozen"
	RecommendationDiagonal RecommendationKind = "diagonal"
)

// Recommendation Подсказка по одной из серий.
// Current и Suggested хранят метки в строковом виде (red, even, third, diagonal_2...)
type Recommendation struct {
	Kind      RecommendationKind
	Count     int
	Current   []string
	Suggested string
	Range     string // только для дюжин: 25-36
	Numbers   []int  // только для диагоналей
	Message   string
}
