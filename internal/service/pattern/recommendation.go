package pattern

import (
	"roulette_patterns/internal/i18n"
	"roulette_patterns/internal/model"
	servModel "roulette_patterns/internal/service/pattern/model"
	"strconv"
	"strings"

	"golang.org/x/text/message"
)

// Recommend Рекомендации по текущим сериям в порядке: цвет, чётность, дюжины, диагонали.
// Несколько рекомендаций могут сработать одновременно. Message не заполняется, см. Render
func Recommend(streaks model.Streaks, th model.Thresholds) []model.Recommendation {
	recs := make([]model.Recommendation, 0, 4)

	// Цвет
	if c := streaks.Color; c.Count >= th.ColorParity {
		if opposite, ok := oppositeColor(c.Active); ok {
			recs = append(recs, model.Recommendation{
				Kind:      model.RecommendationColor,
				Count:     c.Count,
				Current:   []string{string(c.Active)},
				Suggested: string(opposite),
			})
		}
	}

	// Чётность
	if p := streaks.Parity; p.Count >= th.ColorParity {
		if opposite, ok := oppositeParity(p.Active); ok {
			recs = append(recs, model.Recommendation{
				Kind:      model.RecommendationParity,
				Count:     p.Count,
				Current:   []string{string(p.Active)},
				Suggested: string(opposite),
			})
		}
	}

	// Дюжины: ровно две активные, советуем третью
	if d := streaks.Dozen; d.Count >= th.Dozen && d.Active.Len() == 2 {
		missing := d.Active.Missing()[0]
		current := make([]string, 0, 2)
		for _, label := range d.Active.Labels() {
			current = append(current, string(label))
		}
		recs = append(recs, model.Recommendation{
			Kind:      model.RecommendationDozen,
			Count:     d.Count,
			Current:   current,
			Suggested: string(missing),
			Range:     servModel.DozenRanges[missing],
		})
	}

	// Диагонали: советуем другой сектор без общих чисел
	if g := streaks.Diagonal; g.Count >= th.Diagonal {
		var (
			other   model.Diagonal
			numbers []int
		)
		switch g.Active {
		case model.Diagonal1:
			other = model.Diagonal2
			numbers = servModel.Diagonal2Numbers.Difference(&servModel.Diagonal1Numbers)
		case model.Diagonal2:
			other = model.Diagonal1
			numbers = servModel.Diagonal1Numbers.Difference(&servModel.Diagonal2Numbers)
		}
		if other != "" {
			recs = append(recs, model.Recommendation{
				Kind:      model.RecommendationDiagonal,
				Count:     g.Count,
				Current:   []string{string(g.Active)},
				Suggested: string(other),
				Numbers:   numbers,
			})
		}
	}

	return recs
}

func oppositeColor(c model.Color) (model.Color, bool) {
	switch c {
	case model.ColorRed:
		return model.ColorBlack, true
	case model.ColorBlack:
		return model.ColorRed, true
	default:
		return "", false
	}
}

func oppositeParity(p model.Parity) (model.Parity, bool) {
	switch p {
	case model.ParityEven:
		return model.ParityOdd, true
	case model.ParityOdd:
		return model.ParityEven, true
	default:
		return "", false
	}
}

// Render Заполняет Message у каждой рекомендации на языке принтера
func Render(p *message.Printer, recs []model.Recommendation) []model.Recommendation {
	for i := range recs {
		recs[i].Message = renderOne(p, recs[i])
	}
	return recs
}

func renderOne(p *message.Printer, rec model.Recommendation) string {
	current := ""
	if len(rec.Current) > 0 {
		current = rec.Current[0]
	}

	switch rec.Kind {
	case model.RecommendationColor:
		return p.Sprintf(i18n.MsgRecommendationColor, rec.Count, p.Sprintf(i18n.PluralLabelKey(current)), p.Sprintf(i18n.LabelKey(rec.Suggested)))
	case model.RecommendationParity:
		return p.Sprintf(i18n.MsgRecommendationParity, rec.Count, p.Sprintf(i18n.PluralLabelKey(current)), p.Sprintf(i18n.LabelKey(rec.Suggested)))
	case model.RecommendationDozen:
		return p.Sprintf(i18n.MsgRecommendationDozen, rec.Count, p.Sprintf(i18n.LabelKey(rec.Suggested)), rec.Range)
	case model.RecommendationDiagonal:
		return p.Sprintf(i18n.MsgRecommendationDiagonal, rec.Count, p.Sprintf(i18n.LabelKey(current)), p.Sprintf(i18n.LabelKey(rec.Suggested)), joinNumbers(rec.Numbers))
	default:
		return ""
	}
}

func joinNumbers(numbers []int) string {
	parts := make([]string, len(numbers))
	for i, n := range numbers {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ", ")
}
