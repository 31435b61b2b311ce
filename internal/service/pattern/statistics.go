package pattern

import "roulette_patterns/internal/model"

// ComputeStatistics Агрегаты по всей последовательности, считаются заново при каждом вызове.
// Пустой знаменатель даёт 0%
func ComputeStatistics(sequence []int) model.Statistics {
	st := model.Statistics{Total: len(sequence)}

	for _, n := range sequence {
		switch Color(n) {
		case model.ColorRed:
			st.Red.Count++
		case model.ColorBlack:
			st.Black.Count++
		default:
			st.Zero.Count++
		}

		switch Parity(n) {
		case model.ParityEven:
			st.Even.Count++
		case model.ParityOdd:
			st.Odd.Count++
		}

		switch Dozen(n) {
		case model.DozenFirst:
			st.FirstDozen.Count++
		case model.DozenSecond:
			st.SecondDozen.Count++
		case model.DozenThird:
			st.ThirdDozen.Count++
		}
	}

	nonZero := st.Total - st.Zero.Count

	st.Red.Percent = percent(st.Red.Count, st.Total)
	st.Black.Percent = percent(st.Black.Count, st.Total)
	st.Zero.Percent = percent(st.Zero.Count, st.Total)

	st.Even.Percent = percent(st.Even.Count, nonZero)
	st.Odd.Percent = percent(st.Odd.Count, nonZero)

	st.FirstDozen.Percent = percent(st.FirstDozen.Count, st.Total)
	st.SecondDozen.Percent = percent(st.SecondDozen.Count, st.Total)
	st.ThirdDozen.Percent = percent(st.ThirdDozen.Count, st.Total)

	return st
}

func percent(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(count) / float64(total) * 100
}
