package model

import "roulette_patterns/internal/model"

// RedNumbers Красные числа французской рулетки
var RedNumbers = numberSet(1, 3, 5, 7, 9, 12, 14, 16, 18, 19, 21, 23, 25, 27, 30, 32, 34, 36)

// Диагональные секторы. Пересекаются, числа из обоих дают метку both
var (
	Diagonal1Numbers = numberSet(1, 2, 4, 5, 8, 9, 11, 12, 13, 14, 16, 17, 20, 21, 23, 24, 25, 26, 28, 29, 32, 33, 35, 36)
	Diagonal2Numbers = numberSet(2, 3, 5, 6, 7, 8, 10, 11, 14, 15, 17, 18, 19, 20, 22, 23, 26, 27, 29, 30, 31, 32, 34, 35)
)

// DozenRanges Границы дюжин для текста рекомендаций
var DozenRanges = map[model.Dozen]string{
	model.DozenFirst:  "1-12",
	model.DozenSecond: "13-24",
	model.DozenThird:  "25-36",
}

// NumberSet Множество чисел колеса, индекс = число
type NumberSet [model.MaxOutcome + 1]bool

func numberSet(numbers ...int) NumberSet {
	var s NumberSet
	for _, n := range numbers {
		s[n] = true
	}
	return s
}

func (s *NumberSet) Has(n int) bool {
	if n < model.MinOutcome || n > model.MaxOutcome {
		return false
	}
	return s[n]
}

// Difference Числа из s, которых нет в other, по возрастанию
func (s *NumberSet) Difference(other *NumberSet) []int {
	var res []int
	for n := range s {
		if s[n] && !other[n] {
			res = append(res, n)
		}
	}
	return res
}
