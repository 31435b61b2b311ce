package model

// Tally Количество и доля в процентах
type Tally struct {
	Count   int
	Percent float64
}

// Statistics Агрегаты по всей последовательности.
// Цвета и дюжины считаются от общего количества, чётность от количества ненулевых чисел
type Statistics struct {
	Total int

	Red   Tally
	Black Tally
	Zero  Tally

	Even Tally
	Odd  Tally

	FirstDozen  Tally
	SecondDozen Tally
	ThirdDozen  Tally
}
