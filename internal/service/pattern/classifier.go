package pattern

import (
	"fmt"
	"roulette_patterns/internal/model"
	servModel "roulette_patterns/internal/service/pattern/model"
)

// ValidateOutcome Проверяет, что число есть на колесе
func ValidateOutcome(n int) error {
	if n < model.MinOutcome || n > model.MaxOutcome {
		return fmt.Errorf("%w: got %d", model.ErrOutcomeOutOfRange, n)
	}
	return nil
}

func Color(n int) model.Color {
	if n == 0 {
		return model.ColorGreen
	}
	if servModel.RedNumbers.Has(n) {
		return model.ColorRed
	}
	return model.ColorBlack
}

func Parity(n int) model.Parity {
	switch {
	case n == 0:
		return model.ParityZero
	case n%2 == 0:
		return model.ParityEven
	default:
		return model.ParityOdd
	}
}

func Dozen(n int) model.Dozen {
	switch {
	case n == 0:
		return model.DozenZero
	case n <= 12:
		return model.DozenFirst
	case n <= 24:
		return model.DozenSecond
	default:
		return model.DozenThird
	}
}

// Diagonal Диагональный сектор числа. Для чисел из обоих секторов возвращает both
func Diagonal(n int) model.Diagonal {
	if n == 0 {
		return model.DiagonalZero
	}
	in1 := servModel.Diagonal1Numbers.Has(n)
	in2 := servModel.Diagonal2Numbers.Has(n)
	switch {
	case in1 && in2:
		return model.DiagonalBoth
	case in1:
		return model.Diagonal1
	case in2:
		return model.Diagonal2
	default:
		return model.DiagonalNone
	}
}

// Classify Все метки числа разом
func Classify(n int) model.Classification {
	return model.Classification{
		Color:    Color(n),
		Parity:   Parity(n),
		Dozen:    Dozen(n),
		Diagonal: Diagonal(n),
	}
}
