package model

const (
	// MinOutcome Наименьшее число на колесе (зеро)
	MinOutcome = 0
	// MaxOutcome Наибольшее число на колесе
	MaxOutcome = 36
)

// Color Цвет сектора
type Color string

const (
	ColorNone  Color = "none"
	ColorRed   Color = "red"
	ColorBlack Color = "black"
	ColorGreen Color = "green"
)

// Parity Чётность числа. Зеро не чётное и не нечётное
type Parity string

const (
	ParityNone Parity = "none"
	ParityEven Parity = "even"
	ParityOdd  Parity = "odd"
	ParityZero Parity = "zero"
)

// Dozen Дюжина, в которую попадает число
type Dozen string

const (
	DozenFirst  Dozen = "first"
	DozenSecond Dozen = "second"
	DozenThird  Dozen = "third"
	DozenZero   Dozen = "zero"
)

// Dozens Все три дюжины в порядке возрастания
var Dozens = [3]Dozen{DozenFirst, DozenSecond, DozenThird}

// Diagonal Диагональный сектор
type Diagonal string

const (
	DiagonalNone Diagonal = "none"
	Diagonal1    Diagonal = "diagonal_1"
	Diagonal2    Diagonal = "diagonal_2"
	DiagonalBoth Diagonal = "both"
	DiagonalZero Diagonal = "zero"
)

// Classification Все четыре метки одного числа
type Classification struct {
	Color    Color
	Parity   Parity
	Dozen    Dozen
	Diagonal Diagonal
}

// HistoryEntry Строка истории. Number считается от последнего выпавшего числа (1 = последнее)
type HistoryEntry struct {
	Number  int
	Outcome int
	Classification
}
