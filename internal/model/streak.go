package model

// DozenSet Набор активных дюжин в серии (не больше двух).
// Битовая маска, чтобы снапшоты сравнивались через ==
type DozenSet uint8

func dozenBit(d Dozen) DozenSet {
	switch d {
	case DozenFirst:
		return 1
	case DozenSecond:
		return 2
	case DozenThird:
		return 4
	default:
		return 0
	}
}

// NewDozenSet Собирает набор из перечисленных дюжин. Зеро игнорируется
func NewDozenSet(dozens ...Dozen) DozenSet {
	var s DozenSet
	for _, d := range dozens {
		s = s.Add(d)
	}
	return s
}

func (s DozenSet) Has(d Dozen) bool {
	bit := dozenBit(d)
	return bit != 0 && s&bit != 0
}

func (s DozenSet) Add(d Dozen) DozenSet {
	return s | dozenBit(d)
}

// Len Количество дюжин в наборе
func (s DozenSet) Len() int {
	n := 0
	for _, d := range Dozens {
		if s.Has(d) {
			n++
		}
	}
	return n
}

// Labels Дюжины набора в порядке возрастания
func (s DozenSet) Labels() []Dozen {
	labels := make([]Dozen, 0, 2)
	for _, d := range Dozens {
		if s.Has(d) {
			labels = append(labels, d)
		}
	}
	return labels
}

// Missing Дюжины, которых нет в наборе
func (s DozenSet) Missing() []Dozen {
	labels := make([]Dozen, 0, 3)
	for _, d := range Dozens {
		if !s.Has(d) {
			labels = append(labels, d)
		}
	}
	return labels
}

type ColorStreak struct {
	Count  int
	Active Color
}

type ParityStreak struct {
	Count  int
	Active Parity
}

type DozenStreak struct {
	Count  int
	Active DozenSet
}

type DiagonalStreak struct {
	Count  int
	Active Diagonal
}

// Streaks Снапшот всех четырёх серий
type Streaks struct {
	Color    ColorStreak
	Parity   ParityStreak
	Dozen    DozenStreak
	Diagonal DiagonalStreak
}

// EmptyStreaks Начальное состояние серий (после зеро или перед переигрыванием)
func EmptyStreaks() Streaks {
	return Streaks{
		Color:    ColorStreak{Active: ColorNone},
		Parity:   ParityStreak{Active: ParityNone},
		Dozen:    DozenStreak{},
		Diagonal: DiagonalStreak{Active: DiagonalNone},
	}
}

// Snapshot Журнал и серии на один и тот же момент
type Snapshot struct {
	Sequence []int
	Streaks  Streaks
}
