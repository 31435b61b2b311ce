package sequence_repo

// Store Журнал выпавших чисел, индекс 0 = первое записанное.
// Меняется только через Append и RemoveLast. Не потокобезопасен: владелец сессии держит свой мьютекс
type Store struct {
	values []int
}

func NewSequenceStore() *Store {
	return &Store{values: make([]int, 0, 64)}
}

// Append Добавляет число в конец. O(1)
func (s *Store) Append(n int) {
	s.values = append(s.values, n)
}

// RemoveLast Удаляет последнее число. На пустом журнале ничего не делает и возвращает false
func (s *Store) RemoveLast() bool {
	if len(s.values) == 0 {
		return false
	}
	s.values = s.values[:len(s.values)-1]
	return true
}

// Values Копия журнала, последнее число в конце
func (s *Store) Values() []int {
	res := make([]int, len(s.values))
	copy(res, s.values)
	return res
}

// Last Последние limit чисел, самое свежее первым
func (s *Store) Last(limit int) []int {
	if limit <= 0 {
		return []int{}
	}
	if limit > len(s.values) {
		limit = len(s.values)
	}
	res := make([]int, 0, limit)
	for i := len(s.values) - 1; i >= len(s.values)-limit; i-- {
		res = append(res, s.values[i])
	}
	return res
}

func (s *Store) Len() int {
	return len(s.values)
}
