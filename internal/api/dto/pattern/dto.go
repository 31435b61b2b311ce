package pattern

type AddOutcomeRequest struct {
	Number *int `json:"number"` // Выпавшее число 0-36
}

type ColorStreak struct {
	Count  int    `json:"count"`
	Active string `json:"active"` // red, black или none
}

type ParityStreak struct {
	Count  int    `json:"count"`
	Active string `json:"active"` // even, odd или none
}

type DozenStreak struct {
	Count  int      `json:"count"`
	Active []string `json:"active"` // До двух дюжин
}

type DiagonalStreak struct {
	Count  int    `json:"count"`
	Active string `json:"active"` // diagonal_1, diagonal_2 или none
}

type StreaksResponse struct {
	Color    ColorStreak    `json:"color"`
	Parity   ParityStreak   `json:"parity"`
	Dozen    DozenStreak    `json:"dozen"`
	Diagonal DiagonalStreak `json:"diagonal"`
}

// StateResponse Ответ на изменение журнала
type StateResponse struct {
	Sequence []int           `json:"sequence"` // Последнее число в конце
	Streaks  StreaksResponse `json:"streaks"`
}

type SequenceResponse struct {
	Sequence []int `json:"sequence"`
	Total    int   `json:"total"`
}

type RecentResponse struct {
	Numbers []int `json:"numbers"` // Самое свежее первым
}

type HistoryEntry struct {
	Number   int    `json:"#"`
	Outcome  int    `json:"outcome"`
	Color    string `json:"color"`
	Parity   string `json:"parity"`
	Dozen    string `json:"dozen"`
	Diagonal string `json:"diagonal"`
}

type HistoryResponse struct {
	Entries []HistoryEntry `json:"entries"`
	Total   int            `json:"total"`
}

type Thresholds struct {
	ColorParity int `json:"color_parity"`
	Dozen       int `json:"dozen"`
	Diagonal    int `json:"diagonal"`
}

type Recommendation struct {
	Kind      string   `json:"kind"`
	Count     int      `json:"count"`
	Current   []string `json:"current"`
	Suggested string   `json:"suggested"`
	Range     string   `json:"range,omitempty"`
	Numbers   []int    `json:"numbers,omitempty"`
	Message   string   `json:"message"`
}

type RecommendationsResponse struct {
	Thresholds      Thresholds       `json:"thresholds"`
	Recommendations []Recommendation `json:"recommendations"`
	Hint            string           `json:"hint,omitempty"` // Если рекомендаций нет
	Lang            string           `json:"lang"`
}

type Tally struct {
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

type StatisticsResponse struct {
	Total  int              `json:"total"`
	Colors map[string]Tally `json:"colors"` // red, black, zero
	Parity map[string]Tally `json:"parity"` // even, odd (от ненулевых)
	Dozens map[string]Tally `json:"dozens"` // first, second, third
}
