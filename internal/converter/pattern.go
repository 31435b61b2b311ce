package converter

import (
	dto "roulette_patterns/internal/api/dto/pattern"
	"roulette_patterns/internal/model"
)

func ToStreaksResponse(s model.Streaks) dto.StreaksResponse {
	dozens := make([]string, 0, 2)
	for _, d := range s.Dozen.Active.Labels() {
		dozens = append(dozens, string(d))
	}

	return dto.StreaksResponse{
		Color:    dto.ColorStreak{Count: s.Color.Count, Active: string(s.Color.Active)},
		Parity:   dto.ParityStreak{Count: s.Parity.Count, Active: string(s.Parity.Active)},
		Dozen:    dto.DozenStreak{Count: s.Dozen.Count, Active: dozens},
		Diagonal: dto.DiagonalStreak{Count: s.Diagonal.Count, Active: string(s.Diagonal.Active)},
	}
}

func ToStateResponse(snap model.Snapshot) dto.StateResponse {
	return dto.StateResponse{
		Sequence: nonNilInts(snap.Sequence),
		Streaks:  ToStreaksResponse(snap.Streaks),
	}
}

func ToHistoryResponse(entries []model.HistoryEntry) dto.HistoryResponse {
	result := make([]dto.HistoryEntry, len(entries))
	for i, e := range entries {
		result[i] = dto.HistoryEntry{
			Number:   e.Number,
			Outcome:  e.Outcome,
			Color:    string(e.Color),
			Parity:   string(e.Parity),
			Dozen:    string(e.Dozen),
			Diagonal: string(e.Diagonal),
		}
	}
	return dto.HistoryResponse{
		Entries: result,
		Total:   len(result),
	}
}

func ToThresholds(req dto.Thresholds) model.Thresholds {
	return model.Thresholds{
		ColorParity: req.ColorParity,
		Dozen:       req.Dozen,
		Diagonal:    req.Diagonal,
	}
}

func ToThresholdsDTO(th model.Thresholds) dto.Thresholds {
	return dto.Thresholds{
		ColorParity: th.ColorParity,
		Dozen:       th.Dozen,
		Diagonal:    th.Diagonal,
	}
}

func ToRecommendations(recs []model.Recommendation) []dto.Recommendation {
	result := make([]dto.Recommendation, len(recs))
	for i, r := range recs {
		result[i] = dto.Recommendation{
			Kind:      string(r.Kind),
			Count:     r.Count,
			Current:   r.Current,
			Suggested: r.Suggested,
			Range:     r.Range,
			Numbers:   r.Numbers,
			Message:   r.Message,
		}
	}
	return result
}

func ToStatisticsResponse(st model.Statistics) dto.StatisticsResponse {
	return dto.StatisticsResponse{
		Total: st.Total,
		Colors: map[string]dto.Tally{
			"red":   toTally(st.Red),
			"black": toTally(st.Black),
			"zero":  toTally(st.Zero),
		},
		Parity: map[string]dto.Tally{
			"even": toTally(st.Even),
			"odd":  toTally(st.Odd),
		},
		Dozens: map[string]dto.Tally{
			"first":  toTally(st.FirstDozen),
			"second": toTally(st.SecondDozen),
			"third":  toTally(st.ThirdDozen),
		},
	}
}

func toTally(t model.Tally) dto.Tally {
	return dto.Tally{Count: t.Count, Percent: t.Percent}
}

func nonNilInts(v []int) []int {
	if v == nil {
		return []int{}
	}
	return v
}
