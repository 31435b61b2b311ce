package pattern

import (
	"errors"
	"net/http"
	dto "roulette_patterns/internal/api/dto/pattern"
	"roulette_patterns/internal/converter"
	"roulette_patterns/internal/i18n"
	"roulette_patterns/internal/model"
	"roulette_patterns/internal/service"
	"roulette_patterns/pkg/req"
	"roulette_patterns/pkg/resp"
	"strconv"

	"go.uber.org/zap"
)

type HandlerDeps struct {
	Serv service.PatternService
	Log  *zap.Logger
}

type Handler struct {
	serv service.PatternService
	log  *zap.Logger
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv, log: deps.Log}
}

// AddOutcome записывает выпавшее число и возвращает журнал с сериями
func (h *Handler) AddOutcome(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.AddOutcomeRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if payload.Number == nil {
		http.Error(w, "number is required", http.StatusBadRequest)
		return
	}

	snap, err := h.serv.AddOutcome(r.Context(), *payload.Number)
	if err != nil {
		h.writeError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusCreated, converter.ToStateResponse(*snap))
}

// RemoveLast удаляет последнее число. Пустой журнал не ошибка
func (h *Handler) RemoveLast(w http.ResponseWriter, r *http.Request) {
	snap, err := h.serv.RemoveLast(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToStateResponse(*snap))
}

func (h *Handler) Sequence(w http.ResponseWriter, r *http.Request) {
	seq, err := h.serv.Sequence(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, dto.SequenceResponse{
		Sequence: seq,
		Total:    len(seq),
	})
}

// Recent последние числа, ?limit= (по умолчанию 10)
func (h *Handler) Recent(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			http.Error(w, "limit must be an integer", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	numbers, err := h.serv.Recent(r.Context(), limit)
	if err != nil {
		h.writeError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, dto.RecentResponse{Numbers: numbers})
}

func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	entries, err := h.serv.History(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToHistoryResponse(entries))
}

func (h *Handler) Streaks(w http.ResponseWriter, r *http.Request) {
	streaks, err := h.serv.Streaks(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToStreaksResponse(*streaks))
}

// Recommendations пороги берутся из query (color_parity, dozen, diagonal), отсутствующие по умолчанию
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	th, err := thresholdsFromQuery(r, converter.ToThresholdsDTO(h.serv.DefaultThresholds()))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	lang := i18n.ResolveTag(r)

	recs, err := h.serv.Recommendations(r.Context(), converter.ToThresholds(th), lang)
	if err != nil {
		h.writeError(w, err)
		return
	}

	response := dto.RecommendationsResponse{
		Thresholds:      th,
		Recommendations: converter.ToRecommendations(recs),
		Lang:            lang.String(),
	}
	if len(recs) == 0 {
		response.Hint = i18n.Printer(lang).Sprintf(i18n.MsgNoPattern)
	}

	resp.WriteJSONResponse(w, http.StatusOK, response)
}

func (h *Handler) Statistics(w http.ResponseWriter, r *http.Request) {
	st, err := h.serv.Statistics(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToStatisticsResponse(*st))
}

func thresholdsFromQuery(r *http.Request, def dto.Thresholds) (dto.Thresholds, error) {
	th := def
	q := r.URL.Query()
	fields := []struct {
		name string
		dst  *int
	}{
		{"color_parity", &th.ColorParity},
		{"dozen", &th.Dozen},
		{"diagonal", &th.Diagonal},
	}
	for _, f := range fields {
		raw := q.Get(f.name)
		if raw == "" {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			return th, errors.New(f.name + " must be an integer")
		}
		*f.dst = v
	}
	return th, nil
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, model.ErrOutcomeOutOfRange), errors.Is(err, model.ErrThresholdOutOfRange):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, model.ErrSessionNotFound):
		http.Error(w, "session not found", http.StatusUnauthorized)
	default:
		h.log.Error("pattern request failed", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
