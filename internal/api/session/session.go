package session

import (
	"errors"
	"net/http"
	"roulette_patterns/internal/converter"
	"roulette_patterns/internal/model"
	"roulette_patterns/internal/service"
	"roulette_patterns/pkg/resp"

	"go.uber.org/zap"
)

type HandlerDeps struct {
	Serv service.SessionService
	Log  *zap.Logger
}

type Handler struct {
	serv service.SessionService
	log  *zap.Logger
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv, log: deps.Log}
}

// Open создаёт сессию и возвращает её токен
func (h *Handler) Open(w http.ResponseWriter, r *http.Request) {
	s, err := h.serv.Open(r.Context())
	if err != nil {
		h.log.Error("open session failed", zap.Error(err))
		http.Error(w, "open session failed", http.StatusInternalServerError)
		return
	}

	resp.WriteJSONResponse(w, http.StatusCreated, converter.ToOpenResponse(*s))
}

// Close закрывает сессию из токена
func (h *Handler) Close(w http.ResponseWriter, r *http.Request) {
	err := h.serv.Close(r.Context())
	if err != nil {
		if errors.Is(err, model.ErrSessionNotFound) {
			http.Error(w, "session not found", http.StatusUnauthorized)
			return
		}
		h.log.Error("close session failed", zap.Error(err))
		http.Error(w, "close session failed", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
