package converter

import (
	dto "roulette_patterns/internal/api/dto/session"
	"roulette_patterns/internal/model"
	"time"
)

func ToOpenResponse(s model.Session) dto.OpenResponse {
	return dto.OpenResponse{
		SessionToken: s.Token,
		ExpiresAt:    s.ExpiresAt.UTC().Format(time.RFC3339),
	}
}
