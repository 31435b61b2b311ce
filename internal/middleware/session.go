package middleware

import (
	"context"
	"net/http"
	"roulette_patterns/internal/config"
	"roulette_patterns/pkg/token"
	"strings"

	"go.uber.org/zap"
)

type ctxKey struct{}

// WithSessionID Кладёт ID сессии в контекст
func WithSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, ctxKey{}, sessionID)
}

// SessionIDFromContext ID сессии, положенный SessionAuth
func SessionIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(ctxKey{}).(string)
	return id, ok && id != ""
}

// SessionAuth Проверяет Bearer токен сессии и кладёт её ID в контекст запроса
func SessionAuth(cfg config.JWTConfig, log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			raw, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || strings.TrimSpace(raw) == "" {
				http.Error(w, "missing session token", http.StatusUnauthorized)
				return
			}

			claims, err := token.VerifyToken(strings.TrimSpace(raw), cfg.SessionTokenSecretKey())
			if err != nil {
				log.Debug("session token rejected", zap.Error(err))
				http.Error(w, "invalid session token", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithSessionID(r.Context(), claims.ID)))
		})
	}
}
