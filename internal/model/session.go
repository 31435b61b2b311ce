package model

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type Session struct {
	ID        string
	Token     string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// SessionClaims Claims токена сессии. ID сессии лежит в RegisteredClaims.ID
type SessionClaims struct {
	jwt.RegisteredClaims
}
