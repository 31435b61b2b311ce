package token

import (
	"errors"
	"fmt"
	"roulette_patterns/internal/model"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// GenerateSessionToken Подписанный HS256 токен, в ID лежит идентификатор сессии
func GenerateSessionToken(sessionID string, secretKey []byte, expiresAt time.Time) (string, error) {
	claims := model.SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sessionID,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString(secretKey)
}

func VerifyToken(tokenStr string, secretKey []byte) (*model.SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &model.SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		_, ok := token.Method.(*jwt.SigningMethodHMAC)
		if !ok {
			return nil, errors.New("unexpected token signing method")
		}

		return secretKey, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %v", err)
	}

	claims, ok := token.Claims.(*model.SessionClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}
	if claims.ID == "" {
		return nil, errors.New("token has no session id")
	}

	return claims, nil
}
