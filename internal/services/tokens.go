package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"
)

const RoleSpectator = "spectator"

var ErrInvalidToken = errors.New("invalid token")

type Claims struct {
	ID       string
	Username string
	Role     string
}

// IssueSpectatorToken signs a read-only token for watching the given player.
func IssueSpectatorToken(secret string, player Claims, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", errors.New("spectator secret not configured")
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":       player.ID,
		"username": player.Username,
		"role":     RoleSpectator,
		"exp":      time.Now().Add(ttl).Unix(),
	})

	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("sign spectator token: %w", err)
	}
	return tokenString, nil
}

// ParseToken verifies signature and expiry and returns the raw claims.
func ParseToken(secret, tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("%w: unexpected claims type", ErrInvalidToken)
	}
	if role, _ := claims["role"].(string); role != RoleSpectator {
		return nil, fmt.Errorf("%w: role %q", ErrInvalidToken, role)
	}
	return claims, nil
}

// ClaimsFromMap converts verified claims into Claims.
func ClaimsFromMap(m jwt.MapClaims) Claims {
	id, _ := m["id"].(string)
	username, _ := m["username"].(string)
	role, _ := m["role"].(string)
	return Claims{ID: id, Username: username, Role: role}
}
