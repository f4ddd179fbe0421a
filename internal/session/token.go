package session

import (
	"fmt"
	"time"

	"artivisual-app/internal/domain/errs"
	"artivisual-app/internal/domain/users"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

const tokenTTL = 24 * time.Hour

// Claims is what a session token carries. Gen ties the token to one applied session.
type Claims struct {
	UserID string
	Email  string
	Role   users.Role
	Gen    uint64
}

func IssueToken(secret []byte, u users.User, gen uint64) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": u.ID,
		"email":   u.Email,
		"role":    string(u.Role),
		"gen":     gen,
		"exp":     time.Now().Add(tokenTTL).Unix(),
	})
	return t.SignedString(secret)
}

func ParseToken(secret []byte, tokenString string) (Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return Claims{}, errors.Wrap(errs.ErrAuthentication, "invalid or expired token")
	}

	mc, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, errors.Wrap(errs.ErrAuthentication, "invalid token claims")
	}

	var c Claims
	c.UserID, _ = mc["user_id"].(string)
	c.Email, _ = mc["email"].(string)
	if role, ok := mc["role"].(string); ok {
		c.Role = users.Role(role)
	}
	// numbers decode as float64
	if gen, ok := mc["gen"].(float64); ok {
		c.Gen = uint64(gen)
	}
	if c.UserID == "" {
		return Claims{}, errors.Wrap(errs.ErrAuthentication, "token missing user_id")
	}
	return c, nil
}
