package reports

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Download links are short-lived signed tokens instead of stored rows: the
// PDF is rebuilt on demand, so there is nothing to persist server-side.
const linkTTL = 15 * time.Minute

var ErrInvalidToken = errors.New("invalid report token")

type linkClaims struct {
	UserID string `json:"user_id"`
	From   string `json:"from"`
	To     string `json:"to"`
	jwt.RegisteredClaims
}

func signLink(secret []byte, userID, from, to string, now time.Time) (string, time.Time, error) {
	exp := now.Add(linkTTL)
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, linkClaims{
		UserID: userID,
		From:   from,
		To:     to,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	})
	signed, err := t.SignedString(secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, exp, nil
}

func parseLink(secret []byte, token string) (*linkClaims, error) {
	parsed, err := jwt.ParseWithClaims(strings.TrimSpace(token), &linkClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	claims, ok := parsed.Claims.(*linkClaims)
	if !ok || strings.TrimSpace(claims.UserID) == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
