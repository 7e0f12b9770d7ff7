package auth

import (
	"errors"
	"time"

	"github.com/dmitrijs2005/opsbot/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the subject (user email) and expiry of an access token.
type Claims struct {
	jwt.RegisteredClaims
}

// IssueToken signs an HS256 token for subject that expires ttl after now.
// A positive ttl is rounded up to a whole second, because the exp claim has
// second precision and truncating it could yield a token that is already
// expired. Non-positive ttls produce expired tokens.
func IssueToken(subject string, key []byte, ttl time.Duration, now time.Time) (string, error) {
	exp := now.Add(ttl)
	if ttl > 0 {
		exp = exp.Add(time.Second - 1).Truncate(time.Second)
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	})

	tokenString, err := token.SignedString(key)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ParseToken verifies the signature first and then the claims, evaluated
// at now. Every failure is reported as common.ErrorInvalidToken.
func ParseToken(tokenString string, key []byte, now time.Time) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (interface{}, error) {
			return key, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)
	if err != nil {
		return "", errors.Join(common.ErrorInvalidToken, err)
	}

	if !token.Valid || claims.Subject == "" {
		return "", common.ErrorInvalidToken
	}

	return claims.Subject, nil
}
