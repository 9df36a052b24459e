package auth

import (
	"time"

	"github.com/golang-jwt/jwt"

	"github.com/shopscout/catalog-service/pkg/errs"
)

// TokenTTL is the fixed session lifetime. Expiry is the only invalidation
// mechanism; there is no revocation list.
const TokenTTL = 7 * 24 * time.Hour

// TokenIssuer signs and verifies bearer tokens bound to a user id.
type TokenIssuer interface {
	Sign(userID string) (string, error)
	Verify(tokenString string) (userID string, err error)
}

type JWTIssuer struct {
	secret []byte
	ttl    time.Duration
}

func CreateJWTIssuer(secret string) *JWTIssuer {
	return &JWTIssuer{secret: []byte(secret), ttl: TokenTTL}
}

func (i *JWTIssuer) Sign(userID string) (string, error) {
	claims := jwt.MapClaims{}
	claims["authorized"] = true
	claims["userID"] = userID
	claims["exp"] = time.Now().Add(i.ttl).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(i.secret)
}

func (i *JWTIssuer) Verify(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errs.ErrNotLoggedIn
		}
		return i.secret, nil
	})
	if err != nil || !token.Valid {
		return "", errs.ErrNotLoggedIn
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errs.ErrNotLoggedIn
	}

	userID, ok := claims["userID"].(string)
	if !ok || userID == "" {
		return "", errs.ErrNotLoggedIn
	}

	return userID, nil
}
