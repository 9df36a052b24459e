package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopscout/catalog-service/pkg/errs"
)

func TestJWTIssuerRoundTrip(t *testing.T) {
	issuer := CreateJWTIssuer("test-secret")

	token, err := issuer.Sign("507f1f77bcf86cd799439011")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := issuer.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "507f1f77bcf86cd799439011", userID)
}

func TestJWTIssuerRejectsExpiredToken(t *testing.T) {
	issuer := CreateJWTIssuer("test-secret")

	claims := jwt.MapClaims{}
	claims["authorized"] = true
	claims["userID"] = "507f1f77bcf86cd799439011"
	claims["exp"] = time.Now().Add(-time.Hour).Unix()

	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = issuer.Verify(expired)
	assert.Equal(t, errs.ErrNotLoggedIn, err)
}

func TestJWTIssuerRejectsWrongSecret(t *testing.T) {
	token, err := CreateJWTIssuer("other-secret").Sign("507f1f77bcf86cd799439011")
	require.NoError(t, err)

	_, err = CreateJWTIssuer("test-secret").Verify(token)
	assert.Equal(t, errs.ErrNotLoggedIn, err)
}

func TestJWTIssuerRejectsGarbage(t *testing.T) {
	_, err := CreateJWTIssuer("test-secret").Verify("not-a-token")
	assert.Equal(t, errs.ErrNotLoggedIn, err)
}

func TestBcryptHasher(t *testing.T) {
	hasher := BcryptHasher{}

	hash, err := hasher.Hash("123456")
	require.NoError(t, err)
	require.NotEqual(t, "123456", hash)

	assert.NoError(t, hasher.Verify(hash, "123456"))
	assert.Error(t, hasher.Verify(hash, "1234"))
}
