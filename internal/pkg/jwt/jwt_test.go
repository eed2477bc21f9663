//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"cellar-shop/internal/domain/user"
	"cellar-shop/internal/pkg/jwt"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "unit-test-secret"

func TestService_RoundTrip(t *testing.T) {
	svc := jwt.NewService(secret, "storefront", time.Hour)
	id := uuid.New()

	token, err := svc.GenerateToken(id, user.RoleAdmin)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	got, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, id, got)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "storefront", claims.Issuer)
}

func TestService_Rejects(t *testing.T) {
	svc := jwt.NewService(secret, "storefront", time.Hour)
	id := uuid.New()

	t.Run("expired", func(t *testing.T) {
		old := jwt.NewService(secret, "storefront", -time.Hour)
		token, err := old.GenerateToken(id, user.RoleCustomer)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrExpiredToken)
	})

	t.Run("other issuer", func(t *testing.T) {
		token, err := jwt.NewService(secret, "someone-else", time.Hour).GenerateToken(id, user.RoleCustomer)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		token, err := jwt.NewService("another-secret", "storefront", time.Hour).GenerateToken(id, user.RoleCustomer)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("unsigned", func(t *testing.T) {
		unsigned := gojwt.NewWithClaims(gojwt.SigningMethodNone, gojwt.MapClaims{
			"sub": id.String(),
			"iss": "storefront",
			"exp": time.Now().Add(time.Hour).Unix(),
		})
		token, err := unsigned.SignedString(gojwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("subject is not a uuid", func(t *testing.T) {
		token := gojwt.NewWithClaims(gojwt.SigningMethodHS256, gojwt.MapClaims{
			"sub": "customer-42",
			"iss": "storefront",
			"exp": time.Now().Add(time.Hour).Unix(),
		})
		signed, err := token.SignedString([]byte(secret))
		require.NoError(t, err)

		claims, err := svc.ValidateToken(signed)
		require.NoError(t, err)
		_, err = claims.UserID()
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})
}
