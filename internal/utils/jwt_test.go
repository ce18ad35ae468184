package utils_test

import (
	"testing"
	"time"

	"djurdata-ai/internal/utils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestValidateTokenRoundTrip(t *testing.T) {
	svc := utils.NewJWTService(testSecret, time.Hour, 24*time.Hour)

	token, err := svc.GenerateToken("user-1")
	require.NoError(t, err)

	userID, err := svc.ValidateToken(*token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", *userID)
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	svc := utils.NewJWTService(testSecret, -time.Minute, 24*time.Hour)

	token, err := svc.GenerateToken("user-1")
	require.NoError(t, err)

	_, err = svc.ValidateToken(*token)
	assert.Error(t, err)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	token, err := utils.NewJWTService("other-secret", time.Hour, time.Hour).GenerateToken("user-1")
	require.NoError(t, err)

	svc := utils.NewJWTService(testSecret, time.Hour, time.Hour)
	_, err = svc.ValidateToken(*token)
	assert.Error(t, err)
}

// A validly-signed token that lacks the user_id claim is rejected with an
// error, not a panic.
func TestValidateTokenRejectsMissingUserID(t *testing.T) {
	claims := jwt.RegisteredClaims{
		Issuer:    "djurdata-ai",
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	svc := utils.NewJWTService(testSecret, time.Hour, time.Hour)
	_, err = svc.ValidateToken(tokenString)
	assert.Error(t, err)
}

func TestValidateTokenRejectsUnsignedToken(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"user_id": "user-1",
		"iss":     "djurdata-ai",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	tokenString, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	svc := utils.NewJWTService(testSecret, time.Hour, time.Hour)
	_, err = svc.ValidateToken(tokenString)
	assert.Error(t, err)
}
