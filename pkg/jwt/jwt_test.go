package jwt

import (
	"errors"
	"testing"
	"time"

	gjwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func TestJWTService_SessionGenerateAndValidate(t *testing.T) {
	svc := NewJWTService("secret", time.Hour)
	assert.Equal(t, time.Hour, svc.SessionExpiry())

	token, err := svc.GenerateSessionToken(7, "test@gmail.com", "seller", "sid-1")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, int64(7), claims.UserID)
	assert.Equal(t, "test@gmail.com", claims.Email)
	assert.Equal(t, "seller", claims.Role)
	assert.Equal(t, "sid-1", claims.SessionID)
}

func TestJWTService_ValidateInvalidToken(t *testing.T) {
	svc := NewJWTService("secret", time.Hour)

	_, err := svc.ValidateToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	other := NewJWTService("other", time.Hour)
	token, err := other.GenerateSessionToken(7, "test@gmail.com", "seller", "sid-1")
	assert.NoError(t, err)
	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_ValidateExpiredToken(t *testing.T) {
	svc := NewJWTService("secret", -time.Second)

	token, err := svc.GenerateSessionToken(7, "expired@gmail.com", "customer", "sid-1")
	assert.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestJWTService_SessionRequiresSessionID(t *testing.T) {
	svc := NewJWTService("secret", time.Hour)

	token, err := svc.GenerateSessionToken(7, "test@gmail.com", "seller", "")
	assert.NoError(t, err)
	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_ValidateWrongSigningMethod(t *testing.T) {
	svc := NewJWTService("secret", time.Hour)

	claims := gjwt.MapClaims{
		"uid":   7,
		"sid":   "sid-1",
		"email": "x@gmail.com",
		"aud":   AudienceSession,
		"exp":   time.Now().Add(time.Minute).Unix(),
	}
	unsigned := gjwt.NewWithClaims(gjwt.SigningMethodNone, claims)
	tokenStr, err := unsigned.SignedString(gjwt.UnsafeAllowNoneSignatureType)
	assert.NoError(t, err)

	_, err = svc.ValidateToken(tokenStr)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_ActionTokens(t *testing.T) {
	svc := NewJWTService("secret", time.Hour)

	token, err := svc.GenerateActionToken(AudienceVerify, ActionClaims{
		Email:            "user@gmail.com",
		RegisteredClaims: gjwt.RegisteredClaims{Subject: "12"},
	}, time.Hour)
	assert.NoError(t, err)

	claims, err := svc.ParseActionToken(token, AudienceVerify)
	assert.NoError(t, err)
	assert.Equal(t, "12", claims.Subject)
	assert.Equal(t, "user@gmail.com", claims.Email)

	// wrong purpose
	_, err = svc.ParseActionToken(token, AudienceReset)
	assert.ErrorIs(t, err, ErrInvalidToken)
	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	reset, err := svc.GenerateActionToken(AudienceReset, ActionClaims{
		PasswordFingerprint: "fp",
		RegisteredClaims:    gjwt.RegisteredClaims{Subject: "12"},
	}, -time.Second)
	assert.NoError(t, err)
	_, err = svc.ParseActionToken(reset, AudienceReset)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestJWTService_SignFailure(t *testing.T) {
	orig := signJWTToken
	t.Cleanup(func() { signJWTToken = orig })
	signJWTToken = func(*gjwt.Token, []byte) (string, error) { return "", errors.New("sign failed") }

	svc := NewJWTService("secret", time.Hour)
	_, err := svc.GenerateSessionToken(1, "a@gmail.com", "customer", "sid")
	assert.Error(t, err)
	_, err = svc.GenerateActionToken(AudienceVerify, ActionClaims{}, time.Hour)
	assert.Error(t, err)
}
