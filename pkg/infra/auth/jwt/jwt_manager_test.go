package jwt

import (
	"testing"
	"time"

	"github.com/NeuralTrust/TrustGuard/pkg/config"
	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newManagerWithSecret(secret string) Manager {
	return NewJwtManager(&config.AuthConfig{Enabled: true, SecretKey: secret})
}

func signTokenWithSecret(secret string, claims jwtlib.Claims) (string, error) {
	token := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func TestCreateToken_AndValidate_Success(t *testing.T) {
	mgr := newManagerWithSecret("test-secret")

	token, err := mgr.CreateToken("reviewer-1", time.Hour)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := mgr.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "reviewer-1", claims.UserID)
}

func TestCreateToken_RequiresUserID(t *testing.T) {
	mgr := newManagerWithSecret("test-secret")

	_, err := mgr.CreateToken("  ", time.Hour)

	assert.ErrorIs(t, err, ErrMissingUserID)
}

func TestValidateToken_InvalidSignature(t *testing.T) {
	claims := &Claims{UserID: "u", RegisteredClaims: jwtlib.RegisteredClaims{IssuedAt: jwtlib.NewNumericDate(time.Now())}}
	signed, err := signTokenWithSecret("other-secret", claims)
	require.NoError(t, err)

	_, err = newManagerWithSecret("test-secret").ValidateToken(signed)

	assert.Equal(t, ErrInvalidToken, err)
}

func TestValidateToken_Expired(t *testing.T) {
	secret := "expire-secret"
	claims := &Claims{UserID: "u", RegisteredClaims: jwtlib.RegisteredClaims{
		IssuedAt:  jwtlib.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(-1 * time.Hour)),
	}}
	signed, err := signTokenWithSecret(secret, claims)
	require.NoError(t, err)

	_, err = newManagerWithSecret(secret).ValidateToken(signed)

	assert.Equal(t, ErrExpiredToken, err)
}

func TestValidateToken_RejectsOtherAlgorithms(t *testing.T) {
	claims := &Claims{UserID: "u"}
	token := jwtlib.NewWithClaims(jwtlib.SigningMethodHS512, claims)
	signed, err := token.SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = newManagerWithSecret("secret").ValidateToken(signed)

	assert.Equal(t, ErrInvalidToken, err)
}

func TestValidateToken_FallsBackToSubject(t *testing.T) {
	claims := &jwtlib.RegisteredClaims{Subject: "reviewer-2"}
	signed, err := signTokenWithSecret("secret", claims)
	require.NoError(t, err)

	got, err := newManagerWithSecret("secret").ValidateToken(signed)

	require.NoError(t, err)
	assert.Equal(t, "reviewer-2", got.UserID)
}

func TestValidateToken_Malformed(t *testing.T) {
	_, err := newManagerWithSecret("secret").ValidateToken("not.a.jwt")

	assert.Equal(t, ErrInvalidToken, err)
}
