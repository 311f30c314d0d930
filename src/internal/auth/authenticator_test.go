// FILE: logbridge/src/internal/auth/authenticator_test.go
package auth

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/lixenwraith/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"logbridge/src/internal/config"
)

func newTestLogger() *log.Logger {
	return log.NewLogger()
}

func basicHeader(username, password string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(username+":"+password))
}

func TestNew_NoneReturnsNil(t *testing.T) {
	a, err := New(nil, newTestLogger())
	require.NoError(t, err)
	assert.Nil(t, a)

	a, err = New(&config.AuthConfig{Type: "none"}, newTestLogger())
	require.NoError(t, err)
	assert.Nil(t, a)
}

func TestCheckHTTP_Basic(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	require.NoError(t, err)

	a, err := New(&config.AuthConfig{
		Type: "basic",
		BasicAuth: &config.BasicAuthConfig{
			Users: []config.BasicAuthUser{
				{Username: "ops", PasswordHash: string(hash)},
			},
		},
	}, newTestLogger())
	require.NoError(t, err)
	require.NotNil(t, a)

	assert.NoError(t, a.CheckHTTP(basicHeader("ops", "hunter2")))
	assert.Error(t, a.CheckHTTP(basicHeader("ops", "wrong")))
	assert.Error(t, a.CheckHTTP(basicHeader("nobody", "hunter2")))
	assert.Error(t, a.CheckHTTP("Bearer sometoken"))
	assert.Error(t, a.CheckHTTP("Basic not-base64!"))
}

func TestCheckHTTP_BearerStatic(t *testing.T) {
	a, err := New(&config.AuthConfig{
		Type: "bearer",
		BearerAuth: &config.BearerAuthConfig{
			Tokens: []string{"s3cret-token"},
		},
	}, newTestLogger())
	require.NoError(t, err)
	require.NotNil(t, a)

	assert.NoError(t, a.CheckHTTP("Bearer s3cret-token"))
	assert.Error(t, a.CheckHTTP("Bearer other-token"))
	assert.Error(t, a.CheckHTTP("missing scheme"))
}

func TestCheckHTTP_BearerJWT(t *testing.T) {
	const signingKey = "jwt-signing-key"

	a, err := New(&config.AuthConfig{
		Type: "bearer",
		BearerAuth: &config.BearerAuthConfig{
			JWT: &config.JWTConfig{SigningKey: signingKey},
		},
	}, newTestLogger())
	require.NoError(t, err)
	require.NotNil(t, a)

	makeToken := func(key string, exp time.Time) string {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"sub": "status",
			"exp": exp.Unix(),
		})
		signed, err := token.SignedString([]byte(key))
		require.NoError(t, err)
		return signed
	}

	assert.NoError(t, a.CheckHTTP("Bearer "+makeToken(signingKey, time.Now().Add(time.Hour))))
	assert.Error(t, a.CheckHTTP("Bearer "+makeToken("wrong-key", time.Now().Add(time.Hour))))
	assert.Error(t, a.CheckHTTP("Bearer "+makeToken(signingKey, time.Now().Add(-time.Hour))))
}
