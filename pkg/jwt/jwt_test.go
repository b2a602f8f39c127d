package jwt

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWT() *JWT {
	conf := viper.New()
	conf.Set("security.jwt.key", "test-signing-key")
	return NewJwt(conf)
}

func TestGenAndParseToken(t *testing.T) {
	j := newTestJWT()

	token, err := j.GenToken("u1", "dashboard", time.Now().Add(time.Hour))
	require.NoError(t, err)

	claims, err := j.ParseToken("Bearer " + token)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserId)
	assert.Equal(t, "dashboard", claims.Username)
}

func TestParseTokenRejectsExpired(t *testing.T) {
	j := newTestJWT()

	token, err := j.GenToken("u1", "dashboard", time.Now().Add(-time.Minute))
	require.NoError(t, err)

	_, err = j.ParseToken(token)
	assert.Error(t, err)
}

func TestParseTokenEmpty(t *testing.T) {
	_, err := newTestJWT().ParseToken("Bearer ")
	assert.Error(t, err)
}
