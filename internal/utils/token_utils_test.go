package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	token, err := GenerateJWT("user-1", "secret", time.Hour, "erp-ledger")
	require.NoError(t, err)

	claims, err := ParseAndValidateJWT(token, "secret", "erp-ledger")
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
}

func TestParseAndValidateJWT_Rejects(t *testing.T) {
	valid, err := GenerateJWT("user-1", "secret", time.Hour, "erp-ledger")
	require.NoError(t, err)
	expired, err := GenerateJWT("user-1", "secret", -time.Minute, "erp-ledger")
	require.NoError(t, err)

	tests := []struct {
		name   string
		token  string
		secret string
		issuer string
		want   error
	}{
		{"wrong secret", valid, "other", "erp-ledger", jwt.ErrTokenSignatureInvalid},
		{"wrong issuer", valid, "secret", "someone-else", jwt.ErrTokenInvalidIssuer},
		{"expired", expired, "secret", "erp-ledger", jwt.ErrTokenExpired},
		{"garbage", "not-a-token", "secret", "", jwt.ErrTokenMalformed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseAndValidateJWT(tt.token, tt.secret, tt.issuer)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
