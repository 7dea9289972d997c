package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/xiebiao/bookstore-rest/pkg/errors"
)

func TestManager_GenerateAndParse(t *testing.T) {
	m := NewManager("test-secret", time.Hour, 24*time.Hour)

	pair, err := m.GenerateToken("0b7c1c2e-4a55-4a8f-9d0b-5b1c3f2a9e11", "reader@example.com", "Ada Lovelace")
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.Equal(t, int64(3600), pair.ExpiresIn)

	claims, err := m.ParseToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "0b7c1c2e-4a55-4a8f-9d0b-5b1c3f2a9e11", claims.UserID)
	assert.Equal(t, "reader@example.com", claims.Email)
	assert.Equal(t, "Ada Lovelace", claims.Name)
	assert.Equal(t, claims.UserID, claims.Subject)
	assert.Equal(t, TokenTypeAccess, claims.TokenType)

	refresh, err := m.ParseToken(pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, TokenTypeRefresh, refresh.TokenType)
}

func TestManager_TokenType(t *testing.T) {
	m := NewManager("test-secret", time.Hour, 24*time.Hour)
	pair, err := m.GenerateToken("u1", "a@b.cn", "A B")
	require.NoError(t, err)

	t.Run("Access Token", func(t *testing.T) {
		claims, err := m.ParseAccessToken(pair.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, "u1", claims.UserID)

		_, err = m.ParseRefreshToken(pair.AccessToken)
		assert.ErrorIs(t, err, ErrWrongTokenType)
	})

	t.Run("Refresh Token", func(t *testing.T) {
		claims, err := m.ParseRefreshToken(pair.RefreshToken)
		require.NoError(t, err)
		assert.Equal(t, "u1", claims.UserID)

		_, err = m.ParseAccessToken(pair.RefreshToken)
		assert.ErrorIs(t, err, ErrWrongTokenType)
	})

	t.Run("类型错误映射为401", func(t *testing.T) {
		assert.Equal(t, apperrors.ErrCodeInvalidToken, ErrWrongTokenType.Code)
		assert.Equal(t, 401, ErrWrongTokenType.HTTPStatus())
	})
}

func TestManager_ParseToken_Errors(t *testing.T) {
	m := NewManager("test-secret", time.Hour, 24*time.Hour)

	t.Run("签名密钥不同", func(t *testing.T) {
		other := NewManager("another-secret", time.Hour, time.Hour)
		pair, err := other.GenerateToken("u1", "a@b.cn", "A B")
		require.NoError(t, err)

		_, err = m.ParseToken(pair.AccessToken)
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})

	t.Run("Token已过期", func(t *testing.T) {
		expired := NewManager("test-secret", -time.Minute, time.Hour)
		pair, err := expired.GenerateToken("u1", "a@b.cn", "A B")
		require.NoError(t, err)

		_, err = m.ParseToken(pair.AccessToken)
		assert.ErrorIs(t, err, apperrors.ErrTokenExpired)
	})

	t.Run("格式错误", func(t *testing.T) {
		_, err := m.ParseToken("not-a-token")
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})
}

func TestManager_RefreshAccessToken(t *testing.T) {
	m := NewManager("test-secret", time.Hour, 24*time.Hour)
	pair, err := m.GenerateToken("u1", "a@b.cn", "A B")
	require.NoError(t, err)

	access, err := m.RefreshAccessToken(pair.RefreshToken)
	require.NoError(t, err)

	claims, err := m.ParseAccessToken(access)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)

	t.Run("Access Token不能用于刷新", func(t *testing.T) {
		_, err := m.RefreshAccessToken(pair.AccessToken)
		assert.ErrorIs(t, err, ErrWrongTokenType)
	})
}
