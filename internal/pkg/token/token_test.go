//go:build unit

package token_test

import (
	"testing"
	"time"

	"auction-engine/internal/pkg/token"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenIssueAndVerify(t *testing.T) {
	svc := token.NewService("test-secret", time.Hour)
	now := time.Now()

	issued, err := svc.Issue("winner@example.com", "prod-123", now)
	require.NoError(t, err)
	require.NotEmpty(t, issued)

	t.Run("valid token verifies against the issued pair", func(t *testing.T) {
		assert.NoError(t, svc.Verify(issued, "winner@example.com", "prod-123"))
	})

	t.Run("wrong email is rejected", func(t *testing.T) {
		err := svc.Verify(issued, "other@example.com", "prod-123")
		assert.ErrorIs(t, err, token.ErrTokenMismatch)
	})

	t.Run("wrong product ref is rejected", func(t *testing.T) {
		err := svc.Verify(issued, "winner@example.com", "prod-999")
		assert.ErrorIs(t, err, token.ErrTokenMismatch)
	})

	t.Run("tampered token is rejected", func(t *testing.T) {
		err := svc.Verify(issued+"x", "winner@example.com", "prod-123")
		assert.ErrorIs(t, err, token.ErrInvalidToken)
	})

	t.Run("token signed with another secret is rejected", func(t *testing.T) {
		other, err := token.NewService("other-secret", time.Hour).Issue("winner@example.com", "prod-123", now)
		require.NoError(t, err)
		assert.ErrorIs(t, svc.Verify(other, "winner@example.com", "prod-123"), token.ErrInvalidToken)
	})

	t.Run("expired token is rejected", func(t *testing.T) {
		expired, err := svc.Issue("winner@example.com", "prod-123", now.Add(-2*time.Hour))
		require.NoError(t, err)
		assert.ErrorIs(t, svc.Verify(expired, "winner@example.com", "prod-123"), token.ErrExpiredToken)
	})
}
