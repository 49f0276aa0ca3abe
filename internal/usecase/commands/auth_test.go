//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"campus-rooms/internal/domain/user"
	"campus-rooms/internal/pkg/jwt"
	"campus-rooms/internal/pkg/password"
	"campus-rooms/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin(t *testing.T) {
	ctx := context.Background()

	store := newMemStore()
	hash, err := password.Hash("correct horse")
	require.NoError(t, err)
	store.users[7] = user.Reconstruct(7, "prof@example.edu", "Prof", hash, user.RoleProfessor)

	jwtService := jwt.NewService("test-secret", time.Hour)
	auth := commands.NewAuthCommands(&fakeUsers{s: store}, jwtService, &fakeUoW{store: store})

	t.Run("basic success case", func(t *testing.T) {
		result, err := auth.Login(ctx, "prof@example.edu", "correct horse")
		require.NoError(t, err)

		assert.NotEmpty(t, result.Token)
		assert.Equal(t, int64(7), result.ID)
		assert.Equal(t, "professor", result.Role)

		claims, err := jwtService.ValidateToken(result.Token)
		require.NoError(t, err)
		assert.Equal(t, int64(7), claims.UserID)
		assert.Equal(t, "professor", claims.Role)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := auth.Login(ctx, "prof@example.edu", "wrong")
		require.ErrorIs(t, err, commands.ErrInvalidCredentials)
	})

	t.Run("unknown email gets the same answer", func(t *testing.T) {
		_, err := auth.Login(ctx, "ghost@example.edu", "correct horse")
		require.ErrorIs(t, err, commands.ErrInvalidCredentials)
	})
}
