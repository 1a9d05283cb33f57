package repository

import (
	"testing"
	"time"

	"github.com/rocketscienceinc/tictactoe-frontend/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-frontend/internal/entity"
	"github.com/rocketscienceinc/tictactoe-frontend/testing/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionRepository_Save(t *testing.T) {
	ctx, st := suite.New(t)

	sessionRepo := NewSessionRepository(st.Storage, time.Hour)

	// Given: a new session
	session := entity.NewSession("123")

	// When: Save is called
	err := sessionRepo.Save(ctx, session)

	// Then: no error should be returned, and the key should expire
	require.NoError(t, err)

	ttl, err := st.Storage.TTL(ctx, "session:123").Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))
}

func TestSessionRepository_GetByID(t *testing.T) {
	t.Run("GetByID_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		sessionRepo := NewSessionRepository(st.Storage, time.Hour)

		// Given: a session holding a won game
		winner := entity.PlayerX
		session := entity.NewSession("123")
		session.Theme = entity.ThemeDark
		session.Game = entity.GameState{
			Board: entity.Board{
				{entity.PlayerX, entity.PlayerX, entity.PlayerX},
				{entity.EmptyCell, entity.PlayerO, entity.EmptyCell},
				{entity.PlayerO, entity.EmptyCell, entity.PlayerO},
			},
			CurrentPlayer: entity.PlayerO,
			Result:        entity.Result{Status: entity.StatusWon, Winner: &winner},
		}
		session.Info = "Game started/reset."

		err := sessionRepo.Save(ctx, session)
		require.NoError(t, err)

		// When: GetByID is called with existing ID
		retrieved, err := sessionRepo.GetByID(ctx, session.ID)

		// Then: the retrieved session should match the saved one
		require.NoError(t, err)
		assert.Equal(t, session.ID, retrieved.ID)
		assert.Equal(t, session.Theme, retrieved.Theme)
		assert.Equal(t, session.Game.Board, retrieved.Game.Board)
		assert.Equal(t, session.Game.CurrentPlayer, retrieved.Game.CurrentPlayer)
		assert.Equal(t, entity.PlayerX, retrieved.Game.Result.WinnerMark())
		assert.Equal(t, session.Info, retrieved.Info)
	})

	t.Run("GetByID_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		sessionRepo := NewSessionRepository(st.Storage, time.Hour)

		// When: GetByID is called with non-existent ID
		retrieved, err := sessionRepo.GetByID(ctx, "9999999")

		// Then: an ErrSessionNotFound error should be returned
		require.ErrorIs(t, err, apperror.ErrSessionNotFound)
		assert.Nil(t, retrieved)
	})
}

func TestSessionRepository_DeleteByID(t *testing.T) {
	t.Run("DeleteByID_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		sessionRepo := NewSessionRepository(st.Storage, time.Hour)

		// Given: a stored session
		session := entity.NewSession("123")
		require.NoError(t, sessionRepo.Save(ctx, session))

		// When: DeleteByID is called with existing ID
		err := sessionRepo.DeleteByID(ctx, session.ID)

		// Then: no error should be returned and the session is gone
		require.NoError(t, err)

		_, err = sessionRepo.GetByID(ctx, session.ID)
		require.ErrorIs(t, err, apperror.ErrSessionNotFound)
	})

	t.Run("DeleteByID_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		sessionRepo := NewSessionRepository(st.Storage, time.Hour)

		// When: DeleteByID is called with non-existent ID
		err := sessionRepo.DeleteByID(ctx, "9999999")

		// Then: an ErrSessionNotFound error should be returned
		require.ErrorIs(t, err, apperror.ErrSessionNotFound)
	})
}
