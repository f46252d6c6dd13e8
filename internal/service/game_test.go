package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/engine"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var errRedisDown = errors.New("redis down")

func TestGameService_NewGame(t *testing.T) {
	t.Run("Builds a new game with a uuid without storing it", func(t *testing.T) {
		// Given: a repository that must not be written
		gameRepo := &mockGameRepo{}
		svc := NewGameService(gameRepo, &mockArchiveRepo{})

		// When: a game is built
		game, err := svc.NewGame(engine.X, entity.DifficultyHard)

		// Then: it is ongoing, has a valid id and is not stored yet
		require.NoError(t, err)
		_, err = uuid.Parse(game.ID)
		require.NoError(t, err)
		assert.True(t, game.IsOngoing())
		gameRepo.AssertNotCalled(t, "CreateOrUpdate", mock.Anything, mock.Anything)
	})

	t.Run("Rejects an invalid mark", func(t *testing.T) {
		svc := NewGameService(&mockGameRepo{}, &mockArchiveRepo{})

		_, err := svc.NewGame(engine.Empty, entity.DifficultyHard)

		require.ErrorIs(t, err, apperror.ErrInvalidMark)
	})
}

func TestGameService_UpdateGame(t *testing.T) {
	ctx := context.Background()
	game := &entity.Game{ID: "g1", Status: entity.StatusOngoing}

	t.Run("Stores the game", func(t *testing.T) {
		gameRepo := &mockGameRepo{}
		gameRepo.On("CreateOrUpdate", ctx, game).Return(nil).Once()

		err := NewGameService(gameRepo, &mockArchiveRepo{}).UpdateGame(ctx, game)

		require.NoError(t, err)
		gameRepo.AssertExpectations(t)
	})

	t.Run("Propagates storage errors", func(t *testing.T) {
		gameRepo := &mockGameRepo{}
		gameRepo.On("CreateOrUpdate", ctx, game).Return(errRedisDown).Once()

		err := NewGameService(gameRepo, &mockArchiveRepo{}).UpdateGame(ctx, game)

		assert.ErrorIs(t, err, errRedisDown)
	})
}

func TestGameService_GetArchivedGame(t *testing.T) {
	ctx := context.Background()

	t.Run("Reads from the archive", func(t *testing.T) {
		// Given: an archive holding a finished game
		archived := &entity.ArchivedGame{ID: "g1", Winner: entity.PlayerTie}
		archiveRepo := &mockArchiveRepo{}
		archiveRepo.On("Find", ctx, "g1").Return(archived, nil).Once()

		// When: it is looked up
		game, err := NewGameService(&mockGameRepo{}, archiveRepo).GetArchivedGame(ctx, "g1")

		// Then: the archived copy comes back
		require.NoError(t, err)
		assert.Equal(t, archived, game)
	})

	t.Run("Unknown id", func(t *testing.T) {
		archiveRepo := &mockArchiveRepo{}
		archiveRepo.On("Find", ctx, "missing").Return(nil, apperror.ErrGameNotFound).Once()

		_, err := NewGameService(&mockGameRepo{}, archiveRepo).GetArchivedGame(ctx, "missing")

		assert.ErrorIs(t, err, apperror.ErrGameNotFound)
	})
}

func TestGameService_FinishGame(t *testing.T) {
	ctx := context.Background()
	game := &entity.Game{ID: "g1", Status: entity.StatusFinished, Winner: entity.PlayerTie}

	t.Run("Archives then expires", func(t *testing.T) {
		// Given: repositories accepting the calls
		gameRepo := &mockGameRepo{}
		archiveRepo := &mockArchiveRepo{}
		archiveRepo.On("Save", ctx, game).Return(nil).Once()
		gameRepo.On("Expire", ctx, "g1", finishedGameTTL).Return(nil).Once()

		// When: the game is finished
		err := NewGameService(gameRepo, archiveRepo).FinishGame(ctx, game)

		// Then: both repositories were used
		require.NoError(t, err)
		archiveRepo.AssertExpectations(t)
		gameRepo.AssertExpectations(t)
	})

	t.Run("Keeps the live game when archiving fails", func(t *testing.T) {
		gameRepo := &mockGameRepo{}
		archiveRepo := &mockArchiveRepo{}
		archiveRepo.On("Save", ctx, game).Return(errRedisDown).Once()

		err := NewGameService(gameRepo, archiveRepo).FinishGame(ctx, game)

		require.ErrorIs(t, err, errRedisDown)
		gameRepo.AssertNotCalled(t, "Expire", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestGameService_Stats(t *testing.T) {
	ctx := context.Background()

	archiveRepo := &mockArchiveRepo{}
	archiveRepo.On("Stats", ctx).Return(&entity.Stats{XWins: 2, Draws: 5}, nil).Once()

	stats, err := NewGameService(&mockGameRepo{}, archiveRepo).Stats(ctx)

	require.NoError(t, err)
	assert.Equal(t, &entity.Stats{XWins: 2, Draws: 5}, stats)
}
