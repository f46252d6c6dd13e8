package service

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/stretchr/testify/mock"
)

type mockGameRepo struct {
	mock.Mock
}

func (that *mockGameRepo) CreateOrUpdate(ctx context.Context, game *entity.Game) error {
	args := that.Called(ctx, game)
	return args.Error(0)
}

func (that *mockGameRepo) GetByID(ctx context.Context, id string) (*entity.Game, error) {
	args := that.Called(ctx, id)

	game, _ := args.Get(0).(*entity.Game)

	return game, args.Error(1)
}

func (that *mockGameRepo) Expire(ctx context.Context, id string, ttl time.Duration) error {
	args := that.Called(ctx, id, ttl)
	return args.Error(0)
}

type mockArchiveRepo struct {
	mock.Mock
}

func (that *mockArchiveRepo) Save(ctx context.Context, game *entity.Game) error {
	args := that.Called(ctx, game)
	return args.Error(0)
}

func (that *mockArchiveRepo) Find(ctx context.Context, id string) (*entity.ArchivedGame, error) {
	args := that.Called(ctx, id)

	game, _ := args.Get(0).(*entity.ArchivedGame)

	return game, args.Error(1)
}

func (that *mockArchiveRepo) Stats(ctx context.Context) (*entity.Stats, error) {
	args := that.Called(ctx)

	stats, _ := args.Get(0).(*entity.Stats)

	return stats, args.Error(1)
}

// memoryGameRepo keeps copies of games so callers cannot mutate stored state.
type memoryGameRepo struct {
	mu    sync.Mutex
	games map[string]entity.Game
}

func newMemoryGameRepo() *memoryGameRepo {
	return &memoryGameRepo{games: map[string]entity.Game{}}
}

func (that *memoryGameRepo) CreateOrUpdate(_ context.Context, game *entity.Game) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	stored := *game
	stored.Moves = slices.Clone(game.Moves)
	that.games[game.ID] = stored

	return nil
}

func (that *memoryGameRepo) GetByID(_ context.Context, id string) (*entity.Game, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	stored, ok := that.games[id]
	if !ok {
		return &entity.Game{}, apperror.ErrGameNotFound
	}

	stored.Moves = slices.Clone(stored.Moves)

	return &stored, nil
}

func (that *memoryGameRepo) Expire(_ context.Context, id string, _ time.Duration) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.games[id]; !ok {
		return apperror.ErrGameNotFound
	}

	return nil
}
