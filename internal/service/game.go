package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/engine"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

// finishedGameTTL - how long a finished game stays readable in Redis after it is archived.
const finishedGameTTL = 10 * time.Minute

type GameService interface {
	NewGame(humanMark engine.Cell, difficulty string) (*entity.Game, error)
	UpdateGame(ctx context.Context, game *entity.Game) error
	FinishGame(ctx context.Context, game *entity.Game) error

	GetGameByID(ctx context.Context, id string) (*entity.Game, error)
	GetArchivedGame(ctx context.Context, id string) (*entity.ArchivedGame, error)
	Stats(ctx context.Context) (*entity.Stats, error)
}

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	Expire(ctx context.Context, id string, ttl time.Duration) error
}

type archiveRepo interface {
	Save(ctx context.Context, game *entity.Game) error
	Find(ctx context.Context, id string) (*entity.ArchivedGame, error)
	Stats(ctx context.Context) (*entity.Stats, error)
}

type gameService struct {
	gameRepo    gameRepo
	archiveRepo archiveRepo
}

func NewGameService(gameRepo gameRepo, archiveRepo archiveRepo) GameService {
	return &gameService{
		gameRepo:    gameRepo,
		archiveRepo: archiveRepo,
	}
}

// NewGame - builds a game with a fresh id. Nothing is stored until UpdateGame.
func (that *gameService) NewGame(humanMark engine.Cell, difficulty string) (*entity.Game, error) {
	game, err := entity.NewGame(uuid.NewString(), humanMark, difficulty)
	if err != nil {
		return nil, fmt.Errorf("failed to build game: %w", err)
	}

	return game, nil
}

func (that *gameService) GetGameByID(ctx context.Context, id string) (*entity.Game, error) {
	game, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve game from storage: %w", err)
	}

	return game, nil
}

func (that *gameService) UpdateGame(ctx context.Context, game *entity.Game) error {
	if err := that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return fmt.Errorf("failed to update game: %w", err)
	}

	return nil
}

// FinishGame - archives a finished game and lets its live copy expire.
func (that *gameService) FinishGame(ctx context.Context, game *entity.Game) error {
	if err := that.archiveRepo.Save(ctx, game); err != nil {
		return fmt.Errorf("failed to archive game: %w", err)
	}

	if err := that.gameRepo.Expire(ctx, game.ID, finishedGameTTL); err != nil {
		return fmt.Errorf("failed to expire game: %w", err)
	}

	return nil
}

func (that *gameService) GetArchivedGame(ctx context.Context, id string) (*entity.ArchivedGame, error) {
	game, err := that.archiveRepo.Find(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find archived game: %w", err)
	}

	return game, nil
}

func (that *gameService) Stats(ctx context.Context) (*entity.Stats, error) {
	stats, err := that.archiveRepo.Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read stats: %w", err)
	}

	return stats, nil
}
