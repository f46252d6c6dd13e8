package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

type ArchiveRepository interface {
	Save(ctx context.Context, game *entity.Game) error
	Find(ctx context.Context, id string) (*entity.ArchivedGame, error)
	Stats(ctx context.Context) (*entity.Stats, error)
}

type archiveRepository struct {
	conn *sql.DB
	now  func() time.Time
}

func NewArchiveRepository(conn *sql.DB) ArchiveRepository {
	return &archiveRepository{
		conn: conn,
		now:  time.Now,
	}
}

func (that *archiveRepository) Save(ctx context.Context, game *entity.Game) error {
	moves, err := json.Marshal(game.Moves)
	if err != nil {
		return fmt.Errorf("can't marshal moves: %w", err)
	}

	query := `INSERT OR REPLACE INTO finished_games
		(id, human_mark, difficulty, winner, moves, board, finished_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`

	_, err = that.conn.ExecContext(ctx, query,
		game.ID,
		game.HumanMark.String(),
		game.Difficulty,
		game.Winner,
		string(moves),
		game.Board.String(),
		that.now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("can't save game: %w", err)
	}

	return nil
}

func (that *archiveRepository) Find(ctx context.Context, id string) (*entity.ArchivedGame, error) {
	query := `SELECT id, human_mark, difficulty, winner, moves, board, finished_at
		FROM finished_games WHERE id = ?`

	var (
		game  entity.ArchivedGame
		moves string
	)

	err := that.conn.QueryRowContext(ctx, query, id).Scan(
		&game.ID,
		&game.HumanMark,
		&game.Difficulty,
		&game.Winner,
		&moves,
		&game.Board,
		&game.FinishedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperror.ErrGameNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("can't find game: %w", err)
	}

	if err = json.Unmarshal([]byte(moves), &game.Moves); err != nil {
		return nil, fmt.Errorf("can't unmarshal moves: %w", err)
	}

	return &game, nil
}

func (that *archiveRepository) Stats(ctx context.Context) (*entity.Stats, error) {
	query := `SELECT winner, COUNT(*) FROM finished_games GROUP BY winner`

	rows, err := that.conn.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("can't query stats: %w", err)
	}
	defer rows.Close()

	stats := &entity.Stats{}

	for rows.Next() {
		var (
			winner string
			count  int
		)

		if err = rows.Scan(&winner, &count); err != nil {
			return nil, fmt.Errorf("can't scan stats: %w", err)
		}

		switch winner {
		case entity.PlayerX:
			stats.XWins = count
		case entity.PlayerO:
			stats.OWins = count
		case entity.PlayerTie:
			stats.Draws = count
		}
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("can't read stats: %w", err)
	}

	return stats, nil
}
