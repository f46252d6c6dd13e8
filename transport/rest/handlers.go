package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/engine"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

type Handlers interface {
	StartGame(w http.ResponseWriter, r *http.Request)
	GetGame(w http.ResponseWriter, r *http.Request)
	MakeTurn(w http.ResponseWriter, r *http.Request)
	Hint(w http.ResponseWriter, r *http.Request)
	Analyze(w http.ResponseWriter, r *http.Request)
	ArchivedGame(w http.ResponseWriter, r *http.Request)
	Stats(w http.ResponseWriter, r *http.Request)
}

type gameUseCase interface {
	StartGame(ctx context.Context, humanMark, difficulty string) (*entity.Game, error)
	GetGame(ctx context.Context, gameID string) (*entity.Game, error)
	MakeTurn(ctx context.Context, gameID string, action engine.Action) (*entity.Game, error)
	Hint(ctx context.Context, gameID string) (*engine.Action, error)
	Analyze(ctx context.Context, board engine.Board) (*entity.Analysis, error)
	ArchivedGame(ctx context.Context, gameID string) (*entity.ArchivedGame, error)
	Stats(ctx context.Context) (*entity.Stats, error)
}

type startGameRequest struct {
	HumanMark  string `json:"human_mark"`
	Difficulty string `json:"difficulty"`
}

type analyzeRequest struct {
	Board engine.Board `json:"board"`
}

type hintResponse struct {
	Action *engine.Action `json:"action"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type handlers struct {
	logger      *slog.Logger
	gameUseCase gameUseCase
}

func NewHandlers(logger *slog.Logger, gameUseCase gameUseCase) Handlers {
	return &handlers{
		logger:      logger.With("component", "rest"),
		gameUseCase: gameUseCase,
	}
}

func (that *handlers) StartGame(w http.ResponseWriter, r *http.Request) {
	var req startGameRequest
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			that.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
			return
		}
	}

	game, err := that.gameUseCase.StartGame(r.Context(), req.HumanMark, req.Difficulty)
	if err != nil {
		that.writeError(w, "StartGame", err)
		return
	}

	that.writeJSON(w, http.StatusCreated, game)
}

func (that *handlers) GetGame(w http.ResponseWriter, r *http.Request) {
	game, err := that.gameUseCase.GetGame(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		that.writeError(w, "GetGame", err)
		return
	}

	that.writeJSON(w, http.StatusOK, game)
}

func (that *handlers) MakeTurn(w http.ResponseWriter, r *http.Request) {
	var action engine.Action
	if err := json.NewDecoder(r.Body).Decode(&action); err != nil {
		that.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	game, err := that.gameUseCase.MakeTurn(r.Context(), chi.URLParam(r, "id"), action)
	if err != nil {
		that.writeError(w, "MakeTurn", err)
		return
	}

	that.writeJSON(w, http.StatusOK, game)
}

func (that *handlers) Hint(w http.ResponseWriter, r *http.Request) {
	action, err := that.gameUseCase.Hint(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		that.writeError(w, "Hint", err)
		return
	}

	that.writeJSON(w, http.StatusOK, hintResponse{Action: action})
}

func (that *handlers) Analyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if errors.Is(err, engine.ErrMalformedBoard) || errors.Is(err, engine.ErrUnknownCell) {
			that.writeError(w, "Analyze", err)
			return
		}

		that.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid board"})

		return
	}

	analysis, err := that.gameUseCase.Analyze(r.Context(), req.Board)
	if err != nil {
		that.writeError(w, "Analyze", err)
		return
	}

	that.writeJSON(w, http.StatusOK, analysis)
}

func (that *handlers) ArchivedGame(w http.ResponseWriter, r *http.Request) {
	game, err := that.gameUseCase.ArchivedGame(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		that.writeError(w, "ArchivedGame", err)
		return
	}

	that.writeJSON(w, http.StatusOK, game)
}

func (that *handlers) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := that.gameUseCase.Stats(r.Context())
	if err != nil {
		that.writeError(w, "Stats", err)
		return
	}

	that.writeJSON(w, http.StatusOK, stats)
}

// writeError maps domain errors to status codes; anything unknown is a 500.
func (that *handlers) writeError(w http.ResponseWriter, method string, err error) {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, apperror.ErrGameNotFound):
		status = http.StatusNotFound
	case errors.Is(err, apperror.ErrGameFinished), errors.Is(err, apperror.ErrNotYourTurn):
		status = http.StatusConflict
	case errors.Is(err, engine.ErrInvalidAction):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, apperror.ErrInvalidMark),
		errors.Is(err, apperror.ErrInvalidDifficulty),
		errors.Is(err, engine.ErrUnknownCell),
		errors.Is(err, engine.ErrMalformedBoard):
		status = http.StatusBadRequest
	}

	if status == http.StatusInternalServerError {
		that.logger.Error("request failed", "method", method, "error", err)
		that.writeJSON(w, status, errorResponse{Error: "internal server error"})

		return
	}

	that.writeJSON(w, status, errorResponse{Error: err.Error()})
}

func (that *handlers) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		that.logger.Error("failed to encode response", "error", err)
	}
}
