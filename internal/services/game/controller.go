package game

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/mcoot/numberguess/internal/dependencies/clock"
	"github.com/mcoot/numberguess/internal/dependencies/random"
	"github.com/mcoot/numberguess/internal/model"
	"github.com/mcoot/numberguess/internal/storage"
)

// lockStripes bounds the number of mutexes used to serialise per-player updates
const lockStripes = 64

// Controller owns each player's guessing game and persists it between operations
type Controller struct {
	storage storage.Storage
	clock   clock.Clock
	random  random.Random
	newID   func() model.GameID
	logger  *slog.Logger

	locks [lockStripes]sync.Mutex
}

// NewController creates a new game Controller
func NewController(
	storage storage.Storage,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage: storage,
		clock:   clock,
		random:  random,
		newID: func() model.GameID {
			return model.GameID(uuid.NewString())
		},
		logger: logger,
	}
}

// lockFor returns the mutex guarding the given player's game
func (c *Controller) lockFor(playerID model.PlayerID) *sync.Mutex {
	h := fnv.New32a()
	_, _ = h.Write([]byte(playerID))
	return &c.locks[h.Sum32()%lockStripes]
}

// GetGame returns the player's current game, starting one if none exists yet
func (c *Controller) GetGame(ctx context.Context, playerID model.PlayerID) (*model.GameState, error) {
	mu := c.lockFor(playerID)
	mu.Lock()
	defer mu.Unlock()

	return c.load(ctx, playerID)
}

// NewGame discards the player's current game and starts a fresh round
func (c *Controller) NewGame(ctx context.Context, playerID model.PlayerID) (*model.GameState, error) {
	mu := c.lockFor(playerID)
	mu.Lock()
	defer mu.Unlock()

	return c.start(ctx, model.NewNotStartedGame(playerID))
}

// SetGuessText records the raw text currently in the player's input field
func (c *Controller) SetGuessText(ctx context.Context, playerID model.PlayerID, text string) (*model.GameState, error) {
	mu := c.lockFor(playerID)
	mu.Lock()
	defer mu.Unlock()

	current, err := c.load(ctx, playerID)
	if err != nil {
		return nil, err
	}

	next := SetGuessText(*current, text)
	return c.save(ctx, &next)
}

// SubmitGuess evaluates the player's current guess text
func (c *Controller) SubmitGuess(ctx context.Context, playerID model.PlayerID) (*model.GameState, error) {
	mu := c.lockFor(playerID)
	mu.Lock()
	defer mu.Unlock()

	current, err := c.load(ctx, playerID)
	if err != nil {
		return nil, err
	}

	return c.submit(ctx, *current)
}

// Guess sets the guess text and submits it as one atomic step
func (c *Controller) Guess(ctx context.Context, playerID model.PlayerID, text string) (*model.GameState, error) {
	mu := c.lockFor(playerID)
	mu.Lock()
	defer mu.Unlock()

	current, err := c.load(ctx, playerID)
	if err != nil {
		return nil, err
	}

	return c.submit(ctx, SetGuessText(*current, text))
}

// submit applies SubmitGuess, logs round outcomes and persists the result
func (c *Controller) submit(ctx context.Context, current model.GameState) (*model.GameState, error) {
	next := SubmitGuess(current)

	if current.IsActive() && next.IsOver() {
		c.logger.Info("game "+string(next.Status),
			slog.String("game_id", string(next.ID)),
			slog.String("player_id", string(next.PlayerID)),
			slog.Int("trials_used", next.TrialsUsed()),
		)
	}

	return c.save(ctx, &next)
}

// load fetches the player's game, starting the first round when none is stored
func (c *Controller) load(ctx context.Context, playerID model.PlayerID) (*model.GameState, error) {
	game, err := c.storage.GetGame(ctx, playerID)
	if err == nil {
		return game, nil
	}
	if !errors.Is(err, model.ErrGameNotFound) {
		return nil, fmt.Errorf("load game: %w", err)
	}
	return c.start(ctx, model.NewNotStartedGame(playerID))
}

// start draws a secret in [MinNumber, MaxNumber] and saves the new round
func (c *Controller) start(ctx context.Context, prev model.GameState) (*model.GameState, error) {
	next := Start(prev, c.newID(), DrawSecret(c.random))
	next.CreatedAt = c.clock.Now()

	game, err := c.save(ctx, &next)
	if err != nil {
		return nil, err
	}

	c.logger.Info("game started",
		slog.String("game_id", string(game.ID)),
		slog.String("player_id", string(game.PlayerID)),
	)

	return game, nil
}

// save stamps and persists the state
func (c *Controller) save(ctx context.Context, game *model.GameState) (*model.GameState, error) {
	game.UpdatedAt = c.clock.Now()

	if err := c.storage.SaveGame(ctx, game); err != nil {
		c.logger.Error("failed to save game",
			slog.String("game_id", string(game.ID)),
			slog.String("player_id", string(game.PlayerID)),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("save game: %w", err)
	}

	return game, nil
}

// ControllerInterface is the set of game operations exposed to the transport layers
type ControllerInterface interface {
	GetGame(ctx context.Context, playerID model.PlayerID) (*model.GameState, error)
	NewGame(ctx context.Context, playerID model.PlayerID) (*model.GameState, error)
	SetGuessText(ctx context.Context, playerID model.PlayerID, text string) (*model.GameState, error)
	SubmitGuess(ctx context.Context, playerID model.PlayerID) (*model.GameState, error)
	Guess(ctx context.Context, playerID model.PlayerID, text string) (*model.GameState, error)
}

var _ ControllerInterface = (*Controller)(nil)
