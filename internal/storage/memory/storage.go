package memory

import (
	"context"
	"sync"

	"github.com/mcoot/numberguess/internal/model"
	"github.com/mcoot/numberguess/internal/storage"
)

// Storage is an in-memory implementation of the storage interface.
// Values are copied in and out so callers never share state with the store.
type Storage struct {
	mu sync.RWMutex

	players  map[model.PlayerID]model.Player
	sessions map[string]model.Session
	games    map[model.PlayerID]model.GameState
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		players:  make(map[model.PlayerID]model.Player),
		sessions: make(map[string]model.Session),
		games:    make(map[model.PlayerID]model.GameState),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Player operations

func (s *Storage) SavePlayer(ctx context.Context, player *model.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.players[player.ID] = *player
	return nil
}

func (s *Storage) GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	player, ok := s.players[id]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	return &player, nil
}

func (s *Storage) DeletePlayer(ctx context.Context, id model.PlayerID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.players, id)
	return nil
}

// Session operations

func (s *Storage) SaveSession(ctx context.Context, session *model.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.TokenDigest] = *session
	return nil
}

func (s *Storage) GetSession(ctx context.Context, tokenDigest string) (*model.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[tokenDigest]
	if !ok {
		return nil, model.ErrSessionNotFound
	}
	return &session, nil
}

func (s *Storage) DeleteSession(ctx context.Context, tokenDigest string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, tokenDigest)
	return nil
}

// Game operations

func (s *Storage) SaveGame(ctx context.Context, game *model.GameState) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.games[game.PlayerID] = game.Clone()
	return nil
}

func (s *Storage) GetGame(ctx context.Context, playerID model.PlayerID) (*model.GameState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	game, ok := s.games[playerID]
	if !ok {
		return nil, model.ErrGameNotFound
	}
	clone := game.Clone()
	return &clone, nil
}

func (s *Storage) DeleteGame(ctx context.Context, playerID model.PlayerID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.games, playerID)
	return nil
}
