package storage

import (
	"context"

	"github.com/mcoot/numberguess/internal/model"
)

// Storage defines the interface for data persistence
type Storage interface {
	// Player operations
	SavePlayer(ctx context.Context, player *model.Player) error
	GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error)
	DeletePlayer(ctx context.Context, id model.PlayerID) error

	// Session operations, keyed by token digest
	SaveSession(ctx context.Context, session *model.Session) error
	GetSession(ctx context.Context, tokenDigest string) (*model.Session, error)
	DeleteSession(ctx context.Context, tokenDigest string) error

	// Game operations, one current game per player
	SaveGame(ctx context.Context, game *model.GameState) error
	GetGame(ctx context.Context, playerID model.PlayerID) (*model.GameState, error)
	DeleteGame(ctx context.Context, playerID model.PlayerID) error
}
