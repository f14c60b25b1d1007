package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mcoot/numberguess/internal/model"
	"github.com/mcoot/numberguess/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// setJSON stores v under key with the given TTL (0 means no expiry)
func (s *Storage) setJSON(ctx context.Context, key string, v any, ttl time.Duration) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key, data, ttl).Err()
}

// getJSON loads key into v, returning notFound if the key is missing
func (s *Storage) getJSON(ctx context.Context, key string, v any, notFound error) error {
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return notFound
		}
		return err
	}
	return json.Unmarshal(data, v)
}

// Player operations

func (s *Storage) SavePlayer(ctx context.Context, player *model.Player) error {
	return s.setJSON(ctx, playerKey(player.ID), player, s.cfg.PlayerTTL)
}

func (s *Storage) GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	var player model.Player
	if err := s.getJSON(ctx, playerKey(id), &player, model.ErrPlayerNotFound); err != nil {
		return nil, err
	}
	return &player, nil
}

func (s *Storage) DeletePlayer(ctx context.Context, id model.PlayerID) error {
	return s.client.Del(ctx, playerKey(id)).Err()
}

// Session operations

func (s *Storage) SaveSession(ctx context.Context, session *model.Session) error {
	return s.setJSON(ctx, sessionKey(session.TokenDigest), session, s.cfg.SessionTTL)
}

func (s *Storage) GetSession(ctx context.Context, tokenDigest string) (*model.Session, error) {
	var session model.Session
	if err := s.getJSON(ctx, sessionKey(tokenDigest), &session, model.ErrSessionNotFound); err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *Storage) DeleteSession(ctx context.Context, tokenDigest string) error {
	return s.client.Del(ctx, sessionKey(tokenDigest)).Err()
}

// Game operations

// SaveGame stores the player's current game and slides the player's own expiry forward,
// so a player who keeps playing is never evicted mid-round
func (s *Storage) SaveGame(ctx context.Context, game *model.GameState) error {
	data, err := json.Marshal(game)
	if err != nil {
		return err
	}
	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, gameKey(game.PlayerID), data, s.cfg.GameTTL)
		if s.cfg.PlayerTTL > 0 {
			pipe.Expire(ctx, playerKey(game.PlayerID), s.cfg.PlayerTTL)
		}
		return nil
	})
	return err
}

func (s *Storage) GetGame(ctx context.Context, playerID model.PlayerID) (*model.GameState, error) {
	var game model.GameState
	if err := s.getJSON(ctx, gameKey(playerID), &game, model.ErrGameNotFound); err != nil {
		return nil, err
	}
	return &game, nil
}

func (s *Storage) DeleteGame(ctx context.Context, playerID model.PlayerID) error {
	return s.client.Del(ctx, gameKey(playerID)).Err()
}
