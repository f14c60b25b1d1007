package auth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/crypto/blake2b"

	"github.com/mcoot/numberguess/internal/dependencies/clock"
	"github.com/mcoot/numberguess/internal/model"
	"github.com/mcoot/numberguess/internal/storage"
)

// Errors
var (
	ErrInvalidSession     = errors.New("invalid or expired session")
	ErrInvalidDisplayName = errors.New("display name must be 1-20 characters")
)

// Session represents an authenticated session as seen by the holder of the token
type Session struct {
	Token     string
	PlayerID  model.PlayerID
	Player    model.Player
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Service handles guest players and session management
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger

	sessionDuration time.Duration
}

// Config holds configuration for the auth service
type Config struct {
	SessionDuration time.Duration
}

// DefaultConfig returns default auth configuration
func DefaultConfig() Config {
	return Config{
		SessionDuration: 24 * time.Hour,
	}
}

// New creates a new AuthService
func New(storage storage.Storage, clock clock.Clock, cfg Config, logger *slog.Logger) *Service {
	if cfg.SessionDuration == 0 {
		cfg.SessionDuration = DefaultConfig().SessionDuration
	}
	return &Service{
		storage:         storage,
		clock:           clock,
		logger:          logger,
		sessionDuration: cfg.SessionDuration,
	}
}

// NormalizeDisplayName trims the name and checks its length
func NormalizeDisplayName(displayName string) (string, error) {
	name := strings.TrimSpace(displayName)
	if name == "" || utf8.RuneCountInString(name) > model.MaxDisplayNameLength {
		return "", ErrInvalidDisplayName
	}
	return name, nil
}

// CreateGuestPlayer creates an anonymous player and session
func (s *Service) CreateGuestPlayer(ctx context.Context, displayName string) (*Session, error) {
	name, err := NormalizeDisplayName(displayName)
	if err != nil {
		return nil, err
	}

	player := &model.Player{
		ID:          model.PlayerID(generateToken("p_")),
		DisplayName: name,
		CreatedAt:   s.clock.Now(),
	}

	if err := s.storage.SavePlayer(ctx, player); err != nil {
		return nil, fmt.Errorf("save player: %w", err)
	}

	session, err := s.createSession(ctx, player)
	if err != nil {
		return nil, err
	}

	s.logger.Info("guest player created",
		slog.String("player_id", string(player.ID)),
	)

	return session, nil
}

// ValidateSession checks if a session token is valid and returns the session
func (s *Service) ValidateSession(ctx context.Context, token string) (*Session, error) {
	if token == "" {
		return nil, ErrInvalidSession
	}

	digest := TokenDigest(token)
	stored, err := s.storage.GetSession(ctx, digest)
	if err != nil {
		if errors.Is(err, model.ErrSessionNotFound) {
			return nil, ErrInvalidSession
		}
		return nil, err
	}

	if s.clock.Now().After(stored.ExpiresAt) {
		_ = s.storage.DeleteSession(ctx, digest)
		return nil, ErrInvalidSession
	}

	player, err := s.storage.GetPlayer(ctx, stored.PlayerID)
	if err != nil {
		if errors.Is(err, model.ErrPlayerNotFound) {
			return nil, ErrInvalidSession
		}
		return nil, err
	}

	return &Session{
		Token:     token,
		PlayerID:  player.ID,
		Player:    *player,
		CreatedAt: stored.CreatedAt,
		ExpiresAt: stored.ExpiresAt,
	}, nil
}

// InvalidateSession ends a session. A guest cannot sign back in, so their player record
// and current round are removed along with it. Unknown tokens are not an error.
func (s *Service) InvalidateSession(ctx context.Context, token string) error {
	digest := TokenDigest(token)
	stored, err := s.storage.GetSession(ctx, digest)
	if err != nil {
		if errors.Is(err, model.ErrSessionNotFound) {
			return nil
		}
		return fmt.Errorf("load session: %w", err)
	}

	if err := s.storage.DeleteSession(ctx, digest); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	if err := s.storage.DeleteGame(ctx, stored.PlayerID); err != nil {
		return fmt.Errorf("delete game: %w", err)
	}
	if err := s.storage.DeletePlayer(ctx, stored.PlayerID); err != nil {
		return fmt.Errorf("delete player: %w", err)
	}

	s.logger.Info("guest player removed",
		slog.String("player_id", string(stored.PlayerID)),
	)
	return nil
}

// GetPlayer returns the player for a session token
func (s *Service) GetPlayer(ctx context.Context, token string) (*model.Player, error) {
	session, err := s.ValidateSession(ctx, token)
	if err != nil {
		return nil, err
	}
	return &session.Player, nil
}

// createSession creates and stores a new session for a player
func (s *Service) createSession(ctx context.Context, player *model.Player) (*Session, error) {
	token := generateToken("sess_")
	now := s.clock.Now()

	stored := &model.Session{
		TokenDigest: TokenDigest(token),
		PlayerID:    player.ID,
		CreatedAt:   now,
		ExpiresAt:   now.Add(s.sessionDuration),
	}

	if err := s.storage.SaveSession(ctx, stored); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}

	return &Session{
		Token:     token,
		PlayerID:  player.ID,
		Player:    *player,
		CreatedAt: stored.CreatedAt,
		ExpiresAt: stored.ExpiresAt,
	}, nil
}

// TokenDigest returns the storage key for a session token
func TokenDigest(token string) string {
	sum := blake2b.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// generateToken generates a random ID with a prefix
func generateToken(prefix string) string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return prefix + base64.RawURLEncoding.EncodeToString(b)
}
