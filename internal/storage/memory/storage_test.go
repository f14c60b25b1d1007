package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/numberguess/internal/model"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

func intPtr(v int) *int { return &v }

// Player tests

func (s *StorageSuite) TestSaveAndGetPlayer() {
	player := &model.Player{
		ID:          "player-1",
		DisplayName: "Alice",
		CreatedAt:   time.Now(),
	}

	err := s.storage.SavePlayer(s.ctx, player)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetPlayer(s.ctx, "player-1")
	s.Require().NoError(err)
	s.Equal(player.ID, retrieved.ID)
	s.Equal(player.DisplayName, retrieved.DisplayName)
}

func (s *StorageSuite) TestGetPlayerNotFound() {
	_, err := s.storage.GetPlayer(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *StorageSuite) TestDeletePlayer() {
	player := &model.Player{ID: "player-1", DisplayName: "Alice"}
	_ = s.storage.SavePlayer(s.ctx, player)

	err := s.storage.DeletePlayer(s.ctx, "player-1")
	s.Require().NoError(err)

	_, err = s.storage.GetPlayer(s.ctx, "player-1")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

// Session tests

func (s *StorageSuite) TestSaveAndGetSession() {
	session := &model.Session{
		TokenDigest: "digest-1",
		PlayerID:    "player-1",
		ExpiresAt:   time.Now().Add(time.Hour),
	}

	s.Require().NoError(s.storage.SaveSession(s.ctx, session))

	retrieved, err := s.storage.GetSession(s.ctx, "digest-1")
	s.Require().NoError(err)
	s.Equal(model.PlayerID("player-1"), retrieved.PlayerID)
}

func (s *StorageSuite) TestDeleteSession() {
	_ = s.storage.SaveSession(s.ctx, &model.Session{TokenDigest: "digest-1"})

	s.Require().NoError(s.storage.DeleteSession(s.ctx, "digest-1"))

	_, err := s.storage.GetSession(s.ctx, "digest-1")
	s.ErrorIs(err, model.ErrSessionNotFound)
}

// Game tests

func (s *StorageSuite) TestSaveAndGetGame() {
	game := &model.GameState{
		ID:              "game-1",
		PlayerID:        "player-1",
		Status:          model.GameStatusActive,
		SecretNumber:    intPtr(42),
		TrialsRemaining: 7,
		Feedback:        "12 is too low",
	}

	s.Require().NoError(s.storage.SaveGame(s.ctx, game))

	retrieved, err := s.storage.GetGame(s.ctx, "player-1")
	s.Require().NoError(err)
	s.Equal(game.ID, retrieved.ID)
	s.Equal(42, *retrieved.SecretNumber)
	s.Equal(7, retrieved.TrialsRemaining)
}

func (s *StorageSuite) TestGetGameNotFound() {
	_, err := s.storage.GetGame(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrGameNotFound)
}

func (s *StorageSuite) TestSaveGameReplacesPrevious() {
	_ = s.storage.SaveGame(s.ctx, &model.GameState{ID: "game-1", PlayerID: "player-1"})
	_ = s.storage.SaveGame(s.ctx, &model.GameState{ID: "game-2", PlayerID: "player-1"})

	retrieved, err := s.storage.GetGame(s.ctx, "player-1")
	s.Require().NoError(err)
	s.Equal(model.GameID("game-2"), retrieved.ID)
}

func (s *StorageSuite) TestGameIsCopiedOnSaveAndGet() {
	game := &model.GameState{ID: "game-1", PlayerID: "player-1", SecretNumber: intPtr(5)}
	_ = s.storage.SaveGame(s.ctx, game)

	*game.SecretNumber = 99
	game.Feedback = "mutated"

	retrieved, err := s.storage.GetGame(s.ctx, "player-1")
	s.Require().NoError(err)
	s.Equal(5, *retrieved.SecretNumber)
	s.Empty(retrieved.Feedback)

	*retrieved.SecretNumber = 77
	again, _ := s.storage.GetGame(s.ctx, "player-1")
	s.Equal(5, *again.SecretNumber)
}

func (s *StorageSuite) TestDeleteGame() {
	_ = s.storage.SaveGame(s.ctx, &model.GameState{ID: "game-1", PlayerID: "player-1"})

	s.Require().NoError(s.storage.DeleteGame(s.ctx, "player-1"))

	_, err := s.storage.GetGame(s.ctx, "player-1")
	s.ErrorIs(err, model.ErrGameNotFound)
}
