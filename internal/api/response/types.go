package response

import (
	"github.com/mcoot/numberguess/internal/model"
	"github.com/mcoot/numberguess/internal/services/auth"
)

// Player represents a player in API responses
type Player struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
}

// PlayerFromModel converts a model.Player to a response Player
func PlayerFromModel(p *model.Player) Player {
	return Player{
		ID:          string(p.ID),
		DisplayName: p.DisplayName,
	}
}

// AuthResponse is the response for authentication endpoints
type AuthResponse struct {
	Player       Player `json:"player"`
	SessionToken string `json:"session_token"`
}

// AuthResponseFromSession creates an AuthResponse from a session
func AuthResponseFromSession(s *auth.Session) AuthResponse {
	return AuthResponse{
		Player:       PlayerFromModel(&s.Player),
		SessionToken: s.Token,
	}
}

// Game represents the state of a player's round
type Game struct {
	ID              string `json:"id"`
	Status          string `json:"status"`
	GuessText       string `json:"guess_text"`
	TrialsRemaining int    `json:"trials_remaining"`
	MaxTrials       int    `json:"max_trials"`
	Feedback        string `json:"feedback"`
	InputLocked     bool   `json:"input_locked"`
	SubmitLocked    bool   `json:"submit_locked"`
	NewGameLocked   bool   `json:"new_game_locked"`
	LastGuess       *int   `json:"last_guess"`
	SecretNumber    *int   `json:"secret_number,omitempty"`
}

// GameFromModel converts a model.GameState.
// The secret number is only included once the round is over.
func GameFromModel(g *model.GameState) Game {
	resp := Game{
		ID:              string(g.ID),
		Status:          string(g.Status),
		GuessText:       g.GuessText,
		TrialsRemaining: g.TrialsRemaining,
		MaxTrials:       model.MaxTrials,
		Feedback:        g.Feedback,
		InputLocked:     g.InputLocked,
		SubmitLocked:    g.SubmitLocked,
		NewGameLocked:   g.NewGameLocked,
	}
	if g.LastGuess != nil {
		v := *g.LastGuess
		resp.LastGuess = &v
	}
	if g.IsOver() && g.SecretNumber != nil {
		v := *g.SecretNumber
		resp.SecretNumber = &v
	}
	return resp
}
