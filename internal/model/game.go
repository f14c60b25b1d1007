package model

import "time"

// GameID uniquely identifies a single round
type GameID string

// GameStatus is the phase of a round. It is stored on the state and set by each transition
type GameStatus string

const (
	GameStatusNotStarted GameStatus = "not_started"
	GameStatusActive     GameStatus = "active"
	GameStatusWon        GameStatus = "won"
	GameStatusLost       GameStatus = "lost"
)

// Game range and trial budget
const (
	MinNumber = 0
	MaxNumber = 100
	MaxTrials = 10
)

// Feedback messages shown to the player
const (
	FeedbackGameStarted  = "Secret number generated. Good luck guessing it"
	FeedbackInvalidGuess = "Please enter a valid number between 0 and 100."
)

// GameState is one player's view of the guessing game.
// It is replaced wholesale on every new game and copied, not shared, between operations.
type GameState struct {
	ID       GameID
	PlayerID PlayerID
	Status   GameStatus

	SecretNumber    *int // nil until the first game starts
	GuessText       string
	TrialsRemaining int
	Feedback        string // empty when no message has been shown
	LastGuess       *int   // last well-formed guess, nil if none this round

	InputLocked   bool
	SubmitLocked  bool
	NewGameLocked bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewNotStartedGame returns the state before any round has begun:
// no secret, full trials, only "new game" available
func NewNotStartedGame(playerID PlayerID) GameState {
	return GameState{
		PlayerID:        playerID,
		Status:          GameStatusNotStarted,
		TrialsRemaining: MaxTrials,
		InputLocked:     true,
		SubmitLocked:    true,
		NewGameLocked:   false,
	}
}

// IsActive returns true while guesses are accepted
func (g GameState) IsActive() bool {
	return g.Status == GameStatusActive
}

// IsOver returns true once the round is won or lost
func (g GameState) IsOver() bool {
	return g.Status == GameStatusWon || g.Status == GameStatusLost
}

// TrialsUsed returns the number of well-formed guesses made this round
func (g GameState) TrialsUsed() int {
	return MaxTrials - g.TrialsRemaining
}

// Clone returns a deep copy so callers can never alias pointer fields
func (g GameState) Clone() GameState {
	if g.SecretNumber != nil {
		v := *g.SecretNumber
		g.SecretNumber = &v
	}
	if g.LastGuess != nil {
		v := *g.LastGuess
		g.LastGuess = &v
	}
	return g
}
