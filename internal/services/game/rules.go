package game

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/mcoot/numberguess/internal/dependencies/random"
	"github.com/mcoot/numberguess/internal/model"
)

// DrawSecret picks a secret uniformly from [MinNumber, MaxNumber]
func DrawSecret(r random.Random) int {
	return model.MinNumber + r.Intn(model.MaxNumber-model.MinNumber+1)
}

// Start begins a new round with the given secret, replacing whatever state came before.
// Only the player binding is carried over.
func Start(prev model.GameState, id model.GameID, secret int) model.GameState {
	return model.GameState{
		ID:              id,
		PlayerID:        prev.PlayerID,
		Status:          model.GameStatusActive,
		SecretNumber:    &secret,
		GuessText:       "",
		TrialsRemaining: model.MaxTrials,
		Feedback:        model.FeedbackGameStarted,
		InputLocked:     false,
		SubmitLocked:    false,
		NewGameLocked:   true,
	}
}

// SetGuessText stores the raw input text. Edits are ignored while the input is locked.
func SetGuessText(s model.GameState, text string) model.GameState {
	next := s.Clone()
	if next.InputLocked {
		return next
	}
	next.GuessText = text
	return next
}

// SubmitGuess evaluates the current guess text against the secret
func SubmitGuess(s model.GameState) model.GameState {
	next := s.Clone()
	if next.SubmitLocked || next.SecretNumber == nil {
		return next
	}

	guess, ok := ParseGuess(next.GuessText)
	if !ok {
		next.Feedback = model.FeedbackInvalidGuess
		return next
	}

	secret := *next.SecretNumber
	trialsLeft := next.TrialsRemaining - 1

	next.TrialsRemaining = trialsLeft
	next.LastGuess = &guess

	switch {
	case guess == secret:
		next.Feedback = fmt.Sprintf("%d is correct with %d%%", guess, ScorePercent(trialsLeft))
		next.Status = model.GameStatusWon
		lockRound(&next)
	case trialsLeft <= 0:
		next.Feedback = fmt.Sprintf("Out of trials! The number was %d.", secret)
		next.Status = model.GameStatusLost
		lockRound(&next)
	case guess > secret:
		next.Feedback = fmt.Sprintf("%d is too high", guess)
	default:
		next.Feedback = fmt.Sprintf("%d is too low", guess)
	}

	return next
}

// lockRound switches the controls from guessing mode to game-over mode
func lockRound(s *model.GameState) {
	s.InputLocked = true
	s.SubmitLocked = true
	s.NewGameLocked = false
}

// ParseGuess reads a guess from raw input text.
//
// The trimmed text must start with a base-10 integer (an optional sign followed by digits);
// anything after the digits is ignored, so "42abc" reads as 42. The value must lie in
// [MinNumber, MaxNumber].
func ParseGuess(text string) (int, bool) {
	s := strings.TrimFunc(text, isGuessPadding)
	if s == "" {
		return 0, false
	}

	end := 0
	if s[0] == '+' || s[0] == '-' {
		end = 1
	}
	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return 0, false
	}

	n, err := strconv.Atoi(s[:end])
	if err != nil {
		// Only overflow reaches here, which is out of range anyway
		return 0, false
	}
	if n < model.MinNumber || n > model.MaxNumber {
		return 0, false
	}
	return n, true
}

// ScorePercent converts the trials left after a winning guess into a percentage
func ScorePercent(trialsLeft int) int {
	return int(math.Round(float64(trialsLeft) / float64(model.MaxTrials) * 100))
}

// isGuessPadding reports whether r is whitespace or a byte order mark
func isGuessPadding(r rune) bool {
	return unicode.IsSpace(r) || r == '\ufeff'
}
