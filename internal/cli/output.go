package cli

import (
	"encoding/json"
	"fmt"
	"io"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
}

// NewOutput creates a new Output formatter writing to w
func NewOutput(format string, w io.Writer) *Output {
	return &Output{format: format, w: w}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Fprintln(o.w, string(data))
	} else {
		fmt.Fprintln(o.w, msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Player:
		o.printPlayer(v)
	case AuthResult:
		o.printAuthResult(v)
	case Game:
		o.printGame(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Player response type (matches API)
type Player struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
}

// AuthResult combines player and token
type AuthResult struct {
	Player       Player `json:"player"`
	SessionToken string `json:"session_token"`
}

// Game response type
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

// IsOver reports whether the round has been won or lost
func (g Game) IsOver() bool {
	return g.Status == "won" || g.Status == "lost"
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printPlayer(p Player) {
	fmt.Fprintf(o.w, "Player: %s (%s)\n", p.DisplayName, p.ID)
}

func (o *Output) printAuthResult(a AuthResult) {
	o.printPlayer(a.Player)
	fmt.Fprintf(o.w, "Token: %s\n", a.SessionToken)
}

func (o *Output) printGame(g Game) {
	fmt.Fprintf(o.w, "Game: %s\n", g.ID)
	fmt.Fprintf(o.w, "Status: %s\n", g.Status)
	fmt.Fprintf(o.w, "%d Trials Remaining\n", g.TrialsRemaining)
	if g.GuessText != "" {
		fmt.Fprintf(o.w, "Guess: %s\n", g.GuessText)
	}
	if g.Feedback != "" {
		fmt.Fprintf(o.w, "Feedback: %s\n", g.Feedback)
	}
	if g.SecretNumber != nil {
		fmt.Fprintf(o.w, "Secret: %d\n", *g.SecretNumber)
	}
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Fprintf(o.w, "Status: %s\n", h.Status)
}
