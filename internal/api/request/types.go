package request

// CreateGuestRequest is the request body for creating a guest player
type CreateGuestRequest struct {
	DisplayName string `json:"display_name"`
}

// SetGuessTextRequest is the request body for editing the guess text
type SetGuessTextRequest struct {
	Text string `json:"text"`
}

// GuessRequest is the request body for submitting a guess.
// When Text is nil the guess text already on the game is submitted.
type GuessRequest struct {
	Text *string `json:"text,omitempty"`
}
