package components

//go:generate go run github.com/a-h/templ/cmd/templ generate -path ..

// Heading is the instruction shown above the game
const Heading = "Guess a number between 0 and 100"
