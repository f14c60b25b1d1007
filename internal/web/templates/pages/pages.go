package pages

import (
	"github.com/mcoot/numberguess/internal/model"
	"github.com/mcoot/numberguess/internal/web/templates/layout"
)

// HomeData holds data for the home page
type HomeData struct {
	layout.PageData
	Next string
}

// PlayData holds data for the play page
type PlayData struct {
	layout.PageData
	Game *model.GameState
}
