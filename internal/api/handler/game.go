package handler

import (
	"net/http"

	"github.com/mcoot/numberguess/internal/api/middleware"
	"github.com/mcoot/numberguess/internal/api/request"
	"github.com/mcoot/numberguess/internal/api/response"
	"github.com/mcoot/numberguess/internal/model"
	"github.com/mcoot/numberguess/internal/services/game"
)

// GameHandler handles game-related endpoints
type GameHandler struct {
	gameController game.ControllerInterface
}

// NewGameHandler creates a new game handler
func NewGameHandler(gameController game.ControllerInterface) *GameHandler {
	return &GameHandler{
		gameController: gameController,
	}
}

// Get handles GET /api/v1/game
func (h *GameHandler) Get(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())

	g, err := h.gameController.GetGame(r.Context(), player.ID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameFromModel(g))
}

// New handles POST /api/v1/game
func (h *GameHandler) New(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())

	g, err := h.gameController.NewGame(r.Context(), player.ID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.GameFromModel(g))
}

// SetGuessText handles PUT /api/v1/game/guess-text
func (h *GameHandler) SetGuessText(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())

	var req request.SetGuessTextRequest
	if err := decodeBody(w, r, &req, false); err != nil {
		WriteError(w, err)
		return
	}

	g, err := h.gameController.SetGuessText(r.Context(), player.ID, req.Text)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameFromModel(g))
}

// Guess handles POST /api/v1/game/guess
func (h *GameHandler) Guess(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())

	// An empty body submits whatever guess text is already set
	var req request.GuessRequest
	if err := decodeBody(w, r, &req, true); err != nil {
		WriteError(w, err)
		return
	}

	var (
		g   *model.GameState
		err error
	)
	if req.Text != nil {
		g, err = h.gameController.Guess(r.Context(), player.ID, *req.Text)
	} else {
		g, err = h.gameController.SubmitGuess(r.Context(), player.ID)
	}
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameFromModel(g))
}
