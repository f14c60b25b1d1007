package handler

import (
	"log/slog"
	"net/http"

	"github.com/mcoot/numberguess/internal/model"
	"github.com/mcoot/numberguess/internal/services/game"
	"github.com/mcoot/numberguess/internal/web/middleware"
	"github.com/mcoot/numberguess/internal/web/templates/components"
	"github.com/mcoot/numberguess/internal/web/templates/layout"
	"github.com/mcoot/numberguess/internal/web/templates/pages"
)

// PlayHandler handles the game page and its actions
type PlayHandler struct {
	gameController game.ControllerInterface
	logger         *slog.Logger
}

// NewPlayHandler creates a new PlayHandler
func NewPlayHandler(gameController game.ControllerInterface, logger *slog.Logger) *PlayHandler {
	return &PlayHandler{
		gameController: gameController,
		logger:         logger,
	}
}

// View renders the game page, starting a round if the player has none
func (h *PlayHandler) View(w http.ResponseWriter, r *http.Request) {
	player := middleware.GetPlayer(r.Context())

	g, err := h.gameController.GetGame(r.Context(), player.ID)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	data := pages.PlayData{
		PageData: layout.PageData{
			Title:  "Play",
			Player: player,
			Flash:  middleware.GetFlash(r.Context()),
		},
		Game: g,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pages.Play(data).Render(r.Context(), w); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// Guess handles the guess form submission
func (h *PlayHandler) Guess(w http.ResponseWriter, r *http.Request) {
	player := middleware.GetPlayer(r.Context())

	if err := r.ParseForm(); err != nil {
		middleware.SetFlash(w, "error", "Invalid form data")
		http.Redirect(w, r, "/play", http.StatusSeeOther)
		return
	}

	g, err := h.gameController.Guess(r.Context(), player.ID, r.FormValue("guess"))
	if err != nil {
		h.fail(w, r, err)
		return
	}

	h.respond(w, r, g)
}

// NewGame handles the new game button
func (h *PlayHandler) NewGame(w http.ResponseWriter, r *http.Request) {
	player := middleware.GetPlayer(r.Context())

	g, err := h.gameController.NewGame(r.Context(), player.ID)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	h.respond(w, r, g)
}

// respond returns the game panel fragment for HTMX, or redirects back to the page
func (h *PlayHandler) respond(w http.ResponseWriter, r *http.Request, g *model.GameState) {
	if !isHTMX(r) {
		http.Redirect(w, r, "/play", http.StatusSeeOther)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := components.GamePanel(g).Render(r.Context(), w); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

func (h *PlayHandler) fail(w http.ResponseWriter, r *http.Request, err error) {
	h.logger.Error("game action failed",
		slog.String("path", r.URL.Path),
		slog.Any("error", err),
	)

	if isHTMX(r) {
		http.Error(w, "Something went wrong, please try again", http.StatusInternalServerError)
		return
	}
	middleware.SetFlash(w, "error", "Something went wrong, please try again")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func isHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}
