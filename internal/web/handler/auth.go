package handler

import (
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mcoot/numberguess/internal/services/auth"
	"github.com/mcoot/numberguess/internal/web/middleware"
)

// AuthHandler handles guest sign-in and logout
type AuthHandler struct {
	authService *auth.Service
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService *auth.Service) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// CreateGuest handles guest player creation
func (h *AuthHandler) CreateGuest(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		middleware.SetFlash(w, "error", "Invalid form data")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	displayName := r.FormValue("display_name")
	next := r.FormValue("next")

	session, err := h.authService.CreateGuestPlayer(r.Context(), displayName)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidDisplayName) {
			middleware.SetFlash(w, "error", "Display name must be 1-20 characters")
		} else {
			middleware.SetFlash(w, "error", "Failed to create guest player")
		}
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	h.setSessionCookie(w, session)
	middleware.SetFlash(w, "success", "Welcome, "+session.Player.DisplayName+"!")

	// Redirect to original destination or the game
	http.Redirect(w, r, localRedirect(next, "/play"), http.StatusSeeOther)
}

// localRedirect returns next if it is a path on this site, otherwise fallback.
// Browsers read a backslash as a slash, so "/\host" must be refused like "//host".
func localRedirect(next, fallback string) string {
	if !strings.HasPrefix(next, "/") || strings.ContainsRune(next, '\\') {
		return fallback
	}
	u, err := url.Parse(next)
	if err != nil || u.Scheme != "" || u.Host != "" || strings.HasPrefix(u.Path, "//") {
		return fallback
	}
	return u.RequestURI()
}

// Logout handles logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(middleware.SessionCookieName); err == nil {
		_ = h.authService.InvalidateSession(r.Context(), cookie.Value)
	}

	// Clear session cookie
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	middleware.SetFlash(w, "info", "You have been logged out")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *AuthHandler) setSessionCookie(w http.ResponseWriter, session *auth.Session) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    session.Token,
		Path:     "/",
		Expires:  session.ExpiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
