package web_test

import (
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuestCreation(t *testing.T) {
	ts := newWebTestServer(t)

	// Create guest player
	form := url.Values{"display_name": {"Alice"}}
	rr := ts.post("/auth/guest", form)

	// Should redirect to the game
	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/play", rr.Header().Get("Location"))

	// Session cookie should be set
	assert.True(t, ts.cookies.hasSession())

	// Follow redirect and check we're logged in
	rr = ts.followRedirect(rr)
	assert.Equal(t, http.StatusOK, rr.Code)

	doc := parseHTML(rr.Body)
	assertContainsText(t, doc, "nav", "Alice")
	assertContainsElement(t, doc, "#game-panel")
}

func TestGuestCreationEmptyName(t *testing.T) {
	ts := newWebTestServer(t)

	form := url.Values{"display_name": {""}}
	rr := ts.post("/auth/guest", form)

	// Should redirect back home with a flash message
	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/", rr.Header().Get("Location"))
	assert.False(t, ts.cookies.hasSession())

	rr = ts.followRedirect(rr)
	doc := parseHTML(rr.Body)
	assertContainsText(t, doc, ".flash-error", "Display name")
}

func TestGuestCreationLongName(t *testing.T) {
	ts := newWebTestServer(t)

	form := url.Values{"display_name": {"abcdefghijklmnopqrstuvwxyz"}}
	rr := ts.post("/auth/guest", form)

	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.False(t, ts.cookies.hasSession())
}

func TestGuestCreationRedirectsToNext(t *testing.T) {
	tests := []struct {
		name string
		next string
		want string
	}{
		{"local path", "/play", "/play"},
		{"protocol relative is ignored", "//evil.example", "/play"},
		{"absolute url is ignored", "https://evil.example", "/play"},
		{"backslash host is ignored", `/\evil.example`, "/play"},
		{"double backslash is ignored", `/\\evil.example`, "/play"},
		{"relative path is ignored", "play", "/play"},
		{"query is kept", "/play?tab=1", "/play?tab=1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newWebTestServer(t)
			rr := ts.post("/auth/guest", url.Values{"display_name": {"Alice"}, "next": {tt.next}})
			assert.Equal(t, tt.want, rr.Header().Get("Location"))
		})
	}
}

func TestLogout(t *testing.T) {
	ts := newWebTestServer(t)
	ts.createGuestPlayer("Alice")
	token := ts.cookies.cookies["session"].Value

	rr := ts.post("/auth/logout", nil)
	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/", rr.Header().Get("Location"))
	assert.False(t, ts.cookies.hasSession())

	// The old token no longer authenticates
	_, err := ts.app.AuthService.ValidateSession(t.Context(), token)
	assert.Error(t, err)

	rr = ts.followRedirect(rr)
	doc := parseHTML(rr.Body)
	assertContainsText(t, doc, ".flash-info", "logged out")
	assertContainsElement(t, doc, "#guest-form")
}

func TestProtectedRouteRedirect(t *testing.T) {
	ts := newWebTestServer(t)

	rr := ts.get("/play")

	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/?next=%2Fplay", rr.Header().Get("Location"))
}

func TestProtectedRouteHTMXRedirect(t *testing.T) {
	ts := newWebTestServer(t)

	rr := ts.postHTMX("/play/guess", url.Values{"guess": {"5"}})

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Contains(t, rr.Header().Get("HX-Redirect"), "/?next=")
}

func TestExpiredSessionRedirects(t *testing.T) {
	ts := newWebTestServer(t)
	ts.createGuestPlayer("Alice")

	ts.app.MockClock.Advance(25 * time.Hour)

	rr := ts.get("/play")
	assert.Equal(t, http.StatusSeeOther, rr.Code)
}

func TestHomePage(t *testing.T) {
	ts := newWebTestServer(t)

	rr := ts.get("/")
	require.Equal(t, http.StatusOK, rr.Code)

	doc := parseHTML(rr.Body)
	assertContainsElement(t, doc, "form#guest-form[action='/auth/guest']")
	assertContainsElement(t, doc, "input[name='display_name']")
	assertNotContainsElement(t, doc, "#play-link")
}

func TestHomePageCarriesNext(t *testing.T) {
	ts := newWebTestServer(t)

	rr := ts.get("/?next=/play")
	doc := parseHTML(rr.Body)

	val, ok := doc.Find("input[name='next']").Attr("value")
	assert.True(t, ok)
	assert.Equal(t, "/play", val)
}

func TestHomePageAuthenticated(t *testing.T) {
	ts := newWebTestServer(t)
	ts.createGuestPlayer("Alice")

	rr := ts.get("/")
	require.Equal(t, http.StatusOK, rr.Code)

	doc := parseHTML(rr.Body)
	assertContainsText(t, doc, "nav", "Alice")
	assertContainsElement(t, doc, "#play-link")
	assertNotContainsElement(t, doc, "#guest-form")
}
