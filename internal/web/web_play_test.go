package web_test

import (
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/numberguess/internal/model"
)

func TestPlayPageInitialState(t *testing.T) {
	ts := newWebTestServer(t)
	ts.app.MockRandom.QueueIntn(42)
	ts.createGuestPlayer("Alice")

	rr := ts.get("/play")
	require.Equal(t, http.StatusOK, rr.Code)

	doc := parseHTML(rr.Body)
	assertContainsText(t, doc, "#game-panel h1", "Guess a number between 0 and 100")
	assertContainsText(t, doc, "#trials", "10 Trials Remaining")
	assertContainsText(t, doc, "#feedback", model.FeedbackGameStarted)
	assertHasAttr(t, doc, "#guess-input", "readonly", false)
	assertHasAttr(t, doc, "#guess-button", "disabled", false)
	assertHasAttr(t, doc, "#new-game-button", "disabled", true)
	assertNotContainsElement(t, doc, "#secret")
}

func TestGuessTooHigh(t *testing.T) {
	ts := newWebTestServer(t)
	ts.app.MockRandom.QueueIntn(42)
	ts.createGuestPlayer("Alice")

	doc := ts.guess("60")

	assertContainsText(t, doc, "#feedback", "60 is too high")
	assertContainsText(t, doc, "#trials", "9 Trials Remaining")
	val, _ := doc.Find("#guess-input").Attr("value")
	assert.Equal(t, "60", val)
	assertHasAttr(t, doc, "#new-game-button", "disabled", true)
}

func TestGuessTooLow(t *testing.T) {
	ts := newWebTestServer(t)
	ts.app.MockRandom.QueueIntn(42)
	ts.createGuestPlayer("Alice")

	doc := ts.guess("10")

	assertContainsText(t, doc, "#feedback", "10 is too low")
}

func TestGuessReturnsFragmentOnly(t *testing.T) {
	ts := newWebTestServer(t)
	ts.createGuestPlayer("Alice")

	rr := ts.postHTMX("/play/guess", url.Values{"guess": {"5"}})
	require.Equal(t, http.StatusOK, rr.Code)

	body := rr.Body.String()
	assert.True(t, strings.HasPrefix(body, `<section id="game-panel"`))
	assert.NotContains(t, body, "<nav>")
}

func TestGuessWithoutHTMXRedirects(t *testing.T) {
	ts := newWebTestServer(t)
	ts.app.MockRandom.QueueIntn(42)
	ts.createGuestPlayer("Alice")

	rr := ts.post("/play/guess", url.Values{"guess": {"50"}})
	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/play", rr.Header().Get("Location"))

	rr = ts.followRedirect(rr)
	doc := parseHTML(rr.Body)
	assertContainsText(t, doc, "#feedback", "50 is too high")
	assertContainsText(t, doc, "#trials", "9 Trials Remaining")
}

func TestMalformedGuess(t *testing.T) {
	ts := newWebTestServer(t)
	ts.createGuestPlayer("Alice")

	for _, text := range []string{"", "abc", "101", "-1"} {
		doc := ts.guess(text)
		assertContainsText(t, doc, "#feedback", model.FeedbackInvalidGuess)
		assertContainsText(t, doc, "#trials", "10 Trials Remaining")
	}
}

func TestWinningGuessLocksInput(t *testing.T) {
	ts := newWebTestServer(t)
	ts.app.MockRandom.QueueIntn(42)
	ts.createGuestPlayer("Alice")

	doc := ts.guess("42")

	assertContainsText(t, doc, "#feedback", "42 is correct with 90%")
	assertContainsText(t, doc, "#trials", "9 Trials Remaining")
	assertHasAttr(t, doc, "#guess-input", "readonly", true)
	assertHasAttr(t, doc, "#guess-button", "disabled", true)
	assertHasAttr(t, doc, "#new-game-button", "disabled", false)
	assertContainsText(t, doc, "#secret", "42")
}

func TestGuessAfterWinIsIgnored(t *testing.T) {
	ts := newWebTestServer(t)
	ts.app.MockRandom.QueueIntn(42)
	ts.createGuestPlayer("Alice")

	ts.guess("42")
	doc := ts.guess("10")

	assertContainsText(t, doc, "#feedback", "42 is correct with 90%")
	val, _ := doc.Find("#guess-input").Attr("value")
	assert.Equal(t, "42", val)
}

func TestOutOfTrials(t *testing.T) {
	ts := newWebTestServer(t)
	ts.app.MockRandom.QueueIntn(42)
	ts.createGuestPlayer("Alice")

	for i := 0; i < model.MaxTrials-1; i++ {
		ts.guess("1")
	}
	doc := ts.guess("1")

	assertContainsText(t, doc, "#feedback", "Out of trials! The number was 42.")
	assertContainsText(t, doc, "#trials", "0 Trials Remaining")
	assertHasAttr(t, doc, "#guess-input", "readonly", true)
	assertHasAttr(t, doc, "#new-game-button", "disabled", false)
}

func TestNewGameResetsRound(t *testing.T) {
	ts := newWebTestServer(t)
	ts.app.MockRandom.QueueIntn(42, 7)
	ts.createGuestPlayer("Alice")

	ts.guess("42")

	rr := ts.postHTMX("/play/new", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	doc := parseHTML(rr.Body)

	assertContainsText(t, doc, "#trials", "10 Trials Remaining")
	assertContainsText(t, doc, "#feedback", model.FeedbackGameStarted)
	assertHasAttr(t, doc, "#guess-input", "readonly", false)
	assertHasAttr(t, doc, "#new-game-button", "disabled", true)
	val, _ := doc.Find("#guess-input").Attr("value")
	assert.Empty(t, val)

	doc = ts.guess("7")
	assertContainsText(t, doc, "#feedback", "7 is correct with 90%")
}

func TestGuessTextIsEscaped(t *testing.T) {
	ts := newWebTestServer(t)
	ts.createGuestPlayer("Alice")

	doc := ts.guess(`"><script>alert(1)</script>`)

	assertNotContainsElement(t, doc, "#game-panel script")
	val, _ := doc.Find("#guess-input").Attr("value")
	assert.Equal(t, `"><script>alert(1)</script>`, val)
}

func TestPlayersDoNotShareRounds(t *testing.T) {
	alice := newWebTestServer(t)
	alice.app.MockRandom.QueueIntn(42, 42)
	alice.createGuestPlayer("Alice")
	alice.guess("42")

	// Second browser against the same app
	bob := &webTestServer{t: t, handler: alice.handler, app: alice.app, cookies: newCookieJar()}
	bob.createGuestPlayer("Bob")

	rr := bob.get("/play")
	doc := parseHTML(rr.Body)
	assertContainsText(t, doc, "#trials", "10 Trials Remaining")
	assertHasAttr(t, doc, "#guess-input", "readonly", false)
}
