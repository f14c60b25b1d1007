package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/numberguess/internal/web/templates/layout"
)

func TestFlashRoundTrip(t *testing.T) {
	rr := httptest.NewRecorder()
	SetFlash(rr, "success", `Welcome, "Zoë"; have fun!`)

	cookies := rr.Result().Cookies()
	require.Len(t, cookies, 1)

	req := httptest.NewRequest(http.MethodGet, "/play", nil)
	req.AddCookie(cookies[0])

	var got *layout.FlashMessage
	h := Flash()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = GetFlash(r.Context())
	}))
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	require.NotNil(t, got)
	assert.Equal(t, "success", got.Type)
	assert.Equal(t, `Welcome, "Zoë"; have fun!`, got.Message)

	cleared := rr.Result().Cookies()
	require.Len(t, cleared, 1)
	assert.Equal(t, flashCookieName, cleared[0].Name)
	assert.Negative(t, cleared[0].MaxAge)
}

func TestFlashIgnoresGarbage(t *testing.T) {
	assert.Nil(t, decodeFlash("not base64!"))
	assert.Nil(t, decodeFlash("bm90IGpzb24"))
}

func TestNoFlashWithoutCookie(t *testing.T) {
	var got *layout.FlashMessage
	h := Flash()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = GetFlash(r.Context())
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Nil(t, got)
}
