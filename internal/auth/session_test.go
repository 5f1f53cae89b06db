package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"globetrek/internal/model"
)

func newTestManager() *Manager {
	return NewManager(NewMemoryStore(), NewCookieSigner("test-secret"))
}

func newContext(e *echo.Echo, cookies ...*http.Cookie) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == SessionCookieName {
			return ck
		}
	}
	t.Fatal("no session cookie set")
	return nil
}

func TestManager_StartAndCurrent(t *testing.T) {
	e := echo.New()
	m := newTestManager()

	c, rec := newContext(e)
	user := &model.User{ID: 7, Username: "alice"}
	require.NoError(t, m.Start(c, user))
	cookie := sessionCookie(t, rec)

	c2, _ := newContext(e, cookie)
	ident, ok := m.Current(c2)
	require.True(t, ok)
	assert.Equal(t, uint(7), ident.UserID)
	assert.Equal(t, "alice", ident.Username)
}

func TestManager_CurrentAnonymous(t *testing.T) {
	e := echo.New()
	m := newTestManager()

	c, _ := newContext(e)
	_, ok := m.Current(c)
	assert.False(t, ok)
}

func TestManager_TamperedCookieReadsAnonymous(t *testing.T) {
	e := echo.New()
	m := newTestManager()

	c, rec := newContext(e)
	require.NoError(t, m.Start(c, &model.User{ID: 1, Username: "alice"}))
	cookie := sessionCookie(t, rec)
	cookie.Value += "x"

	c2, _ := newContext(e, cookie)
	_, ok := m.Current(c2)
	assert.False(t, ok)
}

func TestManager_ForeignSignerCookieReadsAnonymous(t *testing.T) {
	e := echo.New()
	store := NewMemoryStore()
	m := NewManager(store, NewCookieSigner("test-secret"))
	other := NewManager(store, NewCookieSigner("other-secret"))

	c, rec := newContext(e)
	require.NoError(t, other.Start(c, &model.User{ID: 1, Username: "alice"}))
	cookie := sessionCookie(t, rec)

	c2, _ := newContext(e, cookie)
	_, ok := m.Current(c2)
	assert.False(t, ok)
}

func TestManager_EndClearsSession(t *testing.T) {
	e := echo.New()
	m := newTestManager()

	c, rec := newContext(e)
	require.NoError(t, m.Start(c, &model.User{ID: 1, Username: "alice"}))
	cookie := sessionCookie(t, rec)

	c2, _ := newContext(e, cookie)
	require.NoError(t, m.End(c2))

	// The record is gone, so even the old cookie reads anonymous.
	c3, _ := newContext(e, cookie)
	_, ok := m.Current(c3)
	assert.False(t, ok)
}

func TestManager_EndIdempotent(t *testing.T) {
	e := echo.New()
	m := newTestManager()

	c, _ := newContext(e)
	assert.NoError(t, m.End(c))
	assert.NoError(t, m.End(c))
}

func TestManager_FlashPopOnce(t *testing.T) {
	e := echo.New()
	m := newTestManager()

	// Flash on an anonymous client creates a session for the messages.
	c, rec := newContext(e)
	require.NoError(t, m.Flash(c, "Registration successful!"))
	cookie := sessionCookie(t, rec)

	c2, _ := newContext(e, cookie)
	assert.Equal(t, []string{"Registration successful!"}, m.PopFlashes(c2))

	c3, _ := newContext(e, cookie)
	assert.Nil(t, m.PopFlashes(c3))
}

func TestManager_StartRotatesSessionAndKeepsFlashes(t *testing.T) {
	e := echo.New()
	m := newTestManager()

	c, rec := newContext(e)
	require.NoError(t, m.Flash(c, "pending"))
	oldCookie := sessionCookie(t, rec)

	c2, rec2 := newContext(e, oldCookie)
	require.NoError(t, m.Start(c2, &model.User{ID: 1, Username: "alice"}))
	newCookie := sessionCookie(t, rec2)
	assert.NotEqual(t, oldCookie.Value, newCookie.Value)

	// Old session is gone, new one carries identity and the pending flash.
	c3, _ := newContext(e, oldCookie)
	_, ok := m.Current(c3)
	assert.False(t, ok)

	c4, _ := newContext(e, newCookie)
	ident, ok := m.Current(c4)
	require.True(t, ok)
	assert.Equal(t, "alice", ident.Username)
	assert.Equal(t, []string{"pending"}, m.PopFlashes(c4))
}

func TestManager_RequireAuthenticated(t *testing.T) {
	e := echo.New()
	m := newTestManager()

	next := func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	}

	c, rec := newContext(e)
	require.NoError(t, m.RequireAuthenticated(next)(c))
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get(echo.HeaderLocation))

	cStart, recStart := newContext(e)
	require.NoError(t, m.Start(cStart, &model.User{ID: 1, Username: "alice"}))
	cookie := sessionCookie(t, recStart)

	c2, rec2 := newContext(e, cookie)
	require.NoError(t, m.RequireAuthenticated(next)(c2))
	assert.Equal(t, http.StatusOK, rec2.Code)
}
