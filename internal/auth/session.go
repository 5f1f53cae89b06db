package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"globetrek/internal/model"
)

const sessionKeyPrefix = "session:"

// SessionTTL is how long a session record lives without being re-issued.
const SessionTTL = 24 * time.Hour

// SessionStore persists session records keyed by session ID.
// *cache.Client satisfies it in production; MemoryStore serves tests.
type SessionStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// Identity is the authenticated user bound to a session.
type Identity struct {
	UserID   uint
	Username string
}

// sessionRecord is the server-side session state. UserID zero means the
// session is anonymous and exists only to carry flash messages.
type sessionRecord struct {
	UserID   uint     `json:"user_id,omitempty"`
	Username string   `json:"username,omitempty"`
	Flashes  []string `json:"flashes,omitempty"`
}

// Manager tracks the current user across requests. The client holds a signed
// cookie naming a session ID; everything else lives in the store.
type Manager struct {
	store  SessionStore
	signer *CookieSigner
	ttl    time.Duration
}

// NewManager creates a session manager on top of a store and cookie signer.
func NewManager(store SessionStore, signer *CookieSigner) *Manager {
	return &Manager{store: store, signer: signer, ttl: SessionTTL}
}

// Start binds the user to a fresh session and sets the signed cookie.
// Any existing session is rotated; pending flash messages carry over.
func (m *Manager) Start(c echo.Context, user *model.User) error {
	ctx := c.Request().Context()

	oldID, oldRec := m.load(c)
	rec := &sessionRecord{UserID: user.ID, Username: user.Username}
	if oldRec != nil {
		rec.Flashes = oldRec.Flashes
	}

	id := uuid.NewString()
	if err := m.save(ctx, id, rec); err != nil {
		return err
	}
	if oldID != "" {
		_ = m.store.Delete(ctx, sessionKeyPrefix+oldID)
	}
	return m.setCookie(c, id)
}

// End clears the session. Calling it with no active session is a no-op.
func (m *Manager) End(c echo.Context) error {
	if id, _ := m.load(c); id != "" {
		_ = m.store.Delete(c.Request().Context(), sessionKeyPrefix+id)
	}
	c.SetCookie(&http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	return nil
}

// Current returns the identity bound to the request's session, or false for
// anonymous clients. Missing, tampered or expired cookies all read as
// anonymous, never as errors.
func (m *Manager) Current(c echo.Context) (*Identity, bool) {
	_, rec := m.load(c)
	if rec == nil || rec.UserID == 0 {
		return nil, false
	}
	return &Identity{UserID: rec.UserID, Username: rec.Username}, true
}

// Flash queues a one-time message for the next rendered page, creating an
// anonymous session if the client has none.
func (m *Manager) Flash(c echo.Context, message string) error {
	id, rec := m.load(c)
	if rec == nil {
		id = uuid.NewString()
		rec = &sessionRecord{}
		if err := m.setCookie(c, id); err != nil {
			return err
		}
	}
	rec.Flashes = append(rec.Flashes, message)
	return m.save(c.Request().Context(), id, rec)
}

// PopFlashes returns queued flash messages and clears them.
func (m *Manager) PopFlashes(c echo.Context) []string {
	id, rec := m.load(c)
	if rec == nil || len(rec.Flashes) == 0 {
		return nil
	}
	messages := rec.Flashes
	rec.Flashes = nil
	_ = m.save(c.Request().Context(), id, rec)
	return messages
}

// RequireAuthenticated redirects anonymous clients to the login page.
func (m *Manager) RequireAuthenticated(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, ok := m.Current(c); !ok {
			return c.Redirect(http.StatusFound, "/login")
		}
		return next(c)
	}
}

func (m *Manager) load(c echo.Context) (string, *sessionRecord) {
	cookie, err := c.Cookie(SessionCookieName)
	if err != nil || cookie.Value == "" {
		return "", nil
	}
	id, err := m.signer.SessionID(cookie.Value)
	if err != nil {
		return "", nil
	}
	data, err := m.store.Get(c.Request().Context(), sessionKeyPrefix+id)
	if err != nil || data == nil {
		return "", nil
	}
	var rec sessionRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return "", nil
	}
	return id, &rec
}

func (m *Manager) save(ctx context.Context, id string, rec *sessionRecord) error {
	payload, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	return m.store.Set(ctx, sessionKeyPrefix+id, payload, m.ttl)
}

func (m *Manager) setCookie(c echo.Context, id string) error {
	expiresAt := time.Now().Add(m.ttl)
	value, err := m.signer.Sign(id, expiresAt)
	if err != nil {
		return fmt.Errorf("sign session cookie: %w", err)
	}
	c.SetCookie(&http.Cookie{
		Name:     SessionCookieName,
		Value:    value,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
	})
	return nil
}
