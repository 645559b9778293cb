// Package session provides per-browser-session state held server-side and
// keyed by an opaque cookie token. The cookie carries no identity, only the
// token; the store holds the user id.
package session

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
)

// ErrNoSession reports that a token has no server-side record.
var ErrNoSession = errors.New("session: not found")

type Data struct {
	UserID uint `json:"user_id"`
}

type Store interface {
	Get(ctx context.Context, token string) (*Data, error)
	Save(ctx context.Context, token string, data *Data) error
	Delete(ctx context.Context, token string) error
}

type Manager struct {
	store  Store
	cookie string
}

func NewManager(store Store, cookieName string) *Manager {
	return &Manager{store: store, cookie: cookieName}
}

// UserID resolves the request's session cookie to a user id.
func (m *Manager) UserID(r *http.Request) (uint, bool) {
	c, err := r.Cookie(m.cookie)
	if err != nil || c.Value == "" {
		return 0, false
	}
	data, err := m.store.Get(r.Context(), c.Value)
	if err != nil || data.UserID == 0 {
		return 0, false
	}
	return data.UserID, true
}

// SetUserID stores the identity under a freshly issued token and sets the
// cookie. A new token on every login keeps a pre-login cookie from ever
// naming an authenticated session. The cookie has no expiry on purpose:
// it lives for the browser session only.
func (m *Manager) SetUserID(w http.ResponseWriter, r *http.Request, userID uint) error {
	token := uuid.NewString()
	if err := m.store.Save(r.Context(), token, &Data{UserID: userID}); err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     m.cookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Clear drops the server-side record, if any, and expires the cookie.
func (m *Manager) Clear(w http.ResponseWriter, r *http.Request) {
	if c, err := r.Cookie(m.cookie); err == nil && c.Value != "" {
		_ = m.store.Delete(r.Context(), c.Value)
	}
	http.SetCookie(w, &http.Cookie{
		Name:     m.cookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}
