package session

import (
	"net/http"
	"time"

	"github.com/google/uuid"
)

// Manager binds a Store to the HTTP cookie carrying the session identifier.
type Manager struct {
	store      Store
	ttl        time.Duration
	cookieName string
	secure     bool
}

// NewManager constructs a Manager.
func NewManager(store Store, ttl time.Duration, cookieName string, secure bool) *Manager {
	return &Manager{store: store, ttl: ttl, cookieName: cookieName, secure: secure}
}

// Load resolves the request's session. ok is false when the request carries
// no cookie or the session has expired.
func (m *Manager) Load(r *http.Request) (id string, data Data, ok bool, err error) {
	cookie, cookieErr := r.Cookie(m.cookieName)
	if cookieErr != nil || cookie.Value == "" {
		return "", Data{}, false, nil
	}
	data, ok, err = m.store.Get(r.Context(), cookie.Value)
	if err != nil || !ok {
		return "", Data{}, false, err
	}
	return cookie.Value, data, true, nil
}

// Establish persists a fresh session and sets the cookie. The store write
// happens before the response so a failure never leaves a cookie pointing at
// nothing.
func (m *Manager) Establish(w http.ResponseWriter, r *http.Request, data Data) error {
	id := uuid.NewString()
	if err := m.store.Save(r.Context(), id, data); err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     m.cookieName,
		Value:    id,
		Path:     "/",
		MaxAge:   int(m.ttl / time.Second),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Destroy deletes the session record and expires the cookie. Destroying a
// request without a session is a no-op success.
func (m *Manager) Destroy(w http.ResponseWriter, r *http.Request) error {
	cookie, err := r.Cookie(m.cookieName)
	if err == nil && cookie.Value != "" {
		if err := m.store.Delete(r.Context(), cookie.Value); err != nil {
			return err
		}
	}
	http.SetCookie(w, &http.Cookie{
		Name:     m.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Ping reports session store connectivity.
func (m *Manager) Ping(r *http.Request) error {
	return m.store.Ping(r.Context())
}
