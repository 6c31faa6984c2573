package httpx

import (
	"context"
	"net/http"

	"github.com/mkline/storefront/internal/session"
)

type sessionContextKey string

const contextKeySession sessionContextKey = "storefront-session"

const msgLoginRequired = "Please log in first"

// requireLogin gates a handler behind the session check. A request whose
// session is absent, expired or not logged in is answered directly and never
// reaches the handler. The check reads session state only; it has no side
// effects beyond the store's TTL refresh.
func (r *Router) requireLogin(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		_, data, ok, err := r.sessions.Load(req)
		if err != nil {
			r.logger.Error("session lookup failed", "error", err, "path", req.URL.Path)
			writeFailure(w, msgLoginRequired)
			return
		}
		if !ok || !data.IsLoggedIn {
			writeFailure(w, msgLoginRequired)
			return
		}
		ctx := context.WithValue(req.Context(), contextKeySession, data)
		next(w, req.WithContext(ctx))
	}
}

// sessionFromContext extracts the session snapshot placed by requireLogin.
func sessionFromContext(ctx context.Context) (session.Data, bool) {
	value := ctx.Value(contextKeySession)
	if value == nil {
		return session.Data{}, false
	}
	data, ok := value.(session.Data)
	return data, ok
}
