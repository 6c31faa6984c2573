package httpx

import (
	"errors"
	"net/http"

	"github.com/mkline/storefront/internal/repository"
	"github.com/mkline/storefront/internal/service/auth"
	"github.com/mkline/storefront/internal/session"
)

func (r *Router) handleSignin(w http.ResponseWriter, req *http.Request) {
	email := req.URL.Query().Get("email")
	pass := req.URL.Query().Get("pass")

	user, err := r.auth.Signin(req.Context(), email, pass)
	switch {
	case errors.Is(err, auth.ErrMissingCredentials):
		writeFailure(w, "Please provide both email and password")
		return
	case errors.Is(err, repository.ErrNotFound):
		writeFailure(w, "User not found")
		return
	case errors.Is(err, auth.ErrInvalidCredential):
		writeFailure(w, "Invalid password")
		return
	case err != nil:
		r.logger.Error("signin failed", "error", err)
		writeFailure(w, "Server error")
		return
	}

	// Session state is persisted before the response goes out; a cookie
	// must never point at a session the store did not accept.
	data := session.Data{IsLoggedIn: true, Email: user.Email, CartID: user.CartID}
	if err := r.sessions.Establish(w, req, data); err != nil {
		r.logger.Error("session save failed", "error", err, "email", user.Email)
		writeFailure(w, "Session error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "login": true})
}

func (r *Router) handleSignup(w http.ResponseWriter, req *http.Request) {
	email := req.URL.Query().Get("email")
	pass := req.URL.Query().Get("pass")

	_, err := r.auth.Signup(req.Context(), email, pass)
	switch {
	case errors.Is(err, auth.ErrMissingCredentials):
		writeJSON(w, http.StatusOK, map[string]any{"success": false, "error": "email and password are required"})
		return
	case errors.Is(err, repository.ErrConflict):
		writeJSON(w, http.StatusOK, map[string]any{"success": false, "error": "email already registered"})
		return
	case err != nil:
		r.logger.Error("signup failed", "error", err)
		writeJSON(w, http.StatusOK, map[string]any{"success": false, "error": "could not create user"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

func (r *Router) handleSignout(w http.ResponseWriter, req *http.Request) {
	if err := r.sessions.Destroy(w, req); err != nil {
		r.logger.Error("session destroy failed", "error", err)
		writeFailure(w, "Error signing out")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "message": "Signed out successfully"})
}
