package handler

import (
	"errors"
	"log/slog"
	"net"
	"net/http"

	"github.com/msomdec/bookshelf/internal/domain"
	"github.com/msomdec/bookshelf/internal/service"
	"github.com/msomdec/bookshelf/internal/view"
)

// AuthHandler issues and clears editor tokens.
type AuthHandler struct {
	auth         *service.EditorAuth
	limiter      *service.TokenBucket
	cookieSecure bool
}

// NewAuthHandler creates a new AuthHandler. Login attempts are rate limited
// per client address by limiter.
func NewAuthHandler(auth *service.EditorAuth, limiter *service.TokenBucket, cookieSecure bool) *AuthHandler {
	return &AuthHandler{auth: auth, limiter: limiter, cookieSecure: cookieSecure}
}

// HandleToken exchanges the editor password for a token.
// POST /auth/token
// Request:  {"password":"..."}
// Response: {"token":"..."}
func (h *AuthHandler) HandleToken(w http.ResponseWriter, r *http.Request) {
	if !h.auth.Enabled() {
		writeError(w, http.StatusNotFound, "Editor sign-in is not configured.")
		return
	}
	if !h.limiter.Allow(clientIP(r)) {
		writeError(w, http.StatusTooManyRequests, "Too many sign-in attempts. Please wait and try again.")
		return
	}

	var req struct {
		Password string `json:"password"`
	}
	if err := readJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	token, err := h.auth.Login(req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			writeError(w, http.StatusUnauthorized, "Invalid password.")
			return
		}
		slog.Error("editor login", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred. Please try again.")
		return
	}

	h.setAuthCookie(w, token, 86400) // 24 hours
	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}

// HandleLogin processes the index page login form and redirects back to it.
// POST /auth/login
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	if !h.auth.Enabled() {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	if !h.limiter.Allow(clientIP(r)) {
		w.WriteHeader(http.StatusTooManyRequests)
		view.Layout("Sign in", view.LoginForm("Too many sign-in attempts. Please wait and try again.")).Render(r.Context(), w)
		return
	}

	token, err := h.auth.Login(r.FormValue("password"))
	if err != nil {
		if !errors.Is(err, domain.ErrUnauthorized) {
			slog.Error("editor login", "error", err)
		}
		w.WriteHeader(http.StatusUnauthorized)
		view.Layout("Sign in", view.LoginForm("Invalid password.")).Render(r.Context(), w)
		return
	}

	h.setAuthCookie(w, token, 86400)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// HandleLogout clears the auth cookie.
// POST /auth/logout
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	h.setAuthCookie(w, "", -1)
	w.WriteHeader(http.StatusNoContent)
}

func (h *AuthHandler) setAuthCookie(w http.ResponseWriter, value string, maxAge int) {
	http.SetCookie(w, &http.Cookie{
		Name:     authCookieName,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   maxAge,
	})
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
