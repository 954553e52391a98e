package handler

import (
	"net/http"
	"strings"

	"github.com/msomdec/bookshelf/internal/service"
)

const authCookieName = "auth_token"

// RequireEditor is middleware that protects write routes. It accepts an
// editor token from the Authorization bearer header or the auth_token cookie
// and returns 401 otherwise. When editor auth is disabled every request passes.
func RequireEditor(auth *service.EditorAuth, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !canEdit(r, auth) {
			writeError(w, http.StatusUnauthorized, "Editor sign-in required.")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// SecurityHeaders sets conservative browser security headers on every response.
func SecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		// datastar evaluates data-* expressions with the Function constructor.
		h.Set("Content-Security-Policy",
			"default-src 'self'; script-src 'self' 'unsafe-eval' https://cdn.jsdelivr.net; style-src 'self' 'unsafe-inline'")
		next.ServeHTTP(w, r)
	})
}

// canEdit reports whether the request may modify the catalogue.
func canEdit(r *http.Request, auth *service.EditorAuth) bool {
	if !auth.Enabled() {
		return true
	}
	token := bearerToken(r)
	if token == "" {
		if cookie, err := r.Cookie(authCookieName); err == nil {
			token = cookie.Value
		}
	}
	if token == "" {
		return false
	}
	return auth.ValidateToken(token) == nil
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if len(header) > 7 && strings.EqualFold(header[:7], "bearer ") {
		return strings.TrimSpace(header[7:])
	}
	return ""
}
