package http

import (
	"context"
	"net/http"
	"strings"
	"time"

	"rechtent-backend/internal/domain"
	"rechtent-backend/internal/logger"
	"rechtent-backend/internal/security"
)

type contextKey string

const claimsContextKey contextKey = "claims"

// Middleware carries the token manager used by the auth chain links.
type Middleware struct {
	tokens security.TokenManager
}

func NewMiddleware(tokens security.TokenManager) *Middleware {
	return &Middleware{tokens: tokens}
}

func bearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(auth, "Bearer ")
}

// Authenticate attaches claims when a valid bearer token is present and
// rejects invalid ones; requests without a token pass through anonymous.
// Cart endpoints rely on this: anonymous sessions are first-class there.
func (m *Middleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			next.ServeHTTP(w, r)
			return
		}
		claims, err := m.tokens.ValidateToken(token)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		if claims.Type != security.TokenTypeAccess {
			writeServiceError(w, security.ErrWrongTokenType)
			return
		}
		ctx := context.WithValue(r.Context(), claimsContextKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireUser gates endpoints that need an authenticated customer.
func (m *Middleware) RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if claimsFrom(r) == nil {
			writeError(w, http.StatusUnauthorized, "authentication required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdmin gates the admin panel endpoints.
func (m *Middleware) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims := claimsFrom(r)
		if claims == nil {
			writeError(w, http.StatusUnauthorized, "authentication required")
			return
		}
		if claims.Role != domain.UserRoleAdmin {
			writeError(w, http.StatusForbidden, "admin access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// LogRequest logs one line per request with latency.
func (m *Middleware) LogRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		logger.Info("request", "method", r.Method, "path", r.URL.Path, "remote", r.RemoteAddr, "duration_ms", time.Since(start).Milliseconds())
	})
}

// RecoverPanic converts handler panics into 500s instead of dropping the
// connection.
func (m *Middleware) RecoverPanic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.Error("Handler panicked", "panic", rec, "path", r.URL.Path)
				w.Header().Set("Connection", "close")
				writeError(w, http.StatusInternalServerError, "internal server error")
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func claimsFrom(r *http.Request) *security.UserClaims {
	claims, _ := r.Context().Value(claimsContextKey).(*security.UserClaims)
	return claims
}

// userIDFrom returns the authenticated user id, or nil for anonymous
// sessions.
func userIDFrom(r *http.Request) *int32 {
	claims := claimsFrom(r)
	if claims == nil {
		return nil
	}
	id := claims.UserID
	return &id
}
