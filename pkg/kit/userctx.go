package kit

import (
	"context"
	"net/http"
	"strings"
)

type userCtxKey string

const userKey userCtxKey = "user"

// User is the identity the gateway injects after verifying the JWT.
// Downstream services trust these headers and never see tokens.
type User struct {
	ID    string
	Email string
	Role  string
}

func UserFromContext(ctx context.Context) (User, bool) {
	u, ok := ctx.Value(userKey).(User)
	return u, ok
}

func userFromHeaders(r *http.Request) User {
	return User{
		ID:    strings.TrimSpace(r.Header.Get("X-User-Id")),
		Email: strings.TrimSpace(r.Header.Get("X-User-Email")),
		Role:  strings.TrimSpace(r.Header.Get("X-User-Role")),
	}
}

// RequireUserHeaders rejects requests without an injected identity.
func RequireUserHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u := userFromHeaders(r)
		if u.ID == "" {
			WriteError(w, r, http.StatusUnauthorized, "no user", nil)
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userKey, u)))
	})
}

// OptionalUserHeaders attaches the identity when present but lets anonymous
// requests through.
func OptionalUserHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u := userFromHeaders(r)
		if u.ID == "" {
			next.ServeHTTP(w, r)
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userKey, u)))
	})
}
