package httpapi

import (
	"context"
	"net/http"
	"strings"

	"restman/internal/domain"
)

type contextKey string

const (
	userKey    contextKey = "user"
	sessionKey contextKey = "session"
)

// withIdentity resolves the caller before every handler: the bearer token
// becomes a user when valid, the X-Session-ID header names the browsing
// session. Both are optional; handlers that need them check.
func (h *Handler) withIdentity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if sid := r.Header.Get("X-Session-ID"); sid != "" {
			ctx = context.WithValue(ctx, sessionKey, sid)
		}

		if token := bearerToken(r); token != "" {
			if user, err := h.Auth.CurrentUser(ctx, token); err == nil {
				ctx = context.WithValue(ctx, userKey, user)
			}
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func bearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(auth, "Bearer ")
}

func currentUser(r *http.Request) *domain.User {
	user, _ := r.Context().Value(userKey).(*domain.User)
	return user
}

func sessionID(r *http.Request) string {
	sid, _ := r.Context().Value(sessionKey).(string)
	return sid
}

// identity derives the cart owner: the user when logged in, otherwise the
// browsing session.
func identity(r *http.Request) domain.Identity {
	if user := currentUser(r); user != nil {
		return domain.UserIdentity(user.ID, sessionID(r))
	}
	return domain.GuestIdentity(sessionID(r))
}

// requireUser gates customer endpoints.
func requireUser(next func(w http.ResponseWriter, r *http.Request, user *domain.User)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := currentUser(r)
		if user == nil {
			http.Error(w, "authentication required", http.StatusUnauthorized)
			return
		}
		next(w, r, user)
	}
}

// requireCapability gates staff endpoints on an explicit capability
// check rather than a role-name list.
func requireCapability(check func(domain.Role) bool, next func(w http.ResponseWriter, r *http.Request, user *domain.User)) http.HandlerFunc {
	return requireUser(func(w http.ResponseWriter, r *http.Request, user *domain.User) {
		if !check(user.Role) {
			http.Error(w, "insufficient role", http.StatusForbidden)
			return
		}
		next(w, r, user)
	})
}
