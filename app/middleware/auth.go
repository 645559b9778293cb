package middleware

import (
	"context"
	"net/http"

	"listkeeper/app/session"
)

type ctxKey int

const userIDKey ctxKey = 1

// Guard wraps handlers that require a logged-in user. A request without a
// valid session is redirected to the login page before the handler runs.
type Guard struct{ Sessions *session.Manager }

func (g *Guard) RequireLogin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := g.Sessions.UserID(r)
		if !ok {
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}
		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
