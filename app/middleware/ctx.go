package middleware

import "context"

// UserID returns the authenticated user id placed on the context by
// RequireLogin.
func UserID(ctx context.Context) (uint, bool) {
	if v := ctx.Value(userIDKey); v != nil {
		if id, ok := v.(uint); ok {
			return id, true
		}
	}
	return 0, false
}
