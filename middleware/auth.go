package middleware

import (
	"context"
	"net/http"
	"strings"

	"matrimony_server/services"
	"matrimony_server/utils"

	"github.com/gorilla/mux"
)

type ctxKey string

const userIDCtxKey = ctxKey("userID")

// WithUserID stores the authenticated user id in the request context.
func WithUserID(ctx context.Context, userID uint) context.Context {
	return context.WithValue(ctx, userIDCtxKey, userID)
}

// UserIDFrom extracts the authenticated user id.
func UserIDFrom(ctx context.Context) (uint, bool) {
	id, ok := ctx.Value(userIDCtxKey).(uint)
	return id, ok
}

// Authenticate resolves the bearer token on every request it wraps. A
// missing header is 401; a token that fails verification is 403.
func Authenticate(tokens *services.TokenService) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" || !strings.HasPrefix(header, "Bearer ") {
				utils.Error(w, http.StatusUnauthorized, "No token provided")
				return
			}
			userID, err := tokens.Parse(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				utils.Error(w, http.StatusForbidden, "Invalid token")
				return
			}
			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
		})
	}
}
