package middlewares

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/seidlp/vault-gateway/internal/logger"
)

// Tokener defines the minimal interface needed by the middleware
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	Validate(ctx context.Context, tokenString string) error
}

// AuthMiddleware returns a middleware that gates routes behind a valid
// wallet session token.
func AuthMiddleware(tokener Tokener) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				writeUnauthorized(w, r, err)
				return
			}

			if err := tokener.Validate(ctx, tokenString); err != nil {
				writeUnauthorized(w, r, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func writeUnauthorized(w http.ResponseWriter, r *http.Request, err error) {
	reqID, _ := r.Context().Value(RequestIDKey).(string)
	logger.Log.Errorw("session authorization failed", "request_id", reqID, "err", err)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": "Unauthorized"})
}
