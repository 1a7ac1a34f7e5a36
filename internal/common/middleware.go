package common

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/mux"
)

type ctxKey string

const (
	ctxKeyUserID     ctxKey = "user_id"
	ctxKeyExternalID ctxKey = "external_id"
)

// UserIDFromContext returns the acting user's directory id injected by the
// auth middleware. Empty until the first sync has run for this session.
func UserIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(ctxKeyUserID).(string)
	return id
}

func ExternalIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(ctxKeyExternalID).(string)
	return id
}

// ContextWithIdentity injects the caller's identity; the auth middleware and
// handler tests both go through it.
func ContextWithIdentity(ctx context.Context, userID, externalID string) context.Context {
	ctx = context.WithValue(ctx, ctxKeyUserID, userID)
	return context.WithValue(ctx, ctxKeyExternalID, externalID)
}

// AuthMiddleware validates the bearer token issued by the identity provider
// and injects the caller's identity into the request context.
func AuthMiddleware(secret []byte) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			parts := strings.Fields(r.Header.Get("Authorization"))
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				WriteJSONError(w, http.StatusUnauthorized, "authorization required")
				return
			}

			claims, err := ValidToken(secret, parts[1])
			if err != nil {
				WriteJSONError(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}

			ctx := ContextWithIdentity(r.Context(), claims.UserID, claims.ExternalID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// LoggingMiddleware logs one line per request with method, path and duration.
func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(sw, r)

		log.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", sw.status,
			"duration", time.Since(start),
		)
	})
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}
