package server

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tobue/vocapace/internal/learner"
)

type contextKey string

const learnerContextKey contextKey = "learner"

// LearnerFromContext returns the authenticated learner, or nil outside an
// authenticated request.
func LearnerFromContext(ctx context.Context) *learner.Learner {
	l, _ := ctx.Value(learnerContextKey).(*learner.Learner)
	return l
}

// RequestLogger assigns each request an ID and logs method, path, and
// duration on completion.
func RequestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := uuid.NewString()
			start := time.Now()
			next.ServeHTTP(w, r)
			logger.Info("request",
				"request_id", requestID,
				"method", r.Method,
				"path", r.URL.Path,
				"duration_ms", time.Since(start).Milliseconds(),
			)
		})
	}
}

// Authenticate resolves the bearer token to a learner and stores it on the
// request context. Requests without a valid token never reach the handlers.
func Authenticate(learners learner.Repository, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				writeJSONError(w, http.StatusUnauthorized, "authentication required")
				return
			}

			l, err := learners.FindByAPIToken(r.Context(), token)
			if err != nil {
				if err != learner.ErrNotFound {
					logger.Error("token lookup failed", "error", err)
					writeJSONError(w, http.StatusInternalServerError, "internal error")
					return
				}
				writeJSONError(w, http.StatusUnauthorized, "authentication required")
				return
			}

			ctx := context.WithValue(r.Context(), learnerContextKey, l)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, prefix))
	return token, token != ""
}
