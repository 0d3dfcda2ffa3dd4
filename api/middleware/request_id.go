package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/angelmondragon/shopinsights-backend/pkg/logger"
)

const requestIDHeader = "X-Request-Id"

// RequestID reuses an inbound X-Request-Id or mints a UUID, echoes it on the
// response and attaches it to the context logger.
func RequestID(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reqID := r.Header.Get(requestIDHeader)
			if reqID == "" {
				reqID = uuid.NewString()
			}

			w.Header().Set(requestIDHeader, reqID)

			ctx := WithRequestID(r.Context(), reqID)
			if logg != nil {
				ctx = logg.WithRequestID(ctx, reqID)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
