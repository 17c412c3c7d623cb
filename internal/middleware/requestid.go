package middleware

import (
	"context"
	"net/http"

	"github.com/finmock/finmock/pkg/id"
	"github.com/finmock/finmock/pkg/utils"
)

const requestIDHeader = "X-Request-Id"

// RequestID attaches an id to every request, honoring one supplied by the
// caller, and echoes it in the response headers.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(requestIDHeader)
		if requestID == "" {
			requestID = id.New()
		}

		w.Header().Set(requestIDHeader, requestID)

		ctx := context.WithValue(r.Context(), utils.RequestIDKey, requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequestIDFrom returns the request id stored on the context, if any.
func RequestIDFrom(ctx context.Context) string {
	requestID, _ := ctx.Value(utils.RequestIDKey).(string)
	return requestID
}
