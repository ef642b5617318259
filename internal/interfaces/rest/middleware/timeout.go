package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/DanielPopoola/coinledger/internal/interfaces/rest"
)

// Timeout bounds each request. On expiry the client receives 503 with the error marker.
func Timeout(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			r = r.WithContext(ctx)

			// handlers overwrite this; it only sticks for the timeout body
			w.Header().Set("Content-Type", rest.ContentTypeJSON)

			timeoutHandler := http.TimeoutHandler(
				next,
				timeout,
				`{"error":true}`,
			)

			timeoutHandler.ServeHTTP(w, r)
		})
	}
}
