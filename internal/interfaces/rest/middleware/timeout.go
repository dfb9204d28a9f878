package middleware

import (
	"net/http"
	"time"
)

const timeoutBody = `{"error":"Internal error","message":"Request timeout"}`

// Timeout bounds the handler and answers 503 with a JSON body when the
// deadline passes first.
func Timeout(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		timeoutHandler := http.TimeoutHandler(next, timeout, timeoutBody)

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}
			// TimeoutHandler writes its body without a content type.
			w.Header().Set("Content-Type", "application/json")
			timeoutHandler.ServeHTTP(w, r)
		})
	}
}
