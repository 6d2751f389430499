package request_id

import (
	"net/http"

	"github.com/google/uuid"
)

const Header = "X-Request-Id"

// Middleware tags every request with an id so log lines across the
// request can be correlated. An incoming id is kept.
func Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := r.Header.Get(Header)
			if requestID == "" {
				requestID = uuid.NewString()
			}

			w.Header().Set(Header, requestID)
			r.Header.Set(Header, requestID)

			next.ServeHTTP(w, r)
		})
	}
}
