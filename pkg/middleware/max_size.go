package middleware

import (
	"net/http"

	apperrors "isbnsplit/pkg/errors"
)

// MaxRequestSize caps the body a handler may read at maxBytes. Requests that
// announce a larger body are refused before the handler runs.
func MaxRequestSize(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength > maxBytes {
				_ = apperrors.WriteError(w, apperrors.New(
					"PAYLOAD_TOO_LARGE",
					"Request body too large",
					http.StatusRequestEntityTooLarge,
				))
				return
			}
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}
