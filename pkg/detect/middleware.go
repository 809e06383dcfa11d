package detect

import (
	"net/http"

	"github.com/dmitrymomot/sniff/pkg/navigator"
)

// Middleware detects the client environment from request headers and stores
// the Result in the request context.
func Middleware(d *Detector, cfg Config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			res := d.Detect(r.Context(), navigator.FromRequest(r), cfg)
			next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), res)))
		})
	}
}
