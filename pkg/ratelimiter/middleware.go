package ratelimiter

import (
	"net/http"
	"strconv"

	"github.com/dmitrymomot/formcheck/handler"
	"github.com/dmitrymomot/formcheck/pkg/clientip"
)

// KeyFunc extracts the bucket key from a request.
type KeyFunc func(r *http.Request) string

// ByClientIP keys buckets by the resolved client address.
func ByClientIP(r *http.Request) string {
	if ip := clientip.FromContext(r.Context()); ip != "" {
		return ip
	}
	return clientip.FromRequest(r)
}

// Middleware sets X-RateLimit-* headers and answers 429 with the JSON error
// envelope once the bucket of the request's key is empty. Limiter failures
// answer 500.
func Middleware(l *Limiter, key KeyFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			res, err := l.Allow(r.Context(), key(r))
			if err != nil {
				_ = handler.JSONError(err).Render(w, r)
				return
			}

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(res.Limit))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(max(0, res.Remaining)))
			w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(res.ResetAt.Unix(), 10))

			if !res.Allowed() {
				if retry := res.RetryAfter(); retry > 0 {
					w.Header().Set("Retry-After", strconv.Itoa(int(retry.Seconds())+1))
				}
				_ = handler.JSONError(handler.ErrTooManyRequests).Render(w, r)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
