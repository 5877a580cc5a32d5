package mwratelimit

import (
	"imageGallery/internal/lib/api/response"
	"imageGallery/internal/lib/ratelimit"
	"log/slog"
	"math"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

const msgTooManyRequests = "Too many upload requests, please try again later."

type Recorder interface {
	Record(key string) ratelimit.Result
}

// New rejects requests from a client address that has used up its window
// with 429 and never calls next for them.
func New(log *slog.Logger, limiter Recorder) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		log := log.With(
			slog.String("component", "middleware/ratelimit"),
		)

		fn := func(w http.ResponseWriter, r *http.Request) {
			key := clientKey(r)
			res := limiter.Record(key)

			reset := secondsUntil(res.ResetAt)

			w.Header().Set("RateLimit-Limit", strconv.Itoa(res.Limit))
			w.Header().Set("RateLimit-Remaining", strconv.Itoa(res.Remaining))
			w.Header().Set("RateLimit-Reset", strconv.Itoa(reset))

			if !res.Allowed {
				log.Warn("rate limit exceeded",
					slog.String("client", key),
					slog.String("request_id", middleware.GetReqID(r.Context())),
				)

				w.Header().Set("Retry-After", strconv.Itoa(reset))
				render.Status(r, http.StatusTooManyRequests)
				render.JSON(w, r, response.Error(msgTooManyRequests))
				return
			}

			next.ServeHTTP(w, r)
		}

		return http.HandlerFunc(fn)
	}
}

func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return host
}

func secondsUntil(t time.Time) int {
	d := time.Until(t)
	if d <= 0 {
		return 0
	}

	return int(math.Ceil(d.Seconds()))
}
