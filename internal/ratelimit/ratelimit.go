package ratelimit

import (
	"context"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/GlebRadaev/coinledger/pkg/utils"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// Limiter is a fixed-window request counter kept in Redis, one counter per
// client address.
type Limiter struct {
	rdb    *redis.Client
	limit  int
	window time.Duration
	prefix string
}

func New(rdb *redis.Client, limit int, window time.Duration, prefix string) *Limiter {
	return &Limiter{
		rdb:    rdb,
		limit:  limit,
		window: window,
		prefix: prefix,
	}
}

// Allow counts one request for client and reports whether it fits in the
// current window, together with the requests left in it.
func (l *Limiter) Allow(ctx context.Context, client string) (bool, int, error) {
	key := l.prefix + ":" + client
	count, err := l.rdb.Incr(ctx, key).Result()
	if err != nil {
		return true, l.limit, err
	}
	if count == 1 {
		if err := l.rdb.Expire(ctx, key, l.window).Err(); err != nil {
			return true, l.limit - 1, err
		}
	}

	remaining := l.limit - int(count)
	if remaining < 0 {
		remaining = 0
	}
	return count <= int64(l.limit), remaining, nil
}

// Middleware rejects clients over the limit with 429. When Redis is
// unreachable requests pass through.
func (l *Limiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowed, remaining, err := l.Allow(r.Context(), clientAddress(r))
		if err != nil {
			zap.L().Warn("rate limiter unavailable", zap.Error(err))
			next.ServeHTTP(w, r)
			return
		}

		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(l.limit))
		w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))
		if !allowed {
			w.Header().Set("Retry-After", strconv.Itoa(int(l.window.Seconds())))
			utils.RespondWithError(w, http.StatusTooManyRequests, "Too many requests")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func clientAddress(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
