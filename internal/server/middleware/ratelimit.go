package middleware

import (
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/iudanet/resumeai/internal/server/respond"
)

// RateLimiter ограничивает частоту запросов по ключу: бакет пополняется целиком раз в window
type RateLimiter struct {
	now     func() time.Time
	buckets map[string]*bucket
	stop    chan struct{}
	rate    int
	window  time.Duration
	mu      sync.Mutex
	once    sync.Once
}

type bucket struct {
	lastRefill time.Time
	tokens     int
}

// NewRateLimiter создает limiter: не более rate запросов за window с одного ключа.
// Неактивные ключи удаляются фоновой горутиной до вызова Stop.
func NewRateLimiter(rate int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		now:     time.Now,
		buckets: make(map[string]*bucket),
		stop:    make(chan struct{}),
		rate:    rate,
		window:  window,
	}
	go rl.cleanup()
	return rl
}

func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(rl.window * 2)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.evict()
		case <-rl.stop:
			return
		}
	}
}

func (rl *RateLimiter) evict() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	for key, b := range rl.buckets {
		if now.Sub(b.lastRefill) > rl.window*2 {
			delete(rl.buckets, key)
		}
	}
}

// Stop останавливает фоновую очистку. Повторный вызов безопасен.
func (rl *RateLimiter) Stop() {
	rl.once.Do(func() { close(rl.stop) })
}

// Allow расходует токен ключа. Возвращает false и время до пополнения, если токенов нет.
func (rl *RateLimiter) Allow(key string) (bool, time.Duration) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	b, ok := rl.buckets[key]
	if !ok || now.Sub(b.lastRefill) >= rl.window {
		b = &bucket{tokens: rl.rate, lastRefill: now}
		rl.buckets[key] = b
	}

	if b.tokens > 0 {
		b.tokens--
		return true, 0
	}
	return false, rl.window - now.Sub(b.lastRefill)
}

// Middleware отвечает 429 {"message": ...} при превышении лимита
func (rl *RateLimiter) Middleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := clientIP(r)

			allowed, retryAfter := rl.Allow(key)
			if !allowed {
				logger.Warn("Rate limit exceeded", slog.String("ip", key), slog.String("method", r.Method), slog.String("path", r.URL.Path))

				secs := int(retryAfter.Round(time.Second) / time.Second)
				w.Header().Set("Retry-After", strconv.Itoa(max(secs, 1)))
				respond.Message(w, http.StatusTooManyRequests, "Too many requests, please try again later")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// clientIP берет адрес из RemoteAddr, который уже исправлен chi RealIP
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
