package testutil

import (
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"testing"
	"time"

	"Gin_redis_dress_rental/app"
	"Gin_redis_dress_rental/routes"

	"github.com/gin-gonic/gin"
)

// Option adjusts the test configuration before the app is built.
type Option func(*app.Config)

func WithRedis(addr string) Option {
	return func(c *app.Config) { c.RedisAddr = addr }
}

func WithAdminRate(perSec float64, burst int) Option {
	return func(c *app.Config) {
		c.AdminRatePerSec = perSec
		c.AdminBurst = burst
	}
}

func WithUploadLimit(n int64) Option {
	return func(c *app.Config) { c.UploadMaxBytes = n }
}

// Config is a quiet in-memory configuration with a generous admin rate limit.
func Config() app.Config {
	return app.Config{
		Port:            "0",
		LogLevel:        "error",
		GinMode:         gin.TestMode,
		WebOrigin:       "http://localhost:3001",
		SessionTTL:      time.Minute,
		WhatsAppNumber:  "917225994009",
		ContactPhone:    "+917225994009",
		UploadMaxBytes:  1 << 20,
		AdminRatePerSec: 1000,
		AdminBurst:      1000,
	}
}

// NewApp builds a fully routed app on a freshly seeded catalog.
func NewApp(t testing.TB, opts ...Option) *app.App {
	t.Helper()

	cfg := Config()
	for _, o := range opts {
		o(&cfg)
	}
	a, err := app.New(cfg)
	if err != nil {
		t.Fatalf("app.New: %v", err)
	}
	t.Cleanup(a.Close)
	routes.RegisterRoutes(a.Router, a)
	return a
}

// NewServer serves NewApp over a real listener, which SSE needs.
func NewServer(t testing.TB, opts ...Option) (*httptest.Server, *app.App) {
	t.Helper()

	a := NewApp(t, opts...)
	ts := httptest.NewServer(a.Router)
	t.Cleanup(ts.Close)
	return ts, a
}

// Browser returns a client that keeps cookies and stops at redirects,
// so tests can assert on the 303 and then follow it themselves.
func Browser(t testing.TB) *http.Client {
	t.Helper()

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("cookiejar: %v", err)
	}
	return &http.Client{
		Jar:     jar,
		Timeout: 5 * time.Second,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}
