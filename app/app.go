package app

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"Gin_redis_dress_rental/blobs"
	"Gin_redis_dress_rental/db"
	"Gin_redis_dress_rental/logger"
	"Gin_redis_dress_rental/metrics"
	"Gin_redis_dress_rental/session"
	"Gin_redis_dress_rental/web"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// Short aliases for handlers.
type Ctx = gin.Context
type H = gin.H

// App holds every dependency the handlers need.
type App struct {
	Router   *gin.Engine
	RDB      *redis.Client // nil when sessions live in memory
	Repo     *db.Repo
	Blobs    *blobs.Store
	Sessions session.Store
	Metrics  *metrics.Metrics
	Log      *logrus.Logger
	Config   Config

	memSessions  *session.MemoryStore
	streams      context.Context
	closeStreams context.CancelFunc
}

// Config is read from the environment.
type Config struct {
	Port            string
	LogLevel        string
	GinMode         string
	WebOrigin       string
	RedisAddr       string
	RedisPwd        string
	SessionTTL      time.Duration
	WhatsAppNumber  string
	ContactPhone    string
	UploadMaxBytes  int64
	AdminRatePerSec float64
	AdminBurst      int
	CatalogFile     string // empty: the embedded launch collection
}

// SecureCookies is true when the site is served over https.
func (c Config) SecureCookies() bool { return strings.HasPrefix(c.WebOrigin, "https://") }

func MustNew() *App {
	a, err := New(LoadConfig())
	if err != nil {
		log.Fatalf("app: %v", err)
	}
	return a
}

func New(cfg Config) (*App, error) {
	l := logger.New(cfg.LogLevel)
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	m := metrics.New()
	repoOpts := []db.Option{db.WithMutationHook(m.ObserveMutation)}
	if cfg.CatalogFile != "" {
		c, err := loadCatalogFile(cfg.CatalogFile)
		if err != nil {
			return nil, err
		}
		repoOpts = append(repoOpts, db.WithCatalog(c))
	}
	repo := db.Open(l, repoOpts...)

	a := &App{
		Repo:    repo,
		Blobs:   blobs.NewStore(cfg.UploadMaxBytes),
		Metrics: m,
		Log:     l,
		Config:  cfg,
	}
	a.streams, a.closeStreams = context.WithCancel(context.Background())

	// --- Sessions: Redis when configured, otherwise process memory ---
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPwd, DB: 0})
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if err := rdb.Ping(ctx).Err(); err != nil {
			_ = rdb.Close()
			return nil, fmt.Errorf("redis: %w", err)
		}
		a.RDB = rdb
		a.Sessions = session.NewRedisStore(rdb, cfg.SessionTTL)
		l.WithField("addr", cfg.RedisAddr).Info("sessions stored in redis")
	} else {
		a.memSessions = session.NewMemoryStore(cfg.SessionTTL)
		a.Sessions = a.memSessions
		l.Info("sessions stored in memory")
	}

	tmpl, err := web.Templates()
	if err != nil {
		return nil, fmt.Errorf("templates: %w", err)
	}

	// --- Gin ---
	r := gin.New()
	r.Use(gin.Recovery(), RequestLogger(l), m.Middleware())
	r.SetHTMLTemplate(tmpl)
	r.MaxMultipartMemory = cfg.UploadMaxBytes
	useCORS(r, cfg.WebOrigin)
	a.Router = r
	return a, nil
}

func loadCatalogFile(path string) (db.Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return db.Catalog{}, fmt.Errorf("catalog: %w", err)
	}
	defer f.Close()
	return db.LoadCatalog(f)
}

// Streams is done once CloseStreams runs; long-lived responses watch it.
func (a *App) Streams() context.Context { return a.streams }

// CloseStreams ends every open event stream so the server can drain.
func (a *App) CloseStreams() { a.closeStreams() }

func (a *App) Close() {
	a.closeStreams()
	if a.RDB != nil {
		_ = a.RDB.Close()
	}
}

// LoadConfig reads the environment; every value has a working default.
func LoadConfig() Config {
	get := func(k, def string) string {
		v := os.Getenv(k)
		if v == "" {
			return def
		}
		return v
	}
	ttl := 10 * time.Minute
	if d, err := time.ParseDuration(get("SESSION_TTL_SECONDS", "600") + "s"); err == nil {
		ttl = d
	}
	maxMB, err := strconv.ParseInt(get("UPLOAD_MAX_MB", "10"), 10, 64)
	if err != nil || maxMB <= 0 {
		maxMB = 10
	}
	rps, err := strconv.ParseFloat(get("ADMIN_RATE_PER_SEC", "5"), 64)
	if err != nil || rps <= 0 {
		rps = 5
	}
	return Config{
		Port:            get("PORT", "3001"),
		LogLevel:        get("LOG_LEVEL", "info"),
		GinMode:         os.Getenv("GIN_MODE"),
		WebOrigin:       get("WEB_ORIGIN", "http://localhost:3001"),
		RedisAddr:       os.Getenv("REDIS_ADDR"),
		RedisPwd:        os.Getenv("REDIS_PASSWORD"),
		SessionTTL:      ttl,
		WhatsAppNumber:  get("WHATSAPP_NUMBER", "917225994009"),
		ContactPhone:    get("CONTACT_PHONE", "+917225994009"),
		UploadMaxBytes:  maxMB << 20,
		AdminRatePerSec: rps,
		AdminBurst:      10,
		CatalogFile:     os.Getenv("CATALOG_FILE"),
	}
}
