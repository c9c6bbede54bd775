package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "LOG_LEVEL", "REDIS_ADDR", "SESSION_TTL_SECONDS", "UPLOAD_MAX_MB", "ADMIN_RATE_PER_SEC", "WHATSAPP_NUMBER", "WEB_ORIGIN"} {
		t.Setenv(k, "")
	}

	cfg := LoadConfig()
	assert.Equal(t, "3001", cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.RedisAddr)
	assert.Equal(t, 10*time.Minute, cfg.SessionTTL)
	assert.Equal(t, int64(10<<20), cfg.UploadMaxBytes)
	assert.Equal(t, 5.0, cfg.AdminRatePerSec)
	assert.Equal(t, "917225994009", cfg.WhatsAppNumber)
	assert.False(t, cfg.SecureCookies())
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("SESSION_TTL_SECONDS", "30")
	t.Setenv("UPLOAD_MAX_MB", "-1")
	t.Setenv("ADMIN_RATE_PER_SEC", "0.5")
	t.Setenv("WEB_ORIGIN", "https://themissingfit.in")

	cfg := LoadConfig()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 30*time.Second, cfg.SessionTTL)
	assert.Equal(t, int64(10<<20), cfg.UploadMaxBytes, "bad sizes fall back to the default")
	assert.Equal(t, 0.5, cfg.AdminRatePerSec)
	assert.True(t, cfg.SecureCookies())
}

func TestNewWithCatalogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
categories: [{ id: all, name: All }, { id: gown, name: Gowns }]
items:
  - { id: g1, name: Test Gown, category: gown, priceWithJewelry: 1200 }
`), 0o600))

	a, err := New(Config{LogLevel: "error", GinMode: gin.TestMode, SessionTTL: time.Minute, CatalogFile: path})
	require.NoError(t, err)
	defer a.Close()

	items, err := a.Repo.ListItems(t.Context(), "")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Test Gown", items[0].Name)

	_, err = New(Config{LogLevel: "error", GinMode: gin.TestMode, CatalogFile: filepath.Join(t.TempDir(), "missing.yaml")})
	require.Error(t, err)
}
