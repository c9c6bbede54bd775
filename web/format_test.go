package web

import (
	"bytes"
	"testing"
	"time"

	"Gin_redis_dress_rental/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestINR(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "₹4,500", INR(4500))
	assert.Equal(t, "₹0", INR(0))
	assert.Equal(t, "₹850", INR(850))
	assert.Equal(t, "₹99.50", INR(99.5))
	assert.Equal(t, "₹—", INR(models.ParsePrice("abc")))
}

func TestDates(t *testing.T) {
	t.Parallel()

	d := time.Date(2025, time.February, 14, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "14 Feb 2025", ShortDate(d))
	assert.Equal(t, "14 February 2025", LongDate(d))
	assert.Equal(t, "14 Feb", DayMonth(d))
	assert.Equal(t, "2025-02-14", ISODate(d))
}

func TestTemplatesParse(t *testing.T) {
	t.Parallel()

	tmpl, err := Templates()
	require.NoError(t, err)
	for _, name := range []string{"collection.tmpl", "admin.tmpl", "header", "footer", "flashes", "card"} {
		assert.NotNil(t, tmpl.Lookup(name), name)
	}

	var buf bytes.Buffer
	require.NoError(t, tmpl.ExecuteTemplate(&buf, "flashes", nil))
	assert.Empty(t, bytes.TrimSpace(buf.Bytes()))
}

func TestStaticServesStylesheet(t *testing.T) {
	t.Parallel()

	f, err := Static().Open("site.css")
	require.NoError(t, err)
	require.NoError(t, f.Close())
}
