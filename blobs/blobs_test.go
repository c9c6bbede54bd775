package blobs

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a, 0, 0, 0, 0x0d, 'I', 'H', 'D', 'R'}

func TestPutAndGet(t *testing.T) {
	t.Parallel()
	s := NewStore(1 << 20)

	path, err := s.Put(context.Background(), "gown.png", bytes.NewReader(pngHeader))
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(path, PathPrefix))

	b, err := s.Get(strings.TrimPrefix(path, PathPrefix))
	require.NoError(t, err)
	assert.Equal(t, "image/png", b.ContentType)
	assert.Equal(t, "gown.png", b.Filename)
	assert.Equal(t, pngHeader, b.Data)
	assert.Equal(t, 1, s.Len())
}

func TestPutKeepsAnyContent(t *testing.T) {
	t.Parallel()
	s := NewStore(0)

	path, err := s.Put(context.Background(), "notes.txt", strings.NewReader("hello"))
	require.NoError(t, err)
	b, err := s.Get(strings.TrimPrefix(path, PathPrefix))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(b.ContentType, "text/plain"))
}

func TestPutTooLarge(t *testing.T) {
	t.Parallel()
	s := NewStore(4)

	_, err := s.Put(context.Background(), "big.bin", strings.NewReader("12345"))
	require.ErrorIs(t, err, ErrTooLarge)
	assert.Zero(t, s.Len())

	_, err = s.Put(context.Background(), "ok.bin", strings.NewReader("1234"))
	require.NoError(t, err)
}

func TestGetMissing(t *testing.T) {
	t.Parallel()
	_, err := NewStore(0).Get("nope")
	require.ErrorIs(t, err, ErrNotFound)
}
