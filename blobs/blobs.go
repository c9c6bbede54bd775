// Package blobs keeps uploaded images in process memory for as long as the server runs.
package blobs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

// PathPrefix is where stored blobs are served from.
const PathPrefix = "/uploads/"

var (
	ErrNotFound = errors.New("blob not found")
	ErrTooLarge = errors.New("upload too large")
)

type Blob struct {
	ID          string
	Filename    string
	ContentType string
	Data        []byte
}

// Store is an in-memory blob registry. References die with the process.
type Store struct {
	mu       sync.RWMutex
	blobs    map[string]Blob
	maxBytes int64
}

// NewStore limits each blob to maxBytes; zero or less means no limit.
func NewStore(maxBytes int64) *Store {
	return &Store{blobs: make(map[string]Blob), maxBytes: maxBytes}
}

// Put reads r fully and returns the path the blob is reachable at.
func (s *Store) Put(ctx context.Context, filename string, r io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if s.maxBytes > 0 {
		r = io.LimitReader(r, s.maxBytes+1)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read upload: %w", err)
	}
	if s.maxBytes > 0 && int64(len(data)) > s.maxBytes {
		return "", ErrTooLarge
	}

	b := Blob{
		ID:          uuid.NewString(),
		Filename:    filename,
		ContentType: mimetype.Detect(data).String(),
		Data:        data,
	}
	s.mu.Lock()
	s.blobs[b.ID] = b
	s.mu.Unlock()
	return PathPrefix + b.ID, nil
}

func (s *Store) Get(id string) (Blob, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.blobs[id]
	if !ok {
		return Blob{}, ErrNotFound
	}
	return b, nil
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.blobs)
}
