package session

import (
	"context"

	"github.com/google/uuid"
)

// Flash is a one-shot toast shown on the next page render.
type Flash struct {
	Kind    string `json:"kind"` // "success" or "error"
	Message string `json:"message"`
}

func Success(msg string) Flash { return Flash{Kind: "success", Message: msg} }
func Failure(msg string) Flash { return Flash{Kind: "error", Message: msg} }

// Store keeps per-browser transient state: dialog drafts and pending toasts.
// Everything expires after the store's TTL.
type Store interface {
	// Put saves v as JSON under key, replacing any previous value.
	Put(ctx context.Context, sid, key string, v any) error
	// Take loads key into dst and deletes it. ok is false when nothing was stored.
	Take(ctx context.Context, sid, key string, dst any) (ok bool, err error)
	// AddFlash queues a toast.
	AddFlash(ctx context.Context, sid string, f Flash) error
	// Flashes drains the queued toasts in order.
	Flashes(ctx context.Context, sid string) ([]Flash, error)
}

// NewID returns a fresh browser session id.
func NewID() string { return uuid.NewString() }
