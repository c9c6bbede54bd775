// app/bootstrap.go
package app

import (
	"context"
	"time"
)

// StartSessionSweeper drops expired in-memory sessions every interval until ctx is done.
// Redis expires keys on its own, so this is a no-op there.
func (a *App) StartSessionSweeper(ctx context.Context, every time.Duration) {
	if a.memSessions == nil {
		return
	}
	go func() {
		ticker := time.NewTicker(every)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if n := a.memSessions.Sweep(); n > 0 {
					a.Log.WithField("dropped", n).Debug("expired sessions swept")
				}
			}
		}
	}()
}
