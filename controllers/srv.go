// controllers/srv.go
package controllers

import (
	"context"

	"Gin_redis_dress_rental/app"
	"Gin_redis_dress_rental/blobs"
	"Gin_redis_dress_rental/db"
	"Gin_redis_dress_rental/session"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Srv carries the shared dependencies every controller embeds.
type Srv struct {
	Repo     *db.Repo
	Blobs    *blobs.Store
	Sessions session.Store
	Log      *logrus.Logger
	Cfg      app.Config
	Streams  context.Context
}

func GetSrv(a *app.App) *Srv {
	return &Srv{
		Repo:     a.Repo,
		Blobs:    a.Blobs,
		Sessions: a.Sessions,
		Log:      a.Log,
		Cfg:      a.Config,
		Streams:  a.Streams(),
	}
}

// --- helpers ---

// flash queues a toast for the browser's next page. Failures only cost the toast.
func (s *Srv) flash(c *gin.Context, f session.Flash) {
	if err := s.Sessions.AddFlash(c.Request.Context(), app.SessionID(c), f); err != nil {
		s.Log.WithError(err).Warn("queue flash")
	}
}

func (s *Srv) flashes(c *gin.Context) []session.Flash {
	fs, err := s.Sessions.Flashes(c.Request.Context(), app.SessionID(c))
	if err != nil {
		s.Log.WithError(err).Warn("load flashes")
		return nil
	}
	return fs
}

func (s *Srv) saveDraft(c *gin.Context, key string, v any) {
	if err := s.Sessions.Put(c.Request.Context(), app.SessionID(c), key, v); err != nil {
		s.Log.WithError(err).Warn("save draft")
	}
}

// takeDraft fills dst from a saved draft and reports whether there was one.
func (s *Srv) takeDraft(c *gin.Context, key string, dst any) bool {
	ok, err := s.Sessions.Take(c.Request.Context(), app.SessionID(c), key, dst)
	if err != nil {
		s.Log.WithError(err).Warn("load draft")
		return false
	}
	return ok
}
