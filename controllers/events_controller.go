package controllers

import (
	"context"
	"io"

	"github.com/gin-gonic/gin"
)

type EventsController struct{ *Srv }

func NewEventsController(s *Srv) *EventsController { return &EventsController{Srv: s} }

// GET /events streams catalog changes as server-sent events until the client
// leaves or the server starts shutting down.
// The first event, "ready", carries the current catalog version.
func (ec *EventsController) Stream(c *gin.Context) {
	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()
	if ec.Streams != nil {
		stop := context.AfterFunc(ec.Streams, cancel)
		defer stop()
	}
	changes := ec.Repo.Subscribe(ctx)

	c.Header("Cache-Control", "no-cache")
	c.Header("X-Accel-Buffering", "no")
	c.SSEvent("ready", gin.H{"version": ec.Repo.Version()})
	c.Writer.Flush()

	c.Stream(func(w io.Writer) bool {
		ch, ok := <-changes
		if !ok {
			return false
		}
		c.SSEvent("catalog", ch)
		return true
	})
}
