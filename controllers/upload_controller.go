package controllers

import (
	"errors"
	"net/http"

	"Gin_redis_dress_rental/blobs"

	"github.com/gin-gonic/gin"
)

type UploadController struct{ *Srv }

func NewUploadController(s *Srv) *UploadController { return &UploadController{Srv: s} }

// GET /uploads/:id
func (uc *UploadController) Serve(c *gin.Context) {
	b, err := uc.Blobs.Get(c.Param("id"))
	if errors.Is(err, blobs.ErrNotFound) {
		c.Status(http.StatusNotFound)
		return
	}
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.Header("Cache-Control", "private, max-age=3600")
	c.Data(http.StatusOK, b.ContentType, b.Data)
}
