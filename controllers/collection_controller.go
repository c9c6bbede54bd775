package controllers

import (
	"errors"
	"net/http"

	"Gin_redis_dress_rental/db"
	"Gin_redis_dress_rental/models"

	"github.com/gin-gonic/gin"
)

type CollectionController struct{ *Srv }

func NewCollectionController(s *Srv) *CollectionController { return &CollectionController{Srv: s} }

// GET /?category=&item=
func (cc *CollectionController) Index(c *gin.Context) {
	ctx := c.Request.Context()
	active := c.DefaultQuery("category", models.CategoryAll)

	cats, err := cc.Repo.Categories(ctx)
	if err != nil {
		c.String(http.StatusInternalServerError, err.Error())
		return
	}
	items, err := cc.Repo.ListItems(ctx, active)
	if err != nil {
		c.String(http.StatusInternalServerError, err.Error())
		return
	}

	page := CollectionPage{ActiveCategory: active, Flashes: cc.flashes(c)}
	for _, cat := range cats {
		page.Categories = append(page.Categories, CategoryTab{
			ID:     cat.ID,
			Name:   cat.Name,
			URL:    collectionURL(cat.ID, ""),
			Active: cat.ID == active,
		})
	}
	for _, it := range items {
		page.Cards = append(page.Cards, cc.card(it, active))
	}

	// An unknown or missing id just leaves the overlay closed.
	if id := c.Query("item"); id != "" {
		it, err := cc.Repo.FindItemByID(ctx, id)
		switch {
		case err == nil:
			page.Detail = cc.detail(*it, active)
		case !errors.Is(err, db.ErrItemNotFound):
			c.String(http.StatusInternalServerError, err.Error())
			return
		}
	}

	c.HTML(http.StatusOK, "collection.tmpl", page)
}
