package controllers

import (
	"net/http"

	"Gin_redis_dress_rental/app"
	"Gin_redis_dress_rental/db"
	"Gin_redis_dress_rental/models"

	"github.com/gin-gonic/gin"
)

// ApiController serves the catalog and admin operations as JSON.
type ApiController struct{ *Srv }

func NewApiController(s *Srv) *ApiController { return &ApiController{Srv: s} }

func (ac *ApiController) fail(c *gin.Context, err error) {
	code := status(err)
	if code >= http.StatusInternalServerError {
		ac.Log.WithError(err).Error("api request failed")
	}
	c.JSON(code, app.H{"error": message(err)})
}

// GET /api/categories
func (ac *ApiController) ListCategories(c *gin.Context) {
	cats, err := ac.Repo.Categories(c.Request.Context())
	if err != nil {
		ac.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, app.H{"categories": cats})
}

// GET /api/items?category=
func (ac *ApiController) ListItems(c *gin.Context) {
	items, err := ac.Repo.ListItems(c.Request.Context(), c.DefaultQuery("category", models.CategoryAll))
	if err != nil {
		ac.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, app.H{"items": items})
}

// GET /api/items/:id
func (ac *ApiController) GetItem(c *gin.Context) {
	it, err := ac.Repo.FindItemByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		ac.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, it)
}

// GET /api/admin/summary
func (ac *ApiController) Summary(c *gin.Context) {
	s, err := ac.Repo.Summary(c.Request.Context())
	if err != nil {
		ac.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, s)
}

type createItemReq struct {
	Name                string       `json:"name" binding:"required"`
	Category            string       `json:"category" binding:"required"`
	Description         string       `json:"description"`
	PriceWithJewelry    models.Price `json:"priceWithJewelry"`
	PriceWithoutJewelry models.Price `json:"priceWithoutJewelry"`
	SecurityDeposit     models.Price `json:"securityDeposit"`
	Image               string       `json:"image"`
	Sizes               []string     `json:"sizes"`
}

// POST /api/admin/items
func (ac *ApiController) CreateItem(c *gin.Context) {
	var in createItemReq
	if err := c.ShouldBindJSON(&in); err != nil {
		if isMissingField(err) {
			err = db.ErrMissingFields
		}
		c.JSON(http.StatusBadRequest, app.H{"error": message(err)})
		return
	}
	it, err := ac.Repo.CreateItem(c.Request.Context(), db.NewItem{
		Name:                in.Name,
		Category:            in.Category,
		Description:         in.Description,
		PriceWithJewelry:    in.PriceWithJewelry,
		PriceWithoutJewelry: in.PriceWithoutJewelry,
		SecurityDeposit:     in.SecurityDeposit,
		Image:               in.Image,
		Sizes:               in.Sizes,
	})
	if err != nil {
		ac.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, it)
}

// POST /api/admin/items/:id/toggle
func (ac *ApiController) ToggleAvailability(c *gin.Context) {
	it, err := ac.Repo.ToggleAvailability(c.Request.Context(), c.Param("id"))
	if err != nil {
		ac.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, it)
}

// POST /api/admin/items/:id/rentals
func (ac *ApiController) AddRental(c *gin.Context) {
	var in RentalForm
	if err := c.ShouldBindJSON(&in); err != nil {
		if isMissingField(err) {
			err = models.ErrDatesRequired
		}
		c.JSON(http.StatusBadRequest, app.H{"error": message(err)})
		return
	}
	it, period, err := ac.Repo.AddRentalPeriod(c.Request.Context(), c.Param("id"), in.newRental())
	if err != nil {
		ac.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, app.H{"item": it, "rental": period})
}

// DELETE /api/admin/items/:id/rentals/:rentalId
func (ac *ApiController) RemoveRental(c *gin.Context) {
	it, err := ac.Repo.RemoveRentalPeriod(c.Request.Context(), c.Param("id"), c.Param("rentalId"))
	if err != nil {
		ac.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, it)
}
