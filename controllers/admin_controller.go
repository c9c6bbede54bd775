package controllers

import (
	"mime/multipart"
	"net/http"
	"net/url"

	"Gin_redis_dress_rental/db"
	"Gin_redis_dress_rental/models"
	"Gin_redis_dress_rental/session"

	"github.com/gin-gonic/gin"
)

type AdminController struct{ *Srv }

func NewAdminController(s *Srv) *AdminController { return &AdminController{Srv: s} }

const (
	draftItemKey   = "draft:item"
	draftRentalKey = "draft:rental:"
	adminPath      = "/admin"
	addItemPath    = "/admin?dialog=add-item"
)

func rentalDialogPath(itemID string) string {
	return "/admin?rental=" + url.QueryEscape(itemID)
}

// GET /admin?dialog=add-item | ?rental=<itemId>
func (ac *AdminController) Page(c *gin.Context) {
	ctx := c.Request.Context()

	items, err := ac.Repo.ListItems(ctx, models.CategoryAll)
	if err != nil {
		c.String(http.StatusInternalServerError, err.Error())
		return
	}
	summary, err := ac.Repo.Summary(ctx)
	if err != nil {
		c.String(http.StatusInternalServerError, err.Error())
		return
	}
	cats, _ := ac.Repo.Categories(ctx)

	page := AdminPage{Summary: summary, Flashes: ac.flashes(c)}
	for _, cat := range cats {
		if cat.ID != models.CategoryAll {
			page.Categories = append(page.Categories, cat)
		}
	}
	for _, it := range items {
		page.Rows = append(page.Rows, adminRow(it))
	}

	if c.Query("dialog") == "add-item" {
		var form ItemForm
		ac.takeDraft(c, draftItemKey, &form)
		page.AddItem = &form
	}
	if id := c.Query("rental"); id != "" {
		if it, err := ac.Repo.FindItemByID(ctx, id); err == nil {
			var form RentalForm
			ac.takeDraft(c, draftRentalKey+id, &form)
			page.AddRental = &RentalDialog{Item: *it, Form: form}
		}
	}

	c.HTML(http.StatusOK, "admin.tmpl", page)
}

// POST /admin/items/:id/toggle
func (ac *AdminController) ToggleAvailability(c *gin.Context) {
	if _, err := ac.Repo.ToggleAvailability(c.Request.Context(), c.Param("id")); err != nil {
		ac.fail(c, err, adminPath)
		return
	}
	ac.succeed(c, msgAvailabilityUpdated, adminPath)
}

// POST /admin/items/:id/rentals
func (ac *AdminController) AddRental(c *gin.Context) {
	itemID := c.Param("id")
	var form RentalForm
	bindErr := c.ShouldBind(&form)
	if bindErr != nil && isMissingField(bindErr) {
		ac.saveDraft(c, draftRentalKey+itemID, form)
		ac.fail(c, models.ErrDatesRequired, rentalDialogPath(itemID))
		return
	}
	if bindErr != nil {
		ac.fail(c, bindErr, rentalDialogPath(itemID))
		return
	}

	if _, _, err := ac.Repo.AddRentalPeriod(c.Request.Context(), itemID, form.newRental()); err != nil {
		ac.saveDraft(c, draftRentalKey+itemID, form)
		ac.fail(c, err, rentalDialogPath(itemID))
		return
	}
	ac.succeed(c, msgRentalAdded, adminPath)
}

// POST /admin/items/:id/rentals/:rentalId/delete
func (ac *AdminController) RemoveRental(c *gin.Context) {
	if _, err := ac.Repo.RemoveRentalPeriod(c.Request.Context(), c.Param("id"), c.Param("rentalId")); err != nil {
		ac.fail(c, err, adminPath)
		return
	}
	ac.succeed(c, msgRentalRemoved, adminPath)
}

// POST /admin/items (multipart, first file of "images" becomes the picture)
func (ac *AdminController) CreateItem(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, ac.Cfg.UploadMaxBytes+1<<20)

	var form ItemForm
	if err := c.ShouldBind(&form); err != nil {
		ac.saveDraft(c, draftItemKey, form)
		if isMissingField(err) {
			ac.fail(c, db.ErrMissingFields, addItemPath)
			return
		}
		ac.fail(c, err, addItemPath)
		return
	}

	image, err := ac.storeFirstImage(c)
	if err != nil {
		ac.saveDraft(c, draftItemKey, form)
		ac.fail(c, err, addItemPath)
		return
	}

	if _, err := ac.Repo.CreateItem(c.Request.Context(), form.newItem(image)); err != nil {
		ac.saveDraft(c, draftItemKey, form)
		ac.fail(c, err, addItemPath)
		return
	}
	ac.succeed(c, msgItemAdded, adminPath)
}

// storeFirstImage keeps only the first uploaded file, as the add form always has.
// No file is not an error; the item simply has no picture.
func (ac *AdminController) storeFirstImage(c *gin.Context) (string, error) {
	mf, err := c.MultipartForm()
	if err != nil || mf == nil || len(mf.File["images"]) == 0 {
		return "", nil
	}
	return ac.putUpload(c, mf.File["images"][0])
}

func (ac *AdminController) putUpload(c *gin.Context, fh *multipart.FileHeader) (string, error) {
	f, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()
	return ac.Blobs.Put(c.Request.Context(), fh.Filename, f)
}

// Throttled answers a rate-limited form post the same way as a failed one.
func (ac *AdminController) Throttled(c *gin.Context) {
	ac.flash(c, session.Failure(msgTooManyRequests))
	c.Redirect(http.StatusSeeOther, adminPath)
}

func (ac *AdminController) succeed(c *gin.Context, msg, to string) {
	ac.flash(c, session.Success(msg))
	c.Redirect(http.StatusSeeOther, to)
}

func (ac *AdminController) fail(c *gin.Context, err error, to string) {
	if status(err) >= http.StatusInternalServerError {
		ac.Log.WithError(err).Error("admin action failed")
	}
	ac.flash(c, session.Failure(message(err)))
	c.Redirect(http.StatusSeeOther, to)
}
