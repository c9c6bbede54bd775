package routes

import (
	"net/http"

	"Gin_redis_dress_rental/app"
	"Gin_redis_dress_rental/controllers"
	"Gin_redis_dress_rental/web"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, a *app.App) {
	// Controllers and shared dependencies
	s := controllers.GetSrv(a)
	collectionCtl := controllers.NewCollectionController(s)
	adminCtl := controllers.NewAdminController(s)
	apiCtl := controllers.NewApiController(s)
	uploadCtl := controllers.NewUploadController(s)
	eventsCtl := controllers.NewEventsController(s)

	sessionMW := app.SessionCookie(a.Config.SecureCookies())
	limiter := a.AdminLimiter()
	limitMW := app.RateLimit(limiter)
	formLimitMW := app.RateLimitWith(limiter, adminCtl.Throttled)

	r.GET("/healthz", func(c *app.Ctx) { c.JSON(http.StatusOK, app.H{"ok": true}) })
	r.GET("/metrics", a.Metrics.Handler())
	r.StaticFS("/static", web.Static())
	r.GET("/uploads/:id", uploadCtl.Serve)
	r.GET("/events", eventsCtl.Stream)

	// ------------------------------
	// Storefront
	// ------------------------------
	site := r.Group("", sessionMW)
	{
		site.GET("/", collectionCtl.Index)
	}

	// ------------------------------
	// Admin page (HTML forms, redirect back with a toast)
	// ------------------------------
	admin := r.Group("/admin", sessionMW)
	{
		admin.GET("", adminCtl.Page)

		mutate := admin.Group("", formLimitMW)
		mutate.POST("/items", adminCtl.CreateItem)
		mutate.POST("/items/:id/toggle", adminCtl.ToggleAvailability)
		mutate.POST("/items/:id/rentals", adminCtl.AddRental)
		mutate.POST("/items/:id/rentals/:rentalId/delete", adminCtl.RemoveRental)
	}

	// ------------------------------
	// JSON API
	// ------------------------------
	api := r.Group("/api")
	{
		api.GET("/categories", apiCtl.ListCategories)
		api.GET("/items", apiCtl.ListItems)
		api.GET("/items/:id", apiCtl.GetItem)
	}

	apiAdmin := r.Group("/api/admin")
	{
		apiAdmin.GET("/summary", apiCtl.Summary)

		mutate := apiAdmin.Group("", limitMW)
		mutate.POST("/items", apiCtl.CreateItem)
		mutate.POST("/items/:id/toggle", apiCtl.ToggleAvailability)
		mutate.POST("/items/:id/rentals", apiCtl.AddRental)
		mutate.DELETE("/items/:id/rentals/:rentalId", apiCtl.RemoveRental)
	}
}
