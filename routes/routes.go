package routes

import (
	"net/http"
	"time"

	"everafter/handlers"
	"everafter/middleware"
	"everafter/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterVendorRoutes registers the public vendor directory.
func RegisterVendorRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/vendors")
	{
		api.GET("", hb.ListVendorsHandler)
		api.GET("/facets", hb.FacetsHandler)
		api.GET("/:slug", hb.GetVendorHandler)
		api.GET("/:slug/quote", hb.QuoteHandler)
		api.POST("/:slug/assistant", hb.AskVendorHandler)
	}
}

// RegisterInquiryRoutes registers the inquiry sidebar flow.
func RegisterInquiryRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/inquiries/sessions")
	{
		api.POST("", hb.StartSessionHandler)
		api.GET("/:id", hb.GetSessionHandler)
		api.DELETE("/:id", hb.CancelSessionHandler)
		api.PUT("/:id/dates", hb.SelectDateHandler)
		api.PUT("/:id/guests", hb.AdjustGuestsHandler)
		api.PUT("/:id/next", hb.NextStepHandler)
		api.PUT("/:id/change", hb.ChangeStepHandler)
		api.PUT("/:id/back", hb.BackHandler)
		api.POST("/:id/confirm", hb.ConfirmHandler)
	}
}

// RegisterContentRoutes registers the public content read.
func RegisterContentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/api/content/:slug", hb.GetPublicContentHandler)
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/api/admin/login", hb.AdminLoginHandler)

	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.JWTAuthAdminMiddleware(hb.AdminSecret))
		adminGroup.GET("/content/:slug", hb.GetAdminContentHandler)
		adminGroup.PATCH("/content/:slug/:section", hb.EditSectionHandler)
		adminGroup.POST("/content/:slug/draft", hb.SaveDraftHandler)
		adminGroup.POST("/content/:slug/publish", hb.PublishHandler)
		adminGroup.DELETE("/content/:slug/workspace", hb.DiscardHandler)
		adminGroup.POST("/media/:section/:entityId", hb.UploadMediaHandler)
		adminGroup.DELETE("/media", hb.DeleteMediaHandler)
		adminGroup.GET("/inquiries", hb.ListInquiriesHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":   "ok",
			"message":  "Hi, I'm EverAfter",
			"services": utils.GetHealthStatus(),
		})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware(hb.MaxRequestsPerMin))

	RegisterHealthRoute(r)
	RegisterVendorRoutes(r, hb)
	RegisterInquiryRoutes(r, hb)
	RegisterContentRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}
