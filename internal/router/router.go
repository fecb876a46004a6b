package router

import (
	"github.com/gin-gonic/gin"

	"gstgenius/internal/handler"
	"gstgenius/internal/middleware"
	"gstgenius/internal/service"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	authSvc service.AuthService,
	authH *handler.AuthHandler,
	draftH *handler.DraftHandler,
	invoiceH *handler.InvoiceHandler,
	healthH *handler.HealthHandler,
	allowedOrigins []string,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(allowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	v1 := r.Group("/api/v1")

	// Public auth routes
	auth := v1.Group("/auth")
	auth.POST("/register", authH.Register)
	auth.POST("/login", authH.Login)
	auth.POST("/refresh", authH.Refresh)

	// Public draft routes - stateless operations on caller-owned drafts
	drafts := v1.Group("/drafts")
	drafts.POST("/new", draftH.New)
	drafts.POST("/compute", draftH.Compute)
	drafts.POST("/validate", draftH.Validate)
	drafts.POST("/share", draftH.Share)
	drafts.GET("/share/:token", draftH.OpenShare)
	drafts.POST("/pdf", draftH.ExportPDF)
	drafts.POST("/extract", draftH.Extract)

	v1.GET("/hsn/suggest", draftH.SuggestHSN)

	// Protected routes - require valid JWT
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authSvc))

	invoices := protected.Group("/invoices")
	invoices.POST("", invoiceH.Save)
	invoices.GET("", invoiceH.List)
	invoices.GET("/export", invoiceH.ExportRegister)
	invoices.GET("/:id", invoiceH.Get)
	invoices.DELETE("/:id", invoiceH.Delete)
	invoices.POST("/:id/email", invoiceH.EmailShareLink)

	protected.POST("/logo", invoiceH.UploadLogo)

	return r
}
