package routes

import (
	"time"

	"lightfield/handlers"
	"lightfield/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers admin authentication endpoints.
func RegisterAuthRoutes(r *gin.Engine) {
	api := r.Group("/api/auth")
	{
		api.POST("/login", handlers.Login)
		api.POST("/refresh", handlers.Refresh)
		api.POST("/logout", middleware.JWTAuthAdminMiddleware(), handlers.Logout)
	}
}

// RegisterAssociateRoutes registers associate profile endpoints.
func RegisterAssociateRoutes(r *gin.Engine) {
	api := r.Group("/api/associates")
	{
		api.GET("", handlers.ListAssociates)
		api.GET("/:slug", handlers.GetAssociate)

		admin := api.Group("")
		admin.Use(middleware.JWTAuthAdminMiddleware())
		admin.POST("", handlers.CreateAssociate)
		admin.PUT("/id/:id", handlers.UpdateAssociate)
		admin.DELETE("/id/:id", handlers.DeleteAssociate)
		admin.POST("/reorder", handlers.ReorderAssociates)
	}
}

// RegisterBlogRoutes registers blog category and post endpoints.
func RegisterBlogRoutes(r *gin.Engine) {
	categories := r.Group("/api/categories")
	{
		categories.GET("", handlers.ListCategories)
		categories.GET("/:id", handlers.GetCategory)

		admin := categories.Group("")
		admin.Use(middleware.JWTAuthAdminMiddleware())
		admin.POST("", handlers.CreateCategory)
		admin.PUT("/id/:id", handlers.UpdateCategory)
		admin.DELETE("/id/:id", handlers.DeleteCategory)
		admin.POST("/reorder", handlers.ReorderCategories)
	}

	blogs := r.Group("/api/blogs")
	{
		blogs.GET("", handlers.ListBlogs)
		blogs.GET("/:slug", handlers.GetBlog)

		admin := blogs.Group("")
		admin.Use(middleware.JWTAuthAdminMiddleware())
		admin.POST("", handlers.CreateBlog)
		admin.PUT("/id/:id", handlers.UpdateBlog)
		admin.DELETE("/id/:id", handlers.DeleteBlog)
		admin.POST("/reorder", handlers.ReorderBlogs)
		admin.POST("/ai-assist", handlers.BlogAIAssist)
		admin.POST("/ai-overview", handlers.BlogAIOverview)
	}
}

// RegisterTestimonialRoutes registers testimonial endpoints.
func RegisterTestimonialRoutes(r *gin.Engine) {
	api := r.Group("/api/testimonials")
	{
		api.GET("", handlers.ListTestimonials)
		api.GET("/:id", handlers.GetTestimonial)

		admin := api.Group("")
		admin.Use(middleware.JWTAuthAdminMiddleware())
		admin.POST("", handlers.CreateTestimonial)
		admin.PUT("/id/:id", handlers.UpdateTestimonial)
		admin.DELETE("/id/:id", handlers.DeleteTestimonial)
		admin.POST("/reorder", handlers.ReorderTestimonials)
	}
}

// RegisterGrantRoutes registers grant endpoints.
func RegisterGrantRoutes(r *gin.Engine) {
	api := r.Group("/api/grants")
	{
		api.GET("", handlers.ListGrants)
		api.GET("/featured", handlers.FeaturedGrants)
		api.GET("/open", handlers.OpenGrants)
		api.GET("/:slug", handlers.GetGrant)

		admin := api.Group("")
		admin.Use(middleware.JWTAuthAdminMiddleware())
		admin.POST("", handlers.CreateGrant)
		admin.PUT("/id/:id", handlers.UpdateGrant)
		admin.DELETE("/id/:id", handlers.DeleteGrant)
		admin.POST("/reorder", handlers.ReorderGrants)
	}
}

// RegisterContactRoutes registers contact form endpoints.
func RegisterContactRoutes(r *gin.Engine) {
	api := r.Group("/api/contact")
	{
		api.POST("/submit", handlers.SubmitContact)

		admin := api.Group("")
		admin.Use(middleware.JWTAuthAdminMiddleware())
		admin.GET("/list", handlers.ListContacts)
		admin.GET("/:id", handlers.GetContact)
		admin.PATCH("/:id", handlers.UpdateContactStatus)
	}
}

// RegisterConsultationRoutes registers services, bookings and payments.
func RegisterConsultationRoutes(r *gin.Engine) {
	api := r.Group("/api/consultations")
	{
		api.GET("/services", handlers.ListConsultationServices)
		api.GET("/services/featured", handlers.FeaturedConsultationServices)
		api.GET("/services/:slug", handlers.GetConsultationService)

		api.POST("/book", handlers.CreateBooking)
		api.POST("/verify-payment", handlers.VerifyPayment)
		api.POST("/webhook", handlers.PaystackWebhook)
		api.GET("/booking/:reference", handlers.GetBookingStatus)

		admin := api.Group("")
		admin.Use(middleware.JWTAuthAdminMiddleware())
		admin.POST("/services", handlers.CreateConsultationService)
		admin.PUT("/services/id/:id", handlers.UpdateConsultationService)
		admin.DELETE("/services/id/:id", handlers.DeleteConsultationService)
		admin.POST("/services/reorder", handlers.ReorderConsultationServices)
		admin.GET("/bookings", handlers.ListBookings)
		admin.GET("/bookings/:id", handlers.GetBooking)
		admin.PATCH("/bookings/:id", handlers.UpdateBooking)
		admin.GET("/stats", handlers.BookingStats)
	}
}

// RegisterSoloRoutes registers the streaming chat and its analytics.
func RegisterSoloRoutes(r *gin.Engine) {
	api := r.Group("/api/solo")
	{
		api.POST("/chat", handlers.SoloChat)

		admin := api.Group("")
		admin.Use(middleware.JWTAuthAdminMiddleware())
		admin.GET("/analytics", handlers.SoloAnalytics)
		admin.GET("/analytics/trends", handlers.SoloTrends)
	}
}

// RegisterAdminRoutes registers dashboard and upload endpoints.
func RegisterAdminRoutes(r *gin.Engine) {
	api := r.Group("/api/admin")
	{
		api.Use(middleware.JWTAuthAdminMiddleware())
		api.GET("/stats", handlers.DashboardStats)
		api.GET("/charts/posts-by-category", handlers.PostsByCategoryChart)
		api.GET("/charts/posts-over-time", handlers.PostsOverTimeChart)
		api.GET("/charts/blog-views", handlers.BlogViewsChart)
		api.GET("/charts/contacts-by-status", handlers.ContactsByStatusChart)
		api.GET("/charts/chat-trend", handlers.ChatTrendChart)
		api.POST("/upload/image", handlers.UploadImage)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", handlers.Health)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "X-Session-Id"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r)
	RegisterAssociateRoutes(r)
	RegisterBlogRoutes(r)
	RegisterTestimonialRoutes(r)
	RegisterGrantRoutes(r)
	RegisterContactRoutes(r)
	RegisterConsultationRoutes(r)
	RegisterSoloRoutes(r)
	RegisterAdminRoutes(r)
	RegisterHealthRoute(r)
}
