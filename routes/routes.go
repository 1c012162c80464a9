package routes

import (
	"net/http"
	"time"

	"lawyerup/handlers"
	"lawyerup/middleware"
	"lawyerup/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterBookingRoutes sets up the endpoints for the booking engine.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		// Guest intake stays public.
		api.POST("/guest", hb.CreateGuestBookingHandler)

		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.POST("", hb.CreateBookingHandler)
		api.GET("", hb.ListBookingsHandler)
		api.PATCH("/:id/status", hb.UpdateBookingStatusHandler)
		api.PATCH("/:id/reschedule", hb.RescheduleBookingHandler)
		api.PATCH("/:id/cancel", hb.CancelBookingHandler)
	}
}

// RegisterEventRoutes registers calendar block endpoints.
func RegisterEventRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/events")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.POST("", hb.CreateEventHandler)
		api.GET("", hb.ListEventsHandler)
		api.DELETE("/:id", hb.DeleteEventHandler)
	}
}

// RegisterNotificationRoutes registers notification endpoints.
func RegisterNotificationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/notifications")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.GET("", hb.ListNotificationsHandler)
		api.PATCH("/:id/read", hb.MarkNotificationHandler)
	}
}

// RegisterCaseRoutes registers case management endpoints.
func RegisterCaseRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/cases")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.POST("", hb.CreateCaseHandler)
		api.GET("", hb.ListCasesHandler)
		api.GET("/:id", hb.GetCaseHandler)
		api.PUT("/:id", hb.UpdateCaseHandler)
	}
}

// RegisterDocumentRoutes registers document metadata endpoints.
func RegisterDocumentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/documents")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.POST("", hb.CreateDocumentHandler)
		api.GET("", hb.ListDocumentsHandler)
		api.POST("/:id/share", hb.ShareDocumentHandler)
	}
}

// RegisterMessageRoutes registers chat endpoints.
func RegisterMessageRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/messages")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.POST("", hb.SendMessageHandler)
		api.GET("/recents", hb.RecentConversationsHandler)
		api.GET("/:userId", hb.GetConversationHandler)
	}
}

// RegisterNetworkRoutes registers the state community board endpoints.
func RegisterNetworkRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/network")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.GET("/messages", hb.NetworkFeedHandler)
		api.POST("/messages", hb.PostNetworkMessageHandler)
	}
}

// RegisterDashboardRoutes registers the summary stats endpoint.
func RegisterDashboardRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/dashboard")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.GET("/lawyer", hb.LawyerDashboardHandler)
		api.GET("/client", hb.ClientDashboardHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint backed by the
// background dependency monitor.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":       "ok",
			"message":      "Hi, I'm LawyerUp",
			"dependencies": utils.GetHealthStatus(),
		})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.Use(middleware.RateLimitMiddleware())

	RegisterBookingRoutes(r, hb)
	RegisterEventRoutes(r, hb)
	RegisterNotificationRoutes(r, hb)
	RegisterCaseRoutes(r, hb)
	RegisterDocumentRoutes(r, hb)
	RegisterMessageRoutes(r, hb)
	RegisterNetworkRoutes(r, hb)
	RegisterDashboardRoutes(r, hb)
	RegisterHealthRoute(r)
}
