package routes

import (
	"net/http"
	"time"

	"github.com/HMkaraman/beauty-center-dashboard-sub004/handlers"
	"github.com/HMkaraman/beauty-center-dashboard-sub004/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterSchedulingRoutes registers the dashboard scheduling endpoints.
func RegisterSchedulingRoutes(r *gin.Engine, sh *handlers.SchedulingHandler) {
	api := r.Group("/api/scheduling")
	{
		api.Use(middleware.TenantAuthMiddleware())
		api.POST("/conflict-check", sh.CheckConflictHandler)
		api.GET("/next-slot", sh.NextAvailableSlotHandler)
	}
}

// RegisterAppointmentRoutes registers the appointment write path.
func RegisterAppointmentRoutes(r *gin.Engine, ah *handlers.AppointmentHandler) {
	api := r.Group("/api/appointments")
	{
		api.Use(middleware.TenantAuthMiddleware())
		api.POST("", ah.CreateAppointmentHandler)
		api.GET("/:id", ah.GetAppointmentHandler)
		api.DELETE("/:id", ah.CancelAppointmentHandler)
	}
}

// RegisterPublicBookingRoutes registers the unauthenticated booking-page
// endpoints. They are tenant-scoped by URL and rate limited.
func RegisterPublicBookingRoutes(r *gin.Engine, sh *handlers.SchedulingHandler) {
	api := r.Group("/api/public/:tenantID/booking")
	{
		api.Use(middleware.RateLimitMiddleware())
		api.GET("/dates", sh.AvailableDatesHandler)
		api.GET("/slots", sh.AvailableSlotsHandler)
	}
}

// RegisterHealthRoute registers the liveness endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// SetupRoutes wires CORS and every route group onto the router.
func SetupRoutes(r *gin.Engine, sh *handlers.SchedulingHandler, ah *handlers.AppointmentHandler) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterSchedulingRoutes(r, sh)
	RegisterAppointmentRoutes(r, ah)
	RegisterPublicBookingRoutes(r, sh)
	RegisterHealthRoute(r)
}
