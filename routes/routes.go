package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"salonflow/handlers"
	"salonflow/middleware"
)

// RegisterAuthRoutes registers staff sign-in endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.Auth.Register)
		api.POST("/login", hb.Auth.Login)
	}
}

// RegisterAvailabilityRoutes registers the scheduling read endpoints.
func RegisterAvailabilityRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/availability")
	{
		api.Use(middleware.JWTAuthStaffMiddleware(hb.StaffRepo))
		api.GET("/slots", hb.Availability.GetSlots)
		api.POST("/check", hb.Availability.CheckConflict)
		api.GET("/calendar", hb.Availability.DayCalendar)
	}
}

// RegisterAppointmentRoutes registers the booking lifecycle endpoints.
func RegisterAppointmentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/appointments")
	{
		api.Use(middleware.JWTAuthStaffMiddleware(hb.StaffRepo))
		api.POST("", hb.Appointment.Create)
		api.GET("/:id", hb.Appointment.Get)
		api.PATCH("/:id", hb.Appointment.Edit)
		api.POST("/:id/cancel", hb.Appointment.Cancel)
		api.POST("/:id/complete", hb.Appointment.Complete)
		api.DELETE("/:id", hb.Appointment.Delete)
	}
}

// RegisterSalonRoutes registers barber, block and catalogue management.
func RegisterSalonRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/salon")
	{
		api.Use(middleware.JWTAuthStaffMiddleware(hb.StaffRepo))
		api.GET("/barbers", hb.Salon.ListBarbers)
		api.GET("/barbers/:id", hb.Salon.GetBarber)

		// Settings writes are owner-only.
		owner := api.Group("")
		owner.Use(middleware.RequireRole("owner"))
		owner.POST("/barbers", hb.Salon.CreateBarber)
		owner.PUT("/barbers/:id", hb.Salon.UpdateBarber)
		owner.DELETE("/barbers/:id", hb.Salon.DeleteBarber)
		owner.PUT("/barbers/:id/windows", hb.Salon.SetWorkingWindows)
		owner.PUT("/barbers/:id/lunch", hb.Salon.SaveLunchBreak)
		owner.DELETE("/barbers/:id/lunch", hb.Salon.DeleteLunchBreak)

		api.GET("/blocks", hb.Salon.ListBlocks)
		api.POST("/blocks", hb.Salon.CreateBlock)
		api.PUT("/blocks/:id", hb.Salon.UpdateBlock)
		api.DELETE("/blocks/:id", hb.Salon.DeleteBlock)

		api.GET("/services", hb.Salon.ListServices)
		owner.POST("/services", hb.Salon.CreateService)
		owner.PUT("/services/:id", hb.Salon.UpdateService)
		owner.DELETE("/services/:id", hb.Salon.DeleteService)
	}
}

// RegisterPOSRoutes registers the register endpoints.
func RegisterPOSRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/pos")
	{
		api.Use(middleware.JWTAuthStaffMiddleware(hb.StaffRepo))
		api.GET("/cart", hb.Checkout.GetCart)
		api.POST("/cart/lines", hb.Checkout.AddLine)
		api.DELETE("/cart/lines/:index", hb.Checkout.RemoveLine)
		api.POST("/cart/appointment", hb.Checkout.AttachAppointment)
		api.DELETE("/cart", hb.Checkout.ClearCart)
		api.POST("/checkout", hb.Checkout.Checkout)
	}
}

// RegisterStatsRoutes registers dashboard and report endpoints.
func RegisterStatsRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/stats")
	{
		api.Use(middleware.JWTAuthStaffMiddleware(hb.StaffRepo))
		api.GET("/occupancy", hb.Stats.Occupancy)
		api.GET("/report", hb.Stats.DailyReport)

		owner := api.Group("")
		owner.Use(middleware.RequireRole("owner"))
		owner.POST("/report/send", hb.Stats.SendReport)
	}
}

// RegisterClientRoutes registers the customer directory endpoints.
func RegisterClientRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/clients")
	{
		api.Use(middleware.JWTAuthStaffMiddleware(hb.StaffRepo))
		api.GET("", hb.Client.Search)
		api.POST("", hb.Client.Create)
		api.GET("/:id", hb.Client.Get)
		api.PUT("/:id", hb.Client.Update)
		api.DELETE("/:id", hb.Client.Delete)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm SalonFlow"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterAvailabilityRoutes(r, hb)
	RegisterAppointmentRoutes(r, hb)
	RegisterSalonRoutes(r, hb)
	RegisterPOSRoutes(r, hb)
	RegisterStatsRoutes(r, hb)
	RegisterClientRoutes(r, hb)
	RegisterHealthRoute(r)
}
