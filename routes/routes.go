package routes

import (
	"net/http"
	"time"

	staffRepo "clinicsched/database/repository/staff"
	"clinicsched/handlers"
	"clinicsched/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups the wired handlers for route registration.
type HandlerBundle struct {
	StaffRepo   staffRepo.StaffRepository
	Auth        *handlers.AuthHandler
	Staff       *handlers.StaffHandler
	Agenda      *handlers.AgendaHandler
	Appointment *handlers.AppointmentHandler
}

// RegisterRoutes wires all endpoint groups onto the router.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterAuthRoutes(r, hb)
	RegisterStaffRoutes(r, hb)
	RegisterAgendaRoutes(r, hb)
	RegisterAppointmentRoutes(r, hb)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm ClinicSched"})
	})
}

// RegisterAuthRoutes registers login and token revocation.
func RegisterAuthRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/login", hb.Auth.LoginHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthStaffMiddleware(hb.StaffRepo))
		protected.POST("/revoke", hb.Auth.RevokeTokenHandler)
	}
}

// RegisterStaffRoutes registers staff endpoints.
func RegisterStaffRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/staff")
	{
		api.POST("/register", hb.Staff.RegisterStaffHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthStaffMiddleware(hb.StaffRepo))
		protected.GET("", hb.Staff.ListStaffHandler)
	}
}

// RegisterAgendaRoutes registers the calendar view endpoints.
func RegisterAgendaRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/agenda")
	api.Use(middleware.JWTAuthStaffMiddleware(hb.StaffRepo))
	{
		api.GET("/day", hb.Agenda.DayViewHandler)
		api.GET("/week", hb.Agenda.WeekViewHandler)
		api.POST("/pinch", hb.Agenda.PinchHandler)
		api.POST("/navigate", hb.Agenda.NavigateHandler)
	}
}

// RegisterAppointmentRoutes registers the conflict-guarded appointment endpoints.
func RegisterAppointmentRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/appointments")
	api.Use(middleware.JWTAuthStaffMiddleware(hb.StaffRepo))
	{
		api.POST("", hb.Appointment.CreateAppointmentHandler)
		api.GET("", hb.Appointment.ListAppointmentsHandler)
		api.DELETE("/:id", hb.Appointment.CancelAppointmentHandler)
	}
}
