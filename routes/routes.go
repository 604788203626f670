package routes

import (
	"net/http"
	"time"

	"slopeline/handlers"
	"slopeline/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterInstructorRoutes registers instructor account and scheduling endpoints.
func RegisterInstructorRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/instructors")
	{
		// Public instructor endpoints.
		api.POST("/register", hb.Instructor.RegisterInstructorHandler)
		api.POST("/login", hb.Instructor.AuthenticateInstructorHandler)
		api.GET("/id/:id", hb.Instructor.GetInstructorByIDHandler)

		// Endpoints that modify instructor data require strict authentication.
		protected := api.Group("")
		protected.Use(middleware.JWTAuthInstructorMiddleware(hb.InstructorRepo, false))
		protected.GET("/availability", hb.Schedule.ListAvailabilityHandler)
		protected.PUT("/availability", hb.Schedule.UpdateAvailabilityHandler)
		protected.POST("/availability/weekly", hb.Schedule.ApplyWeeklyPatternHandler)
		protected.PUT("/fcm-token", hb.Instructor.UpdateFCMTokenHandler)
	}
}

// RegisterScheduleRoutes registers public calendar browsing for students.
func RegisterScheduleRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/schedule")
	{
		api.GET("/:id/calendar/:year/:month", hb.Schedule.GetCalendarHandler)
		api.GET("/:id/slots/:date", hb.Schedule.GetDaySlotsHandler)
	}
}

// RegisterBookingRoutes sets up the endpoints for lesson checkout.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	bookingGroup := r.Group("/api/bookings")
	{
		bookingGroup.Use(middleware.JWTAuthUserMiddleware())
		bookingGroup.POST("", hb.Booking.BookSlotHandler)
		bookingGroup.GET("", hb.Booking.ListMyLessonsHandler)
		bookingGroup.DELETE("/:lessonID", hb.Booking.CancelLessonHandler)
	}
}

// RegisterTimesheetRoutes sets up the work-session tracking endpoints.
func RegisterTimesheetRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	timesheetGroup := r.Group("/api/timesheet")
	{
		timesheetGroup.Use(middleware.JWTAuthInstructorMiddleware(hb.InstructorRepo, false))
		timesheetGroup.POST("/clock-in", hb.Timesheet.ClockInHandler)
		timesheetGroup.POST("/clock-out", hb.Timesheet.ClockOutHandler)
		timesheetGroup.GET("/sessions", hb.Timesheet.ListWorkSessionsHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Slopeline"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterInstructorRoutes(r, hb)
	RegisterScheduleRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterTimesheetRoutes(r, hb)
	RegisterHealthRoute(r)
}
