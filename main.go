// File: slopeline/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"slopeline/config"
	"slopeline/cron"
	"slopeline/database"
	availabilityRepo "slopeline/database/repository/availability"
	instructorRepo "slopeline/database/repository/instructor"
	lessonRepo "slopeline/database/repository/lesson"
	timesheetRepo "slopeline/database/repository/timesheet"
	"slopeline/handlers"
	"slopeline/middleware"
	"slopeline/routes"
	"slopeline/services/booking"
	"slopeline/services/instructor"
	"slopeline/services/notification"
	"slopeline/services/schedule"
	"slopeline/services/timesheet"
	"slopeline/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitAuthCache()
	utils.FirebaseInit()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	stripe.Key = config.AppConfig.StripeKey

	// repositories.
	availRepo := availabilityRepo.NewMongoAvailabilityRepo()
	lessons := lessonRepo.NewMongoLessonRepo()
	instructors := instructorRepo.NewMongoInstructorRepo()
	worksessions := timesheetRepo.NewMongoTimesheetRepo()

	for name, ensure := range map[string]func() error{
		"availability": availRepo.EnsureIndexes,
		"lessons":      lessons.EnsureIndexes,
		"instructors":  instructors.EnsureIndexes,
		"worksessions": worksessions.EnsureIndexes,
	} {
		if err := ensure(); err != nil {
			logger.Sugar().Fatalf("main: failed to ensure %s indexes: %v", name, err)
		}
	}

	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	defer asynqClient.Close()

	// services.
	scheduleService := &schedule.DefaultScheduleService{
		Availability: availRepo,
		Lessons:      lessons,
		Cache:        utils.GetCacheClient(),
	}

	instructorService, err := instructor.NewDefaultInstructorService(instructors)
	if err != nil {
		logger.Sugar().Fatalf("main: %v", err)
	}

	notificationService, err := notification.NewDefaultNotificationService(instructors)
	if err != nil {
		logger.Sugar().Fatalf("main: %v", err)
	}

	paymentHandler := booking.NewPaymentHandler(logger)
	bookingService, err := booking.NewDefaultBookingService(
		lessons, instructors, scheduleService, paymentHandler, notificationService,
	)
	if err != nil {
		logger.Sugar().Fatalf("main: %v", err)
	}

	timesheetService, err := timesheet.NewDefaultTimesheetService(worksessions, asynqClient)
	if err != nil {
		logger.Sugar().Fatalf("main: %v", err)
	}

	// Background worker deriving availability from completed work sessions.
	cron.InitDeriveWorker(scheduleService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		InstructorRepo: instructors,
		Instructor:     handlers.NewInstructorHandler(instructorService),
		Schedule:       handlers.NewScheduleHandler(scheduleService),
		Booking:        handlers.NewBookingHandler(bookingService),
		Timesheet:      handlers.NewTimesheetHandler(timesheetService),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
