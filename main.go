// File: clinicsched/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clinicsched/config"
	"clinicsched/cron"
	"clinicsched/database"
	appointmentRepo "clinicsched/database/repository/appointment"
	staffRepo "clinicsched/database/repository/staff"
	"clinicsched/handlers"
	"clinicsched/middleware"
	"clinicsched/routes"
	"clinicsched/services/agenda"
	"clinicsched/services/booking"
	"clinicsched/services/notification"
	"clinicsched/services/schedule"
	"clinicsched/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitAuthCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	apptRepo := appointmentRepo.NewMongoAppointmentRepo()
	if err := apptRepo.EnsureIndexes(); err != nil {
		logger.Sugar().Warnf("main: failed to ensure appointment indexes: %v", err)
	}
	staffRepository := staffRepo.NewMongoStaffRepo()

	// services.
	layoutEngine := schedule.NewLayoutEngine(schedule.WindowFromConfig())

	bookingService := &booking.DefaultBookingService{
		Repo:      apptRepo,
		StaffRepo: staffRepository,
		Reminders: booking.NewReminderScheduler(),
		Cache:     utils.GetCacheClient(),
		Logger:    logger,
	}

	agendaService := agenda.NewDefaultAgendaService(
		apptRepo,
		staffRepository,
		layoutEngine,
		utils.GetCacheClient(),
		logger,
	)

	notificationService := notification.NewDefaultNotificationService(logger)
	cron.InitReminderWorker(notificationService)

	// handlers.
	handlerBundle := &routes.HandlerBundle{
		StaffRepo:   staffRepository,
		Auth:        handlers.NewAuthHandler(staffRepository, logger),
		Staff:       handlers.NewStaffHandler(staffRepository, logger),
		Agenda:      handlers.NewAgendaHandler(agendaService, logger),
		Appointment: handlers.NewAppointmentHandler(bookingService, logger),
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
