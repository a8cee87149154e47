package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/HMkaraman/beauty-center-dashboard-sub004/config"
	"github.com/HMkaraman/beauty-center-dashboard-sub004/database"
	appointmentRepo "github.com/HMkaraman/beauty-center-dashboard-sub004/database/repository/appointment"
	staffRepo "github.com/HMkaraman/beauty-center-dashboard-sub004/database/repository/staff"
	hoursRepo "github.com/HMkaraman/beauty-center-dashboard-sub004/database/repository/workinghours"
	"github.com/HMkaraman/beauty-center-dashboard-sub004/handlers"
	"github.com/HMkaraman/beauty-center-dashboard-sub004/routes"
	"github.com/HMkaraman/beauty-center-dashboard-sub004/services/scheduling"
	"github.com/HMkaraman/beauty-center-dashboard-sub004/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitAvailabilityCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// repositories.
	apptRepo := appointmentRepo.NewMongoAppointmentRepo()
	workingHoursRepo := hoursRepo.NewMongoWorkingHoursRepo()
	rosterRepo := staffRepo.NewMongoStaffRepo()

	// scheduling engine.
	engine := &scheduling.DefaultSchedulingEngine{
		Appointments:       apptRepo,
		Hours:              workingHoursRepo,
		Staff:              rosterRepo,
		GranularityMinutes: config.AppConfig.SlotGranularityMinutes,
		WindowDays:         config.AppConfig.BookingWindowDays,
	}

	// handlers.
	cacheTTL := time.Duration(config.AppConfig.AvailabilityCacheTTL) * time.Second
	schedulingHandler := handlers.NewSchedulingHandler(engine, utils.GetAvailabilityCacheClient(), cacheTTL)
	appointmentHandler := handlers.NewAppointmentHandler(apptRepo, engine)

	routes.SetupRoutes(router, schedulingHandler, appointmentHandler)

	srv := &http.Server{
		Addr:    ":" + config.AppConfig.AppPort,
		Handler: router,
	}

	go func() {
		logger.Sugar().Infof("listening on port %s", config.AppConfig.AppPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Errorf("forced shutdown: %v", err)
	}
}
