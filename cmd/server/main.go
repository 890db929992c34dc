package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"zhscribe/internal/catalog"
	"zhscribe/internal/config"
	"zhscribe/internal/handlers"
	"zhscribe/internal/metrics"
	"zhscribe/internal/models"
	"zhscribe/internal/simulate"
	"zhscribe/internal/storage"
	"zhscribe/internal/version"
)

func main() {
	// Load .env when present, skip otherwise
	_ = godotenv.Load()

	cfg := config.Load()

	jobStore := storage.NewJobStore()
	metricsStore := storage.NewMetricsStore(cfg.MetricsHistoryCap)

	simulator := simulate.NewSimulator(jobStore, cfg.SimulateInterval)
	collector := metrics.NewCollector(jobStore, metricsStore, cfg.MetricsInterval)
	collector.Start()

	jobHandler := handlers.NewJobHandler(jobStore, simulator)
	uploadHandler := handlers.NewUploadHandler(jobStore, cfg)
	systemHandler := handlers.NewSystemHandler(metricsStore, collector)
	modelHandler := handlers.NewModelHandler()

	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.BodyLimit(cfg.BodyLimit()))

	e.GET("/api/jobs", jobHandler.List)
	e.GET("/api/jobs/:id", jobHandler.Get)
	e.PATCH("/api/jobs/:id", jobHandler.Update)
	e.DELETE("/api/jobs/:id", jobHandler.Delete)
	e.POST("/api/jobs/:id/start", jobHandler.Start)
	e.GET("/api/jobs/:id/download/:format", jobHandler.Download)
	e.POST("/api/upload", uploadHandler.Upload)
	e.GET("/api/models", modelHandler.Models)
	e.GET("/api/system/metrics", systemHandler.Metrics)
	e.GET("/api/system/metrics/history", systemHandler.MetricsHistory)
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"status":      "ok",
			"version":     version.Version,
			"modelsCount": len(catalog.Models()),
			"activeJobs":  jobStore.CountByStatus(models.JobStatusProcessing),
		})
	})

	go func() {
		log.Printf("Starting zhscribe v%s on port %s", version.Version, cfg.Port)
		if err := e.Start(fmt.Sprintf(":%s", cfg.Port)); err != nil && err != http.ErrServerClosed {
			log.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Printf("Server shutdown: %v", err)
	}
	simulator.Shutdown()
	collector.Stop()
}
