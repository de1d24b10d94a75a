package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Aashish23092/credit-report-analyzer/client"
	"github.com/Aashish23092/credit-report-analyzer/config"
	"github.com/Aashish23092/credit-report-analyzer/handler"
	"github.com/Aashish23092/credit-report-analyzer/logger"
	"github.com/Aashish23092/credit-report-analyzer/service"
	"github.com/Aashish23092/credit-report-analyzer/store"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger.Init(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})
	log := slog.Default()

	repo, err := store.Open(context.Background(), cfg.Store.Path)
	if err != nil {
		log.Error("failed to open store", "path", cfg.Store.Path, "error", err)
		os.Exit(1)
	}
	defer repo.Close()

	tesseractClient := client.NewTesseractClient(cfg.OCR.TessdataPath, cfg.OCR.Language)
	extractor := service.NewTextExtractor(service.NewPDFProcessor(), tesseractClient, log)

	var narrative *service.NarrativeService
	if cfg.NarrativeEnabled() {
		narrativeClient := client.NewNarrativeClient(client.NarrativeClientConfig{
			BaseURL:     cfg.Narrative.APIURL,
			APIKey:      cfg.Narrative.APIKey,
			Model:       cfg.Narrative.Model,
			Temperature: cfg.Narrative.Temperature,
			MaxTokens:   cfg.Narrative.MaxTokens,
			Timeout:     cfg.Narrative.Timeout,
		}, log)
		narrative, err = service.NewNarrativeService(narrativeClient, cfg.Narrative.MaxTextPerFile, log)
		if err != nil {
			log.Error("failed to initialize narrative service", "error", err)
			os.Exit(1)
		}
	} else {
		log.Info("narrative endpoint not configured, reports disabled")
	}

	analysisService := service.NewAnalysisService(extractor, narrative, repo, cfg.Analysis.Workers, log)
	analysisHandler := handler.NewAnalysisHandler(analysisService, cfg.Server.MaxFiles, cfg.Server.MaxFileSize)

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(handler.RequestID())
	router.Use(handler.Recovery())
	router.Use(handler.RequestLogger())

	// Uploads are capped per file by MaxFileSize; allow the whole batch in memory.
	router.MaxMultipartMemory = int64(cfg.Server.MaxFiles) * cfg.Server.MaxFileSize

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "Credit Report Analyzer",
		})
	})

	analysisHandler.Register(router.Group("/api/v1"))

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	go func() {
		log.Info("starting credit report analyzer", "port", cfg.Server.Port, "workers", cfg.Analysis.Workers)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server forced to shutdown", "error", err)
	}
}
