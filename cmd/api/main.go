package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"life-manager/config"
	_ "life-manager/docs" // Swagger docs
	"life-manager/internal/httpserver"
	taskHTTP "life-manager/internal/task/delivery/http"
	pbRepo "life-manager/internal/task/repository/pocketbase"
	"life-manager/internal/task/usecase"
	"life-manager/pkg/gcalendar"
	"life-manager/pkg/log"
	"life-manager/pkg/openai"
)

// @title       Life Manager API
// @description Voice-first task capture: transcriptions go through LLM extraction into structured GTD tasks persisted in PocketBase.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Life Manager...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "PocketBase URL: %s", cfg.PocketBase.URL)

	// 3. OpenAI client
	llm, err := openai.New(openai.Config{
		APIKey:     cfg.OpenAI.APIKey,
		Model:      cfg.OpenAI.Model,
		BaseURL:    cfg.OpenAI.BaseURL,
		HTTPClient: &http.Client{Timeout: cfg.OpenAI.Timeout},
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize OpenAI client: ", err)
		return
	}

	// 4. PocketBase repository
	pbClient := pbRepo.NewClient(cfg.PocketBase.URL)
	taskRepo := pbRepo.New(pbClient, cfg.PocketBase.Collection, cfg.PocketBase.AdminEmail, cfg.PocketBase.AdminPassword, logger)

	// 5. Google Calendar client (optional)
	var calendarClient usecase.CalendarClient
	if cfg.GoogleCalendar.CredentialsPath != "" {
		gc, gcErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if gcErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", gcErr)
		} else {
			logger.Info(ctx, "Google Calendar initialized")
			calendarClient = gc
		}
	}

	// 6. Task domain
	taskUC := usecase.New(logger, llm, taskRepo, calendarClient, cfg.GoogleCalendar.CalendarID, cfg.GoogleCalendar.Timezone)
	taskHandler := taskHTTP.New(logger, taskUC)

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		TaskHandler:     taskHandler,
		RateLimitPerMin: cfg.RateLimit.PerMin,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
