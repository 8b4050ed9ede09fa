package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ai-daily-planner/config"
	_ "ai-daily-planner/docs" // Swagger docs
	"ai-daily-planner/internal/httpserver"
	"ai-daily-planner/internal/middleware"
	"ai-daily-planner/internal/model"
	"ai-daily-planner/internal/planner/repository/jsonfile"
	"ai-daily-planner/internal/planner/usecase"
	"ai-daily-planner/pkg/gcalendar"
	"ai-daily-planner/pkg/llmprovider"
	"ai-daily-planner/pkg/log"
)

// @title       AI Daily Planner API
// @description Turns a task list and a time window into a validated daily schedule via an LLM.
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

	logger.Info(ctx, "Starting AI Daily Planner...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Data directory: %s", cfg.Planner.DataDir)

	// 3. Persistence
	repo, err := jsonfile.New(cfg.Planner.DataDir, logger)
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize storage: %v", err)
		return
	}

	// 4. LLM providers
	var llm usecase.Requester
	providers, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil {
		logger.Warnf(ctx, "No LLM provider available: %v", err)
		logger.Warn(ctx, "Schedule generation will fail until GEMINI_API_KEY (or another provider key) is set")
	} else {
		maxTimeout, perr := time.ParseDuration(cfg.LLM.MaxTotalTimeout)
		if perr != nil {
			maxTimeout = 60 * time.Second
		}
		llm = llmprovider.NewManager(providers, &llmprovider.Config{
			FallbackEnabled: cfg.LLM.FallbackEnabled,
			MaxTotalTimeout: maxTimeout,
		}, logger)
		for _, p := range providers {
			logger.Infof(ctx, "LLM provider ready: %s (%s)", p.Name(), p.Model())
		}
	}

	// 5. Google Calendar (optional)
	var calendar usecase.CalendarClient
	if cfg.GoogleCalendar.CredentialsPath != "" {
		client, cerr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if cerr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", cerr)
		} else {
			calendar = client
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 6. Default window
	window, err := parseWindow(cfg.Planner.WindowStart, cfg.Planner.WindowEnd)
	if err != nil {
		logger.Errorf(ctx, "Invalid default window in config: %v", err)
		return
	}

	// 7. Planner UseCase
	plannerUC := usecase.New(
		logger,
		llm,
		calendar,
		repo,
		cfg.Planner.CacheSize,
		cfg.Planner.Timezone,
		cfg.GoogleCalendar.CalendarID,
		window,
	)

	// 8. HTTP server
	mw := middleware.New(logger, cfg.Planner.GenerateRatePerMin)
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Middleware:  mw,
		PlannerUC:   plannerUC,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize HTTP server: %v", err)
		return
	}

	// 9. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Errorf(ctx, "Failed to run server: %v", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

func parseWindow(start, end string) (model.TimeWindow, error) {
	s, err := model.ParseClock(start)
	if err != nil {
		return model.TimeWindow{}, fmt.Errorf("window start: %w", err)
	}
	e, err := model.ParseClock(end)
	if err != nil {
		return model.TimeWindow{}, fmt.Errorf("window end: %w", err)
	}
	w := model.TimeWindow{Start: s, End: e}
	if !w.Valid() {
		return model.TimeWindow{}, fmt.Errorf("window start %s must be before end %s", s, e)
	}
	return w, nil
}
