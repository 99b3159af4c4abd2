package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"studyenglish/internal/config"
	"studyenglish/internal/dictionary"
	"studyenglish/internal/handler"
	"studyenglish/internal/middleware"
	"studyenglish/internal/service"
	"studyenglish/internal/ui"
	"studyenglish/internal/web"
	"studyenglish/internal/widget"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting Study English",
		zap.String("addr", cfg.HTTPAddr),
		zap.String("policy", string(cfg.Policy)),
		zap.Bool("bot", cfg.BotEnabled()),
	)

	// Initialize dictionary client
	client := dictionary.NewClient(cfg.Dictionary.BaseURL, logger,
		dictionary.WithLocale(cfg.Dictionary.Locale),
		dictionary.WithTimeout(cfg.Dictionary.Timeout),
	)

	// Initialize services
	widgets := service.NewWidgetService(widget.NewChat(cfg.ChatDelay), widget.DefaultQuiz, logger)
	services := service.NewServices(
		service.NewEnglishService(client, logger),
		service.NewLocalService(logger),
		widgets,
		logger,
	)

	// Wire widgets against the elements the page provides
	registry := ui.NewRegistry()
	server := web.NewServer(registry, widgets, cfg.Policy, logger)
	host, err := server.Host()
	if err != nil {
		logger.Fatal("Failed to render page", zap.Error(err))
	}
	active := services.Wire(registry, host)

	logger.Info("Widgets registered", zap.Strings("widgets", active))

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           server.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start HTTP server in background
	go func() {
		logger.Info("HTTP server started", zap.String("addr", cfg.HTTPAddr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	// Start Telegram bot in background when configured
	var bot *tele.Bot
	if cfg.BotEnabled() {
		bot, err = startBot(cfg, registry, logger)
		if err != nil {
			logger.Fatal("Failed to create bot", zap.Error(err))
		}
	}

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan

	logger.Info("Shutdown signal received, stopping...")

	// Graceful shutdown
	if bot != nil {
		bot.Stop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error("HTTP server shutdown failed", zap.Error(err))
	}

	logger.Info("Stopped gracefully")
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsDevelopment() {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// startBot creates the Telegram bot and starts polling in the background
func startBot(cfg *config.Config, registry *ui.Registry, logger *zap.Logger) (*tele.Bot, error) {
	bot, err := tele.NewBot(tele.Settings{
		Token:  cfg.BotToken,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	})
	if err != nil {
		return nil, fmt.Errorf("new bot: %w", err)
	}

	bot.Use(middleware.Recover(logger), middleware.LogUpdates(logger))

	h := handler.NewHandler(bot, registry, cfg.Policy, logger)
	h.RegisterHandlers()
	bot.OnError = h.HandleError

	go func() {
		logger.Info("Bot started successfully")
		bot.Start()
	}()

	return bot, nil
}
