package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/campuscare/healthbot/internal/api"
	"github.com/campuscare/healthbot/internal/config"
	"github.com/campuscare/healthbot/internal/llm"
	"github.com/campuscare/healthbot/internal/repository"
	"github.com/campuscare/healthbot/internal/service"
)

var (
	configPath = flag.String("config", "", "Path to config file")
)

func main() {
	flag.Parse()

	// .env is optional; real deployments set HEALTHBOT_* in the environment
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	// Initialize database
	db, err := repository.NewDB(cfg.Database.Path)
	if err != nil {
		logger.Fatal("Failed to initialize database", zap.Error(err))
	}
	defer db.Close()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	chatRepo := repository.NewChatRepository(db)

	// Initialize completion client and pipeline
	llmClient := llm.NewGroqClient(cfg.LLM)
	classifier := service.NewClassifier(llmClient, logger)
	generator := service.NewGenerator(llmClient, classifier, logger)

	// Initialize services
	authService := service.NewAuthService(userRepo, cfg.Auth)
	chatService := service.NewChatService(chatRepo, generator, logger)

	// Setup router
	router := api.SetupRouter(authService, chatService, api.RouterConfig{
		AllowOrigins: []string{"*"},
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:         cfg.Address(),
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Starting health chatbot server",
			zap.String("address", cfg.Address()),
			zap.String("base_url", cfg.Server.BaseURL),
			zap.String("model", cfg.LLM.Model),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}
