package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"skillforge/internal/adapter"
	"skillforge/internal/adapter/extraction"
	"skillforge/internal/adapter/questiongen"
	"skillforge/internal/adapter/textextract"
	"skillforge/internal/cache"
	"skillforge/internal/config"
	"skillforge/internal/database"
	"skillforge/internal/handler"
	"skillforge/internal/logger"
	"skillforge/internal/middleware"
	"skillforge/internal/repository"
	"skillforge/internal/service"
	"skillforge/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/tmc/langchaingo/llms/ollama"
	"go.uber.org/zap"
)

// requestLogger is a middleware that logs HTTP requests
func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		path := c.Path()
		method := c.Method()

		err := c.Next()

		duration := time.Since(start)
		status := c.Response().StatusCode()

		logger.Get().Info("HTTP Request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
			zap.Duration("duration", duration),
			zap.String("ip", c.IP()),
			zap.String("user_agent", c.Get("User-Agent")),
		)

		return err
	}
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	// LLM client shared by the extraction and generation adapters
	llmHTTPClient := &http.Client{Timeout: 60 * time.Second}
	llm, err := ollama.New(
		ollama.WithServerURL(cfg.LLM.ServerURL),
		ollama.WithModel(cfg.LLM.Model),
		ollama.WithHTTPClient(llmHTTPClient),
	)
	if err != nil {
		appLogger.Fatal("Failed to create LLM client", zap.Error(err))
	}

	extractor := extraction.NewRoleProfileExtractor(llm, appLogger)
	generator := questiongen.NewLLMQuestionGenerator(llm, appLogger)

	textClient := &http.Client{Timeout: cfg.TextExtract.Timeout}
	textExtractor := textextract.NewHTTPTextExtractor(cfg.TextExtract.BaseURL, textClient, appLogger)

	// Redis backs the invitation snapshot store
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	snapshotStore := adapter.NewRedisCacheAdapter(redisClient)

	// Assessment record store
	db, err := database.NewSQLXOracleDB(cfg.DB.DSN)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()
	assessmentRepo := repository.NewAssessmentDatabaseAdapter(db)

	authoringService := service.NewAuthoringService(extractor, generator, textExtractor, assessmentRepo, appLogger)
	invitationService := service.NewInvitationService(authoringService, snapshotStore, cfg.Invitation.BaseURL, appLogger)

	validator := validation.NewValidator()
	authoringHandler := handler.NewAuthoringHandler(authoringService, validator)
	invitationHandler := handler.NewInvitationHandler(invitationService, validator)

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(recover.New())
	app.Use(cors.New())
	app.Use(requestLogger())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	// Resolving an invitation is the candidate-facing path and carries its
	// own token; everything else requires an authenticated recruiter.
	api.Get("/invitations/:token", invitationHandler.Resolve)

	sessions := api.Group("/sessions", middleware.Protected(cfg.Auth.JWTSecret))
	sessions.Post("/", authoringHandler.StartSession)
	sessions.Get("/:id", authoringHandler.GetSession)
	sessions.Post("/:id/reset", authoringHandler.ResetSession)
	sessions.Post("/:id/template/skip", authoringHandler.SkipTemplate)
	sessions.Post("/:id/template/apply", authoringHandler.ApplyTemplate)
	sessions.Post("/:id/back", authoringHandler.StepBack)
	sessions.Patch("/:id/draft", authoringHandler.UpdateDraft)
	sessions.Post("/:id/describe/files", authoringHandler.ImportDescription)
	sessions.Post("/:id/analyze", authoringHandler.Analyze)
	sessions.Post("/:id/editor", authoringHandler.BuildEditor)
	sessions.Post("/:id/summary", authoringHandler.ToSummary)
	sessions.Post("/:id/tags", authoringHandler.AddTag)
	sessions.Delete("/:id/tags", authoringHandler.RemoveTag)
	sessions.Post("/:id/questions", authoringHandler.AddQuestion)
	sessions.Patch("/:id/questions/:questionId", authoringHandler.UpdateQuestionField)
	sessions.Delete("/:id/questions/:questionId", authoringHandler.RemoveQuestion)
	sessions.Post("/:id/questions/:questionId/options", authoringHandler.AddOption)
	sessions.Patch("/:id/questions/:questionId/options", authoringHandler.UpdateOption)
	sessions.Delete("/:id/questions/:questionId/options", authoringHandler.RemoveOption)
	sessions.Post("/:id/blocks", authoringHandler.AddBlock)
	sessions.Post("/:id/save", authoringHandler.Save)
	sessions.Post("/:id/invitations", invitationHandler.IssuePreview)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-quit
		appLogger.Info("Shutting down server")
		if err := app.Shutdown(); err != nil {
			appLogger.Error("Server shutdown failed", zap.Error(err))
		}
	}()

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	appLogger.Info("Starting server", zap.String("addr", addr))
	if err := app.Listen(addr); err != nil {
		appLogger.Fatal("Server stopped unexpectedly", zap.Error(err))
	}
}
