package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"cvmatcher/internal/config"
	"cvmatcher/internal/embedding"
	"cvmatcher/internal/handlers"
	"cvmatcher/internal/matcher"
	"cvmatcher/internal/repositories"
	"cvmatcher/internal/services"
)

// embeddingDim matches the configured embedding model output; it sizes the
// Qdrant cache collection.
const embeddingDim = 768

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	// Initialize database
	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}

	resultRepo := repositories.NewMatchResultRepository(db)
	log.Println("✅ Repositories initialized successfully")

	// Initialize storage and extraction services
	storageService := services.NewStorageService(cfg.Storage.UploadPath)
	if err := storageService.EnsureUploadDir(); err != nil {
		log.Fatalf("❌ Failed to create upload directory: %v", err)
	}

	extractor := services.NewTextExtractorService()
	log.Println("✅ Services initialized successfully")

	// Initialize the embedding provider. Both models are loaded exactly once
	// here; a failure means the process must not serve.
	embedder, err := buildEmbeddingProvider(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize embedding provider: %v", err)
	}
	log.Println("✅ Embedding provider initialized successfully")

	// Load the trained regression model artifact
	regModel, err := matcher.LoadLinearModel(cfg.Matcher.RegressionModelPath)
	if err != nil {
		log.Fatalf("❌ Failed to load regression model: %v", err)
	}
	log.Printf("✅ Regression model loaded from %s\n", cfg.Matcher.RegressionModelPath)

	// Initialize the scoring engine
	engine, err := matcher.NewEngine(embedder, regModel)
	if err != nil {
		log.Fatalf("❌ Failed to initialize scoring engine: %v", err)
	}
	log.Println("✅ Scoring engine initialized")

	// Start the result recorder
	recorder := services.NewRecorder(resultRepo, cfg.Worker.RecorderConcurrency)
	recorder.Start()
	log.Println("✅ Result recorder started successfully")

	// Initialize handlers
	matchHandler := handlers.NewMatchHandler(engine, recorder)
	fileMatchHandler := handlers.NewFileMatchHandler(
		engine,
		recorder,
		storageService,
		extractor,
		cfg.Storage.MaxFileSize,
	)
	historyHandler := handlers.NewHistoryHandler(resultRepo)
	formatsHandler := handlers.NewFormatsHandler(cfg.Storage.MaxFileSize)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "CV Matcher API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		BodyLimit:    int(cfg.Storage.MaxFileSize),
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Routes
	api := app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// API endpoints
	api.Post("/match", matchHandler.HandleMatch)
	api.Post("/match/files", fileMatchHandler.HandleMatchWithFiles)
	api.Get("/matches/history", historyHandler.HandleGetHistory)
	api.Get("/supported-formats", formatsHandler.HandleSupportedFormats)

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "CV Matcher API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /api/v1/match",
				"POST /api/v1/match/files",
				"GET /api/v1/matches/history",
				"GET /api/v1/supported-formats",
			},
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		recorder.Stop()
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// buildEmbeddingProvider wires the Gemini provider behind an in-process
// cache, with an optional persistent Qdrant cache between them.
func buildEmbeddingProvider(cfg *config.Config) (embedding.Provider, error) {
	gemini, err := embedding.NewGeminiProvider(cfg.Gemini.APIKey, cfg.Gemini.EmbedModel)
	if err != nil {
		return nil, err
	}

	var provider embedding.Provider = gemini

	if cfg.Qdrant.Enabled {
		qdrantCache, err := embedding.NewQdrantCache(
			cfg.Qdrant.URL,
			cfg.Qdrant.APIKey,
			cfg.Qdrant.Collection,
			embeddingDim,
			provider,
		)
		if err != nil {
			return nil, err
		}

		if err := qdrantCache.InitCollection(context.Background()); err != nil {
			return nil, err
		}

		provider = qdrantCache
		log.Println("✅ Qdrant embedding cache enabled")
	}

	return embedding.NewMemoryCache(provider), nil
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
