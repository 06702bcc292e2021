package main

import (
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
	"github.com/gofiber/fiber/v2/middleware/session"

	"github.com/saranshsahu123/pre-ai-interview/internal/config"
	"github.com/saranshsahu123/pre-ai-interview/internal/handlers"
	"github.com/saranshsahu123/pre-ai-interview/internal/repositories"
	"github.com/saranshsahu123/pre-ai-interview/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	// Initialize database
	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}

	// Initialize repositories
	candidateRepo := repositories.NewCandidateRepository(db)
	log.Println("✅ Repositories initialized successfully")

	// Initialize services
	storageService := services.NewStorageService(cfg.Storage.UploadPath, cfg.Storage.MediaPath)
	if err := storageService.EnsureDirs(); err != nil {
		log.Fatalf("❌ Failed to create storage directories: %v", err)
	}

	textExtractor := services.NewTextExtractorService()
	imageExtractor := services.NewImageExtractorService()
	fieldExtractor := services.NewFieldExtractorService(
		services.DefaultSkillVocabulary,
		services.DefaultDegreeRanks,
	)
	scorer := services.NewResumeScorerService()
	matcher := services.NewCompanyMatcherService(services.DefaultCompanyRequirements)

	analyzer := services.NewResumeAnalyzerService(
		textExtractor,
		imageExtractor,
		fieldExtractor,
		scorer,
		matcher,
		storageService,
	)

	interviewService := services.NewInterviewService()
	evaluatorService := services.NewAnswerEvaluatorService(
		services.DefaultRoleRequirements,
		services.DefaultAlternateRoleRules,
	)
	log.Println("✅ Services initialized successfully")

	// Session store (server-side, cookie-keyed)
	store := session.New(session.Config{
		Expiration:     cfg.Session.Expiration,
		CookieHTTPOnly: true,
	})

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(candidateRepo, store, cfg.Auth.BcryptCost)
	uploadHandler := handlers.NewUploadHandler(storageService, analyzer, store, cfg.Storage.MaxFileSize)
	resultHandler := handlers.NewResultHandler(store)
	interviewHandler := handlers.NewInterviewHandler(interviewService, evaluatorService, store)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Pre AI Interview API",
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

	// Extracted profile images
	app.Static("/media", cfg.Storage.MediaPath)

	// Routes
	api := app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// Auth endpoints
	auth := api.Group("/auth")
	auth.Post("/signup", authHandler.HandleSignup)
	auth.Post("/login", authHandler.HandleLogin)
	auth.Post("/logout", authHandler.HandleLogout)

	// Resume and interview endpoints require a logged-in candidate
	requireAuth := handlers.NewAuthMiddleware(store)

	resume := api.Group("/resume", requireAuth)
	resume.Post("/upload", uploadHandler.HandleUpload)
	resume.Get("/result", resultHandler.HandleGetResult)

	interview := api.Group("/interview", requireAuth)
	interview.Post("/start", interviewHandler.HandleStart)
	interview.Post("/answer", interviewHandler.HandleAnswer)
	interview.Get("/feedback", interviewHandler.HandleFeedback)

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Pre AI Interview API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /api/v1/auth/signup",
				"POST /api/v1/auth/login",
				"POST /api/v1/auth/logout",
				"POST /api/v1/resume/upload",
				"GET /api/v1/resume/result",
				"POST /api/v1/interview/start",
				"POST /api/v1/interview/answer",
				"GET /api/v1/interview/feedback",
			},
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
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
