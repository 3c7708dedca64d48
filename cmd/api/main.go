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

	"onewave/route-compass/internal/config"
	"onewave/route-compass/internal/handlers"
	"onewave/route-compass/internal/middleware"
	"onewave/route-compass/internal/repositories"
	"onewave/route-compass/internal/services"
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
	userRepo := repositories.NewUserRepository(db)
	routeRepo := repositories.NewRouteRepository(db)
	analysisRepo := repositories.NewAnalysisRepository(db)
	log.Println("✅ Repositories initialized successfully")

	// Initialize Gemini AI
	geminiService, err := services.NewGeminiService(cfg.Gemini.APIKey, cfg.Gemini.Model)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Gemini AI: %v", err)
	}
	log.Println("✅ Gemini AI initialized successfully")

	// Initialize services
	insightService := services.NewInsightService(geminiService)
	matcherService := services.NewMatcherService()
	analyzerService := services.NewAnalyzerService(
		userRepo,
		routeRepo,
		analysisRepo,
		matcherService,
		insightService,
		cfg.Gemini.Timeout,
		cfg.Analysis.TopMatches,
	)
	authService := services.NewAuthService(userRepo, cfg.JWT.Secret, cfg.JWT.AccessTTL, cfg.JWT.RefreshTTL)
	userService := services.NewUserService(userRepo, analyzerService)
	routeService := services.NewRouteService(routeRepo)
	log.Println("✅ Services initialized successfully")

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	routeHandler := handlers.NewRouteHandler(routeService)
	analysisHandler := handlers.NewAnalysisHandler(analyzerService)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Route Compass API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
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
		AllowMethods: "GET,POST,PATCH,DELETE,OPTIONS",
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

	// Public endpoints
	api.Post("/auth/signup", authHandler.HandleSignup)
	api.Post("/auth/login", authHandler.HandleLogin)
	api.Get("/routes", routeHandler.HandleListRoutes)
	api.Get("/routes/:id", routeHandler.HandleGetRoute)

	// Authenticated endpoints
	authed := api.Group("", middleware.RequireAuth(authService))
	authed.Get("/users/me", userHandler.HandleGetMe)
	authed.Post("/users/me/onboarding", userHandler.HandleOnboarding)
	authed.Patch("/users/me", userHandler.HandleUpdateMe)
	authed.Post("/analysis", analysisHandler.HandleRequestAnalysis)
	authed.Get("/analysis/latest", analysisHandler.HandleGetLatest)
	authed.Get("/analysis", analysisHandler.HandleGetHistory)

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Route Compass API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /api/v1/auth/signup",
				"POST /api/v1/auth/login",
				"GET /api/v1/routes",
				"GET /api/v1/routes/:id",
				"GET /api/v1/users/me",
				"POST /api/v1/users/me/onboarding",
				"PATCH /api/v1/users/me",
				"POST /api/v1/analysis",
				"GET /api/v1/analysis/latest",
				"GET /api/v1/analysis",
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
