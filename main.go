package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"

	"splgadgets/internal/config"
	"splgadgets/internal/database"
	"splgadgets/internal/handlers"
	"splgadgets/internal/middleware"
	"splgadgets/internal/repositories"
	"splgadgets/internal/services"
	"splgadgets/internal/upload"
	"splgadgets/pkg/rabbitmq"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	// Event publishing is optional: no RABBITMQ_URL, no publisher.
	var events services.EventPublisher
	if cfg.RabbitMQURL != "" {
		mqClient, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL})
		if err != nil {
			log.Fatalf("Failed to initialize RabbitMQ client: %v", err)
		}
		defer mqClient.Close()
		events = mqClient
	}

	uploads, err := upload.NewStore(cfg.UploadDir)
	if err != nil {
		log.Fatalf("Failed to initialize upload store: %v", err)
	}

	app := NewApp(cfg, db, events, uploads)

	// Graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("Starting server on port %s", cfg.AppPort)
		if err := app.Listen(cfg.AppPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}
	log.Println("Server gracefully stopped")
}

// NewApp wires repositories, services and handlers into a Fiber app.
// events may be nil to disable order event publication.
func NewApp(cfg *config.Config, db *gorm.DB, events services.EventPublisher, uploads *upload.Store) *fiber.App {
	// Repositories
	orderRepo := repositories.NewGORMOrderRepository(db)
	productRepo := repositories.NewGORMProductRepository(db)
	userRepo := repositories.NewGORMUserRepository(db)

	// Services
	orderService := services.NewOrderService(orderRepo, events)
	productService := services.NewProductService(productRepo, cfg.PublicBaseURL)
	authService := services.NewAuthService(userRepo, cfg.JWTSecret)

	// Handlers
	orderHandler := handlers.NewOrderHandler(orderService)
	productHandler := handlers.NewProductHandler(productService)
	adminHandler := handlers.NewAdminHandler(orderService, productService, uploads)
	authHandler := handlers.NewAuthHandler(authService)

	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler(cfg.Production()),
		BodyLimit:    upload.MaxFileSize + 1<<20, // request headroom above the file cap
	})

	// Middleware
	app.Use(logger.New())
	app.Use(helmet.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Content-Type,Authorization",
		AllowCredentials: true,
	}))
	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: time.Hour,
	}))

	// Uploaded product images
	app.Static("/uploads", cfg.UploadDir)

	// Public routes
	orderHandler.RegisterRoutes(app)
	productHandler.RegisterRoutes(app)

	// Admin routes, JWT-guarded when auth is enabled
	admin := app.Group("/admin")
	if cfg.AuthEnabled {
		authHandler.RegisterRoutes(app)
		admin.Use(middleware.AuthRequired(authService))
	}
	adminHandler.RegisterRoutes(admin)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	return app
}
