package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/streadway/amqp"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"pasar/internal/config"
	"pasar/internal/handlers"
	"pasar/internal/middleware"
	"pasar/internal/models"
	"pasar/internal/repositories"
	"pasar/internal/services"
	"pasar/pkg/rabbitmq"
)

func main() {
	// --- Configuration ---
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// --- Database ---
	// TranslateError maps driver duplicate-key errors to gorm.ErrDuplicatedKey,
	// which the user repository relies on for username uniqueness.
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Seller{}, &models.Order{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// --- Initialize RabbitMQ Client ---
	mqConfig := rabbitmq.Config{URL: cfg.RabbitMQURL}
	mqClient, err := rabbitmq.NewClient(mqConfig)
	if err != nil {
		log.Fatalf("Failed to initialize RabbitMQ client: %v", err)
	}
	defer mqClient.Close() // Ensure the connection is closed on exit

	// --- Initialize Repositories ---
	userRepo := repositories.NewGORMUserRepository(db)
	sellerRepo := repositories.NewGORMSellerRepository(db)
	orderRepo := repositories.NewGORMOrderRepository(db)

	// --- Initialize Services ---
	authService := services.NewAuthService(userRepo, cfg.JWTSecret)
	catalogService := services.NewCatalogService(sellerRepo, userRepo)
	orderService := services.NewOrderService(orderRepo, sellerRepo, mqClient)

	// --- Initialize Handlers ---
	authHandler := handlers.NewAuthHandler(authService)
	buyerHandler := handlers.NewBuyerHandler(catalogService, orderService)
	sellerHandler := handlers.NewSellerHandler(catalogService, orderService)

	// --- Initialize Fiber App ---
	app := fiber.New(fiber.Config{
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	})

	// --- Middleware ---
	app.Use(logger.New()) // Request logger

	// --- API Routes ---
	api := app.Group("/api")

	// Authentication routes (public)
	authHandler.RegisterRoutes(api)

	// Buyer and seller routes require a valid bearer token
	protected := api.Group("", middleware.AuthRequired(authService))
	buyerHandler.RegisterRoutes(protected)
	sellerHandler.RegisterRoutes(protected)

	// --- Health Check Endpoint ---
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// --- Start RabbitMQ Consumer in a Goroutine ---
	// Listens for order events published by the order service.
	go func() {
		log.Println("Starting RabbitMQ consumer for order events...")
		messageHandler := func(msg amqp.Delivery) error {
			log.Printf("Received order event (Tag: %d): %s", msg.DeliveryTag, string(msg.Body))
			return nil // Return nil to acknowledge
		}
		if consumerErr := mqClient.ConsumeOrderEvents(messageHandler); consumerErr != nil {
			log.Printf("Failed to start RabbitMQ consumer: %v", consumerErr)
		}
	}()

	// --- Start HTTP Server ---
	log.Printf("Starting server on port %s", cfg.AppPort)

	// Graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(cfg.AppPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}

	log.Println("Server gracefully stopped")
}
