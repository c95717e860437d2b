package main

import (
	"fmt"
	"log"

	"lites-backend/internal/config"
	"lites-backend/internal/handler"
	"lites-backend/internal/metrics"
	"lites-backend/internal/middleware"
	"lites-backend/internal/repository"
	"lites-backend/internal/services"
	"lites-backend/pkg/database"
	"lites-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	l := logger.New(cfg.Server.Environment)
	logger.SetGlobalLogger(l)

	db, err := database.Open(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to apply migrations: %v", err)
	}

	metrics.Register()

	if cfg.Server.Environment == logger.ProductionMode {
		gin.SetMode(gin.ReleaseMode)
	}

	users := repository.NewUserRepository(db)
	chats := repository.NewChatRepository(db)
	messages := repository.NewMessageRepository(db)
	contacts := repository.NewContactRepository(db)
	payments := repository.NewPaymentRepository(db)

	authService := services.NewAuthService(users)
	chatService := services.NewChatService(db, chats, messages, contacts)
	paymentService := services.NewPaymentService(db, payments, users, l)

	authHandler := handler.NewAuthHandler(authService)
	chatHandler := handler.NewChatHandler(chatService)
	paymentHandler := handler.NewPaymentHandler(paymentService)

	r := gin.New()
	r.Use(
		gin.Recovery(),
		middleware.RequestIDMiddleware(),
		middleware.LoggingMiddleware(l),
		middleware.CORSMiddleware(),
		metrics.Middleware(),
		middleware.ErrorHandler(l),
	)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.Any("/auth", authHandler.Handle)
	r.Any("/chats", chatHandler.Handle)
	r.Any("/payments", paymentHandler.Handle)

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	l.Infof("starting server on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
