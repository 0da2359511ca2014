package app

import (
	"database/sql"
	"fmt"
	"log"

	"novaapp/internal/config"
	"novaapp/internal/handlers"
	"novaapp/internal/repositories"
	"novaapp/internal/routes"
	"novaapp/internal/services"
	"novaapp/internal/utils"

	"github.com/gin-gonic/gin"
	_ "github.com/lib/pq"
)

func Run() {
	cfg := config.LoadConfig()

	// === DB ===
	db, err := sql.Open("postgres", cfg.Database.DSN)
	if err != nil {
		log.Fatal("Failed to connect to DB: ", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Failed to close DB: %v", err)
		}
	}()

	// === Repos ===
	userRepo := repositories.NewUserRepository(db)
	newsRepo := repositories.NewNewsRepository(db)
	mediaRepo := repositories.NewMediaRepository(db)

	// === External clients ===
	pushClient := utils.NewPushClient(
		cfg.Push.ProjectID,
		cfg.Push.AccessToken,
		cfg.Push.DryRun,
	)
	cdnClient := utils.NewCDNClient(
		cfg.CDN.CloudName,
		cfg.CDN.APIKey,
		cfg.CDN.APISecret,
		cfg.CDN.DryRun,
	)
	geminiClient := utils.NewGeminiClient(cfg.Gemini.APIKey, cfg.Gemini.Model)

	// === Services ===
	emailService := services.NewEmailService(
		cfg.Email.SMTPHost,
		cfg.Email.SMTPPort,
		cfg.Email.SMTPUser,
		cfg.Email.SMTPPassword,
		cfg.Email.FromEmail,
	)
	otpService := services.NewOtpService(userRepo, emailService)
	notificationService := services.NewNotificationService(userRepo, pushClient)
	newsService := services.NewNewsService(newsRepo, cdnClient)
	mediaService := services.NewMediaService(mediaRepo, cdnClient)
	assistantService := services.NewAssistantService(geminiClient)

	// === Handlers ===
	otpHandler := handlers.NewOtpHandler(otpService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	newsHandler := handlers.NewNewsHandler(newsService)
	mediaHandler := handlers.NewMediaHandler(mediaService)
	assistantHandler := handlers.NewAssistantHandler(assistantService)

	// === Gin ===
	router := gin.Default()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())

	routes.SetupRoutes(
		router,
		otpHandler,
		notificationHandler,
		newsHandler,
		mediaHandler,
		assistantHandler,
	)

	// === Run ===
	listenAddr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("Server running on %s", listenAddr)
	if err := router.Run(listenAddr); err != nil {
		log.Fatal("Failed to start server: ", err)
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
