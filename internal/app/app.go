package app

import (
	"database/sql"
	"fmt"
	"log"

	"brainhealth/internal/config"
	"brainhealth/internal/handlers"
	"brainhealth/internal/pdf"
	"brainhealth/internal/repositories"
	"brainhealth/internal/routes"
	"brainhealth/internal/services"

	"github.com/gin-gonic/gin"
	_ "github.com/lib/pq"

	swaggerFiles "github.com/swaggo/files"
	"github.com/swaggo/gin-swagger"

	_ "brainhealth/docs"
)

func Run() {
	cfg := config.LoadConfig()

	// === DB ===
	db, err := sql.Open("postgres", cfg.Database.DSN)
	if err != nil {
		log.Fatal("Ошибка подключения к БД: ", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Ошибка закрытия БД: %v", err)
		}
	}()

	// === Repos ===
	userRepo := repositories.NewUserRepository(db)
	patientRepo := repositories.NewPatientRepository(db)
	caregiverRepo := repositories.NewCaregiverRepository(db)
	lifestyleRepo := repositories.NewLifestyleRepository(db)
	resultRepo := repositories.NewCognitiveResultRepository(db)
	assessmentRepo := repositories.NewAssessmentRepository(db)
	recommendationRepo := repositories.NewRecommendationRepository(db)
	pendingRepo := repositories.NewPendingVerificationRepository(db)
	accessLogRepo := repositories.NewAccessLogRepository(db)

	// === Services ===
	authService := services.NewAuthService()
	emailService := services.NewEmailService(
		cfg.Email.SMTPHost,
		cfg.Email.SMTPPort,
		cfg.Email.SMTPUser,
		cfg.Email.SMTPPassword,
		cfg.Email.FromEmail,
	)

	// Telegram-алерты опекунам — опциональны
	var tgService *services.TelegramService
	if cfg.Telegram.Enabled && cfg.Telegram.BotToken != "" {
		tgService, err = services.NewTelegramService(cfg.Telegram.BotToken)
		if err != nil {
			log.Printf("Telegram отключён: %v", err)
			tgService = nil
		}
	}

	userService := services.NewUserService(userRepo, patientRepo, caregiverRepo, emailService, authService)
	assessmentService := services.NewAssessmentService(
		db,
		patientRepo,
		resultRepo,
		lifestyleRepo,
		assessmentRepo,
		recommendationRepo,
		caregiverRepo,
		userRepo,
		tgService,
	)
	cognitiveService := services.NewCognitiveService(resultRepo, assessmentService)
	lifestyleService := services.NewLifestyleService(lifestyleRepo, patientRepo, assessmentService)
	linkingService := services.NewLinkingService(db, patientRepo, caregiverRepo, pendingRepo, emailService)

	// PDF-отчёты для опекунов
	reportGen := pdf.NewReportGenerator(cfg.Files.RootDir)
	dashboardService := services.NewDashboardService(
		patientRepo,
		userRepo,
		caregiverRepo,
		assessmentRepo,
		recommendationRepo,
		lifestyleRepo,
		resultRepo,
		accessLogRepo,
		reportGen,
	)

	// === Handlers ===
	authHandler := handlers.NewAuthHandler(userService, authService)
	userHandler := handlers.NewUserHandler(userService)
	cognitiveHandler := handlers.NewCognitiveHandler(cognitiveService, patientRepo)
	lifestyleHandler := handlers.NewLifestyleHandler(lifestyleService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService, patientRepo, recommendationRepo)
	caregiverHandler := handlers.NewCaregiverHandler(linkingService, dashboardService, caregiverRepo, userRepo)

	// === Gin ===
	router := gin.Default()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())

	// Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Роуты (JWT/роли — внутри SetupRoutes)
	routes.SetupRoutes(
		router,
		authHandler,
		userHandler,
		cognitiveHandler,
		lifestyleHandler,
		dashboardHandler,
		caregiverHandler,
	)

	// === Run ===
	listenAddr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("Сервер запущен на %s", listenAddr)
	if err := router.Run(listenAddr); err != nil {
		log.Fatal("Ошибка запуска сервера: ", err)
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
