package app

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	"fingertrack/internal/config"
	"fingertrack/internal/handlers"
	"fingertrack/internal/middleware"
	"fingertrack/internal/pdf"
	"fingertrack/internal/realtime"
	"fingertrack/internal/repositories"
	"fingertrack/internal/routes"
	"fingertrack/internal/services"

	"github.com/gin-gonic/gin"
	_ "github.com/lib/pq"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "fingertrack/docs"
)

func Run() {
	cfg := config.LoadConfig()
	middleware.JWTKey = []byte(cfg.Auth.JWTSecret)

	// === DB ===
	db, err := sql.Open("postgres", cfg.Database.DSN)
	if err != nil {
		log.Fatal("db connect failed: ", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("db close failed: %v", err)
		}
	}()

	// === Repos ===
	codeRepo := repositories.NewVerificationCodeRepository(db)
	pendingRepo := repositories.NewPendingRegistrationRepository(db)
	employeRepo := repositories.NewEmployeRepository(db)
	entrepriseRepo := repositories.NewEntrepriseRepository(db)
	groupeRepo := repositories.NewGroupeRepository(db)
	posteRepo := repositories.NewPosteRepository(db)
	empreinteRepo := repositories.NewEmpreinteRepository(db)
	presenceRepo := repositories.NewPresenceRepository(db)
	congeRepo := repositories.NewCongeRepository(db)
	sessionRepo := repositories.NewSessionRepository(db)

	// === Realtime ===
	// Two audiences get their own hub; one publish reaches both.
	webHub := realtime.NewNotificationHub("web")
	desktopHub := realtime.NewNotificationHub("desktop")
	broadcaster := realtime.NewBroadcaster(webHub, desktopHub)

	// === Services ===
	emailService := services.NewEmailService(
		cfg.Email.SMTPHost,
		cfg.Email.SMTPPort,
		cfg.Email.SMTPUser,
		cfg.Email.SMTPPassword,
		cfg.Email.FromEmail,
	)
	authService := services.NewAuthService(employeRepo, sessionRepo, cfg.Auth.JWTSecret, cfg.TokenTTL())
	registrationService := services.NewRegistrationService(
		codeRepo,
		pendingRepo,
		employeRepo,
		groupeRepo,
		entrepriseRepo,
		posteRepo,
		emailService,
		authService,
		broadcaster,
		cfg.CodeTTL(),
	)
	employeService := services.NewEmployeService(
		employeRepo, empreinteRepo, registrationService, authService, emailService, broadcaster,
	)
	entrepriseService := services.NewEntrepriseService(entrepriseRepo)
	groupeService := services.NewGroupeService(groupeRepo)
	posteService := services.NewPosteService(posteRepo)
	empreinteService := services.NewEmpreinteService(empreinteRepo, employeRepo)
	presenceService := services.NewPresenceService(presenceRepo, employeRepo)
	congeService := services.NewCongeService(congeRepo, employeRepo)

	reportGen := pdf.NewReportGenerator(cfg.Files.RootDir, cfg.Files.FontPath)

	// === Maintenance: sweep expired state at startup, then periodically ===
	sweep := func() {
		if err := registrationService.SweepExpired(); err != nil {
			log.Printf("[sweep] registrations: %v", err)
		}
		if n, err := authService.SweepSessions(); err != nil {
			log.Printf("[sweep] sessions: %v", err)
		} else if n > 0 {
			log.Printf("[sweep] sessions removed=%d", n)
		}
	}
	sweep()
	go func() {
		ticker := time.NewTicker(cfg.SweepEvery())
		defer ticker.Stop()
		for range ticker.C {
			sweep()
		}
	}()

	// === Handlers ===
	authHandler := handlers.NewAuthHandler(authService, employeService)
	registrationHandler := handlers.NewRegistrationHandler(registrationService)
	employeHandler := handlers.NewEmployeHandler(employeService)
	entrepriseHandler := handlers.NewEntrepriseHandler(entrepriseService)
	groupeHandler := handlers.NewGroupeHandler(groupeService)
	posteHandler := handlers.NewPosteHandler(posteService)
	empreinteHandler := handlers.NewEmpreinteHandler(empreinteService)
	presenceHandler := handlers.NewPresenceHandler(presenceService, employeService, entrepriseService, reportGen)
	congeHandler := handlers.NewCongeHandler(congeService)
	notificationHandler := handlers.NewNotificationHandler(webHub, desktopHub, broadcaster)

	// === Gin ===
	router := gin.Default()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())

	// Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	routes.SetupRoutes(
		router,
		authHandler,
		registrationHandler,
		employeHandler,
		entrepriseHandler,
		groupeHandler,
		posteHandler,
		empreinteHandler,
		presenceHandler,
		congeHandler,
		notificationHandler,
	)

	// === Run ===
	listenAddr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("Server running on %s", listenAddr)
	if err := router.Run(listenAddr); err != nil {
		log.Fatal("server start failed: ", err)
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
