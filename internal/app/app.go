package app

import (
	"database/sql"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "leasingcrm/docs"
	"leasingcrm/internal/config"
	"leasingcrm/internal/handlers"
	"leasingcrm/internal/pdf"
	"leasingcrm/internal/repositories"
	"leasingcrm/internal/routes"
	"leasingcrm/internal/services"
)

func Run() {
	_ = godotenv.Load()
	cfg := config.LoadConfig()
	catalog := cfg.EffectiveCatalog()

	// === DB ===
	db, err := sql.Open("postgres", cfg.Database.DSN)
	if err != nil {
		log.Fatal("failed to open database: ", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("failed to close database: %v", err)
		}
	}()
	if err := db.Ping(); err != nil {
		log.Fatal("failed to reach database: ", err)
	}
	if err := repositories.EnsureSchema(db); err != nil {
		log.Fatal("failed to ensure schema: ", err)
	}

	// === Repos ===
	leadRepo := repositories.NewLeadRepository(db)
	reminderRepo := repositories.NewReminderRepository(db)
	backupRepo := repositories.NewBackupRepository(db)

	// === Services ===
	notifier := services.NewNotifier(cfg.Email, cfg.Telegram)
	authService := services.NewAuthService(cfg.Auth)
	leadService := services.NewLeadService(leadRepo, catalog)
	reminderService := services.NewReminderService(reminderRepo, leadRepo, notifier)
	dashboardService := services.NewDashboardService(leadRepo)
	backupService := services.NewBackupService(leadRepo, reminderRepo, backupRepo, catalog)

	sheetGen := pdf.NewSheetGenerator(cfg.Files.FontPath)

	// === Handlers ===
	authHandler := handlers.NewAuthHandler(authService)
	configHandler := handlers.NewConfigHandler(catalog)
	leadHandler := handlers.NewLeadHandler(leadService, sheetGen)
	clientHandler := handlers.NewClientHandler(leadService)
	reminderHandler := handlers.NewReminderHandler(reminderService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	backupHandler := handlers.NewBackupHandler(backupService)

	// === Gin ===
	router := gin.Default()
	router.Use(corsMiddleware())

	router.GET("/healthz", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	routes.SetupRoutes(
		router,
		cfg.Auth,
		authHandler,
		configHandler,
		leadHandler,
		clientHandler,
		reminderHandler,
		dashboardHandler,
		backupHandler,
	)

	// === Run ===
	listenAddr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("server listening on %s", listenAddr)
	if err := router.Run(listenAddr); err != nil {
		log.Fatal("failed to start server: ", err)
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
