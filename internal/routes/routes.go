package routes

import (
	"github.com/gin-gonic/gin"

	"leasingcrm/internal/config"
	"leasingcrm/internal/handlers"
	"leasingcrm/internal/middleware"
)

func SetupRoutes(
	r *gin.Engine,
	authCfg config.AuthConfig,
	authHandler *handlers.AuthHandler,
	configHandler *handlers.ConfigHandler,
	leadHandler *handlers.LeadHandler,
	clientHandler *handlers.ClientHandler,
	reminderHandler *handlers.ReminderHandler,
	dashboardHandler *handlers.DashboardHandler,
	backupHandler *handlers.BackupHandler,
) *gin.Engine {

	api := r.Group("/api")
	api.Use(middleware.AuthMiddleware(authCfg))

	// ---- public
	api.POST("/auth/login", authHandler.Login)
	api.GET("", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "CRM LLD Automobile API", "version": "1.0.0"})
	})

	api.GET("/config", configHandler.Get)

	// LEADS
	leads := api.Group("/leads")
	{
		leads.POST("", leadHandler.Create)
		leads.GET("", leadHandler.List)
		leads.GET("/active", leadHandler.ListActive)
		leads.GET("/:id", leadHandler.GetByID)
		leads.PUT("/:id", leadHandler.Update)
		leads.DELETE("/:id", leadHandler.Delete)
		leads.GET("/:id/pdf", leadHandler.DownloadPDF)
	}

	// CLIENTS (delivered leads, read-only)
	api.GET("/clients", clientHandler.List)

	// DASHBOARD
	api.GET("/dashboard/stats", dashboardHandler.Stats)

	// REMINDERS
	reminders := api.Group("/reminders")
	{
		reminders.POST("", reminderHandler.Create)
		reminders.GET("", reminderHandler.List)
		reminders.PUT("/:id", reminderHandler.Update)
		reminders.DELETE("/:id", reminderHandler.Delete)
	}
	api.GET("/calendar/reminders", reminderHandler.Calendar)

	// BACKUP
	backup := api.Group("/backup")
	{
		backup.GET("/status", backupHandler.Status)
		backup.GET("/export", backupHandler.Export)
		backup.POST("/import", backupHandler.Import)
	}

	return r
}
