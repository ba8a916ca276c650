package routes

import (
	"github.com/gin-gonic/gin"

	"fingertrack/internal/handlers"
	"fingertrack/internal/middleware"
	"fingertrack/internal/models"
)

func SetupRoutes(
	r *gin.Engine,
	authHandler *handlers.AuthHandler,
	registrationHandler *handlers.RegistrationHandler,
	employeHandler *handlers.EmployeHandler,
	entrepriseHandler *handlers.EntrepriseHandler,
	groupeHandler *handlers.GroupeHandler,
	posteHandler *handlers.PosteHandler,
	empreinteHandler *handlers.EmpreinteHandler,
	presenceHandler *handlers.PresenceHandler,
	congeHandler *handlers.CongeHandler,
	notificationHandler *handlers.NotificationHandler,
) *gin.Engine {

	staffOnly := middleware.RequireRoles(models.RoleManager, models.RoleAdmin)

	// ---- public
	r.POST("/login", authHandler.Login)

	register := r.Group("/register")
	{
		register.POST("/personal-info", registrationHandler.SubmitPersonalInfo)
		register.POST("/verify-email", registrationHandler.VerifyUserEmail)
		register.POST("/company-info", registrationHandler.SubmitCompanyInfo)
		register.POST("/verify-company", registrationHandler.VerifyCompanyEmail)
		register.POST("/complete", registrationHandler.CompleteRegistration)
		register.GET("/state", registrationHandler.PendingState)
	}

	// WebSocket auth happens in the handler: the token rides the query
	// string, not the Authorization header.
	r.GET("/ws", notificationHandler.Subscribe)
	r.POST("/notify", notificationHandler.Notify)

	// ---- protected
	r.Use(middleware.AuthMiddleware())

	r.GET("/notif", staffOnly, employeHandler.PendingNotifications)
	r.DELETE("/sessions/:id", authHandler.RevokeSession)

	employes := r.Group("/employes")
	{
		employes.POST("/", staffOnly, employeHandler.Create)
		employes.GET("/", employeHandler.List)
		employes.GET("/:id", employeHandler.GetByID)
		employes.PUT("/:id", staffOnly, employeHandler.Update)
		employes.DELETE("/:id", staffOnly, employeHandler.Delete)
		employes.POST("/validate-fingerprint", staffOnly, employeHandler.ValidateFingerprint)
		employes.GET("/:id/conges", congeHandler.ListByEmploye)
	}

	entreprises := r.Group("/entreprises")
	{
		entreprises.POST("/", middleware.RequireRoles(models.RoleAdmin), entrepriseHandler.Create)
		entreprises.GET("/", entrepriseHandler.List)
		entreprises.GET("/:id", entrepriseHandler.GetByID)
		entreprises.PUT("/:id", middleware.RequireRoles(models.RoleAdmin), entrepriseHandler.Update)
		entreprises.DELETE("/:id", middleware.RequireRoles(models.RoleAdmin), entrepriseHandler.Delete)
	}

	groupes := r.Group("/groupes")
	{
		groupes.POST("/", staffOnly, groupeHandler.Create)
		groupes.GET("/", groupeHandler.List)
		groupes.GET("/:id", groupeHandler.GetByID)
		groupes.PUT("/:id", staffOnly, groupeHandler.Update)
		groupes.DELETE("/:id", staffOnly, groupeHandler.Delete)

		groupes.POST("/:id/configurations", staffOnly, groupeHandler.AddConfiguration)
		groupes.GET("/:id/configurations", groupeHandler.ListConfigurations)
		groupes.PUT("/:id/configurations/:configId", staffOnly, groupeHandler.UpdateConfiguration)
		groupes.DELETE("/:id/configurations/:configId", staffOnly, groupeHandler.DeleteConfiguration)
	}

	postes := r.Group("/postes")
	{
		postes.POST("/", staffOnly, posteHandler.Create)
		postes.GET("/", posteHandler.List)
		postes.GET("/:id", posteHandler.GetByID)
		postes.PUT("/:id", staffOnly, posteHandler.Update)
		postes.DELETE("/:id", staffOnly, posteHandler.Delete)
	}

	empreintes := r.Group("/empreintes")
	{
		empreintes.POST("/", staffOnly, empreinteHandler.Create)
		empreintes.GET("/employe/:employeId", empreinteHandler.ListByEmploye)
		empreintes.DELETE("/:id", staffOnly, empreinteHandler.Delete)
		// Same operation as /employes/validate-fingerprint; desktop agents
		// historically call this path.
		empreintes.POST("/validate-fingerprint", staffOnly, employeHandler.ValidateFingerprint)
	}

	presences := r.Group("/presences")
	{
		presences.POST("/", presenceHandler.Record)
		presences.GET("/", presenceHandler.ListByEntreprise)
		presences.GET("/employe/:employeId", presenceHandler.ListByEmploye)
		presences.DELETE("/:id", staffOnly, presenceHandler.Delete)
		presences.GET("/report/pdf", staffOnly, presenceHandler.ExportPDF)
	}

	conges := r.Group("/conges")
	{
		conges.POST("/", congeHandler.Create)
		conges.GET("/", congeHandler.ListByEntreprise)
		conges.GET("/:id", congeHandler.GetByID)
		conges.PUT("/:id", congeHandler.Update)
		conges.POST("/:id/approve", staffOnly, congeHandler.Approve)
		conges.POST("/:id/reject", staffOnly, congeHandler.Reject)
		conges.DELETE("/:id", staffOnly, congeHandler.Delete)
	}

	return r
}
