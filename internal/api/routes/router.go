package routes

import (
	"github.com/consite-dev/consite-go/internal/api/handlers"
	"github.com/consite-dev/consite-go/internal/api/middleware"
	"github.com/consite-dev/consite-go/internal/domain/user"
	"github.com/gin-gonic/gin"
)

const (
	admin       = string(user.RoleAdmin)
	engineer    = string(user.RoleEngineer)
	contractor  = string(user.RoleContractor)
	siteManager = string(user.RoleSiteManager)
)

func RegisterRoutes(r *gin.Engine, h *handlers.Handlers, authMiddleware *middleware.Auth) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	authGroup := r.Group("/api/auth")
	{
		authGroup.POST("/signup", h.Auth.Signup)
		authGroup.POST("/login", h.Auth.Login)
		authGroup.POST("/google", h.Auth.GoogleLogin)
		authGroup.POST("/register", authMiddleware.Authenticated(), authMiddleware.Roles(admin), h.Auth.Register)
		authGroup.GET("/me", authMiddleware.Authenticated(), h.Auth.Me)
	}

	api := r.Group("/api")
	api.Use(authMiddleware.Authenticated())
	{
		tasks := api.Group("/tasks")
		{
			tasks.GET("", h.Task.GetTasks)
			tasks.POST("", authMiddleware.Roles(contractor, siteManager, engineer, admin), h.Task.CreateTask)
			tasks.PUT("/:id", h.Task.UpdateTask)
		}

		notifications := api.Group("/notifications")
		{
			notifications.GET("", h.Notification.GetNotifications)
			notifications.PATCH("/mark-all-read", h.Notification.MarkAllRead)
			notifications.PATCH("/:id/read", h.Notification.MarkRead)
			notifications.DELETE("/:id", h.Notification.DeleteNotification)
		}

		invoices := api.Group("/invoices")
		{
			invoices.GET("", h.Invoice.GetInvoices)
			invoices.POST("", authMiddleware.Roles(contractor, admin), h.Invoice.CreateInvoice)
			invoices.PUT("/:id", authMiddleware.Roles(siteManager, admin), h.Invoice.UpdateStatus)
		}

		blueprints := api.Group("/blueprints")
		{
			blueprints.GET("", h.Blueprint.GetBlueprints)
			blueprints.POST("", authMiddleware.Roles(engineer, siteManager, admin), h.Blueprint.Upload)
		}

		users := api.Group("/users")
		{
			users.GET("", h.User.GetUsers)
			users.GET("/analytics", h.User.GetWorkerAnalytics)
			users.POST("/add-worker", authMiddleware.Roles(admin, contractor, siteManager), h.User.AddWorker)
			users.GET("/:id", h.User.GetWorkerByID)
		}
	}
}
