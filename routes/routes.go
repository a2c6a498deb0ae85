package routes

import (
	"appeals-api/controllers"
	"appeals-api/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(router *gin.Engine) {
	// API v1 group
	v1 := router.Group("/api/v1")
	{
		// Public routes
		public := v1.Group("")
		{
			// Authentication
			public.POST("/login", controllers.Login)

			// Status picker data needs no auth
			public.GET("/appeals/statuses/all", controllers.GetAppealStatuses)

			// Health check
			public.GET("/health", func(c *gin.Context) {
				c.JSON(200, gin.H{
					"status":  "ok",
					"message": "Appeals API is running",
				})
			})
		}

		// Protected routes (require authentication)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			// User profile
			protected.GET("/profile", controllers.GetProfile)
			protected.PUT("/change-password", controllers.ChangePassword)

			// Appeals
			appeals := protected.Group("/appeals")
			{
				// Any authenticated user sees their own appeals; admins see all
				appeals.POST("", controllers.CreateAppeal)
				appeals.GET("", controllers.GetAppeals)
				appeals.GET("/:id", controllers.GetAppeal)
				appeals.GET("/:id/history", controllers.GetAppealHistory)

				// Only admins mutate or delete
				appeals.PATCH("/:id", middleware.RequireAdmin(), controllers.UpdateAppeal)
				appeals.DELETE("/:id", middleware.RequireAdmin(), controllers.DeleteAppeal)
			}

			// Files
			files := protected.Group("/files")
			{
				files.POST("/upload", controllers.UploadFile)
				files.GET("/:file_id/download", controllers.DownloadFile)
			}

			// In-app notifications
			notifications := protected.Group("/notifications")
			{
				notifications.GET("", controllers.GetNotifications)
				notifications.PATCH("/:id/read", controllers.MarkNotificationRead)
				notifications.PATCH("/read-all", controllers.MarkAllNotificationsRead)
			}
		}
	}
}
