package routes

import (
	"rental_manager/internal/controllers"
	"rental_manager/internal/middleware"

	"github.com/gin-gonic/gin"
)

func NotificationRoutes(r *gin.Engine) {
	notifications := r.Group("/notifications")
	notifications.Use(middleware.RequireAuth())
	{
		notifications.GET("", controllers.ListNotifications)
		notifications.POST("/:id/read", controllers.MarkNotificationRead)
	}
}
