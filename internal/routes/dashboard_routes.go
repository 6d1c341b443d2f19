package routes

import (
	"rental_manager/internal/controllers"
	"rental_manager/internal/middleware"

	"github.com/gin-gonic/gin"
)

func DashboardRoutes(r *gin.Engine) {
	dashboard := r.Group("/dashboard")
	dashboard.Use(middleware.RequireAuth())
	{
		dashboard.GET("", controllers.Dashboard)
	}
}
