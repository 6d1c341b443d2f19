package routes

import (
	"rental_manager/internal/authz"
	"rental_manager/internal/controllers"
	"rental_manager/internal/middleware"

	"github.com/gin-gonic/gin"
)

func ReportRoutes(r *gin.Engine) {
	reports := r.Group("/reports")
	reports.Use(middleware.RequirePermission(authz.ActionViewReports))
	{
		reports.GET("/rent-collection", controllers.RentCollectionReport)
		reports.GET("/occupancy", controllers.OccupancyReport)
		reports.GET("/maintenance", controllers.MaintenanceReport)
	}
}
