package routes

import (
	"rental_manager/internal/authz"
	"rental_manager/internal/controllers"
	"rental_manager/internal/middleware"

	"github.com/gin-gonic/gin"
)

func MaintenanceRoutes(r *gin.Engine) {
	maintenance := r.Group("/maintenance")
	{
		maintenance.GET("", middleware.RequireAuth(), controllers.ListMaintenance)
		maintenance.POST("", middleware.RequirePermission(authz.ActionFileMaintenance), controllers.CreateMaintenance)
		maintenance.PUT("/:id", middleware.RequirePermission(authz.ActionUpdateMaintenance), controllers.UpdateMaintenance)
	}
}
