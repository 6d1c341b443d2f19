package routes

import (
	"rental_manager/internal/authz"
	"rental_manager/internal/controllers"
	"rental_manager/internal/middleware"

	"github.com/gin-gonic/gin"
)

func AdminRoutes(r *gin.Engine) {
	admin := r.Group("/admin")
	admin.Use(middleware.RequirePermission(authz.ActionManageUsers))
	{
		admin.GET("/users", controllers.ListUsers)
		admin.POST("/users", controllers.AddUser)
		admin.PUT("/users/:id", controllers.UpdateUser)
		admin.DELETE("/users/:id", controllers.DeleteUser)
		admin.POST("/users/:id/approve", controllers.ApproveUser)
	}
}
