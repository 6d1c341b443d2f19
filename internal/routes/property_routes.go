package routes

import (
	"rental_manager/internal/authz"
	"rental_manager/internal/controllers"
	"rental_manager/internal/middleware"

	"github.com/gin-gonic/gin"
)

func PropertyRoutes(r *gin.Engine) {
	properties := r.Group("/properties")
	properties.Use(middleware.RequireAuth())
	{
		properties.GET("", controllers.ListProperties)
		properties.GET("/:id", controllers.GetProperty)
	}

	manage := r.Group("/properties")
	manage.Use(middleware.RequirePermission(authz.ActionCreateProperty))
	{
		manage.POST("", controllers.CreateProperty)
		manage.PUT("/:id", controllers.UpdateProperty)
		manage.DELETE("/:id", controllers.DeleteProperty)
		manage.POST("/:id/image", controllers.UploadPropertyImage)
	}
}
