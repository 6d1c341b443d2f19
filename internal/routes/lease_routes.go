package routes

import (
	"rental_manager/internal/authz"
	"rental_manager/internal/controllers"
	"rental_manager/internal/middleware"

	"github.com/gin-gonic/gin"
)

func LeaseRoutes(r *gin.Engine) {
	leases := r.Group("/leases")
	leases.Use(middleware.RequireAuth())
	{
		leases.GET("", controllers.ListLeases)
		leases.GET("/:id", controllers.GetLease)
	}

	manage := r.Group("/leases")
	manage.Use(middleware.RequirePermission(authz.ActionCreateLease))
	{
		manage.POST("", controllers.CreateLease)
		manage.POST("/:id/end", controllers.EndLease)
	}
}
