package routes

import (
	"rental_manager/internal/authz"
	"rental_manager/internal/controllers"
	"rental_manager/internal/middleware"

	"github.com/gin-gonic/gin"
)

func ProfileRoutes(r *gin.Engine) {
	profile := r.Group("/profile")
	profile.Use(middleware.RequireAuth())
	{
		profile.GET("", controllers.GetProfile)
		profile.PUT("", controllers.UpdateProfile)
	}

	tenant := r.Group("/profile/tenant")
	tenant.Use(middleware.RequirePermission(authz.ActionTenantProfile))
	{
		tenant.GET("", controllers.GetTenantProfile)
		tenant.PUT("", controllers.UpsertTenantProfile)
	}
}
