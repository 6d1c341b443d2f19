package routes

import (
	"rental_manager/internal/authz"
	"rental_manager/internal/controllers"
	"rental_manager/internal/middleware"

	"github.com/gin-gonic/gin"
)

func PaymentRoutes(r *gin.Engine) {
	payments := r.Group("/payments")
	{
		payments.GET("", middleware.RequireAuth(), controllers.ListPayments)
		payments.POST("", middleware.RequirePermission(authz.ActionRecordPayment), controllers.CreatePayment)
	}
}
