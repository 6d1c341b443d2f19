package routes

import (
	ginlog "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.New()

	// Recovery plus structured request logging
	r.Use(gin.Recovery())
	r.Use(ginlog.SetLogger())

	AuthRoutes(r)
	AdminRoutes(r)
	PropertyRoutes(r)
	LeaseRoutes(r)
	PaymentRoutes(r)
	MaintenanceRoutes(r)
	NotificationRoutes(r)
	DashboardRoutes(r)
	ReportRoutes(r)
	ProfileRoutes(r)

	return r
}
