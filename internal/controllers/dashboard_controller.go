package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rental_manager/internal/authz"
	"rental_manager/internal/config"
	"rental_manager/internal/middleware"
	"rental_manager/internal/models"
)

// Dashboard dispatches to the role-appropriate summary payload.
func Dashboard(c *gin.Context) {
	switch middleware.Role(c) {
	case authz.RoleAdmin:
		adminDashboard(c)
	case authz.RoleOwner:
		ownerDashboard(c)
	case authz.RoleTenant:
		tenantDashboard(c)
	case authz.RoleStaff:
		staffDashboard(c)
	default:
		c.JSON(http.StatusForbidden, gin.H{"error": "Invalid user role"})
	}
}

func adminDashboard(c *gin.Context) {
	var (
		totalUsers         int64
		pendingUsers       int64
		totalProperties    int64
		activeLeases       int64
		pendingMaintenance int64
		totalRevenue       float64
	)

	config.DB.Model(&models.User{}).Count(&totalUsers)
	config.DB.Model(&models.User{}).Where("is_active = ?", false).Count(&pendingUsers)
	config.DB.Model(&models.Property{}).Count(&totalProperties)
	config.DB.Model(&models.Lease{}).Where("status = ?", models.LeaseActive).Count(&activeLeases)
	config.DB.Model(&models.MaintenanceRequest{}).Where("status = ?", models.MaintenancePending).Count(&pendingMaintenance)
	config.DB.Model(&models.Payment{}).Where("status = ?", models.PaymentCompleted).
		Select("COALESCE(SUM(amount), 0)").Scan(&totalRevenue)

	recentPayments := []models.Payment{}
	config.DB.Order("created_at DESC").Limit(5).Find(&recentPayments)

	recentRequests := []models.MaintenanceRequest{}
	config.DB.Order("reported_date DESC").Limit(5).Find(&recentRequests)

	c.JSON(http.StatusOK, gin.H{
		"total_users":         totalUsers,
		"pending_users":       pendingUsers,
		"total_properties":    totalProperties,
		"active_leases":       activeLeases,
		"total_revenue":       totalRevenue,
		"pending_maintenance": pendingMaintenance,
		"recent_payments":     recentPayments,
		"recent_requests":     recentRequests,
	})
}

func ownerDashboard(c *gin.Context) {
	userID := middleware.UserID(c)

	properties := []models.Property{}
	config.DB.Where("owner_id = ?", userID).Find(&properties)

	var activeLeases int64
	config.DB.Model(&models.Lease{}).
		Joins("JOIN properties ON properties.id = leases.property_id").
		Where("properties.owner_id = ? AND leases.status = ?", userID, models.LeaseActive).
		Count(&activeLeases)

	var totalRevenue float64
	config.DB.Model(&models.Payment{}).
		Joins("JOIN leases ON leases.id = payments.lease_id").
		Joins("JOIN properties ON properties.id = leases.property_id").
		Where("properties.owner_id = ? AND payments.status = ?", userID, models.PaymentCompleted).
		Select("COALESCE(SUM(payments.amount), 0)").Scan(&totalRevenue)

	var pendingRequests int64
	config.DB.Model(&models.MaintenanceRequest{}).
		Joins("JOIN properties ON properties.id = maintenance_requests.property_id").
		Where("properties.owner_id = ? AND maintenance_requests.status = ?", userID, models.MaintenancePending).
		Count(&pendingRequests)

	c.JSON(http.StatusOK, gin.H{
		"properties":       properties,
		"active_leases":    activeLeases,
		"total_revenue":    totalRevenue,
		"pending_requests": pendingRequests,
	})
}

func tenantDashboard(c *gin.Context) {
	userID := middleware.UserID(c)

	var lease models.Lease
	err := config.DB.Preload("Property").
		Where("tenant_id = ? AND status = ?", userID, models.LeaseActive).
		First(&lease).Error
	if err != nil {
		// No active lease: an empty dashboard, not an error.
		c.JSON(http.StatusOK, gin.H{
			"lease":                nil,
			"property":             nil,
			"pending_payments":     0,
			"recent_payments":      []models.Payment{},
			"maintenance_requests": []models.MaintenanceRequest{},
		})
		return
	}

	var pendingPayments int64
	config.DB.Model(&models.Payment{}).
		Where("lease_id = ? AND status = ?", lease.ID, models.PaymentPending).
		Count(&pendingPayments)

	recentPayments := []models.Payment{}
	config.DB.Where("lease_id = ?", lease.ID).Order("created_at DESC").Limit(5).Find(&recentPayments)

	myRequests := []models.MaintenanceRequest{}
	config.DB.Where("tenant_id = ?", userID).Order("reported_date DESC").Limit(5).Find(&myRequests)

	c.JSON(http.StatusOK, gin.H{
		"lease":                lease,
		"property":             lease.Property,
		"pending_payments":     pendingPayments,
		"recent_payments":      recentPayments,
		"maintenance_requests": myRequests,
	})
}

func staffDashboard(c *gin.Context) {
	userID := middleware.UserID(c)

	assigned := []models.MaintenanceRequest{}
	config.DB.Where("staff_id = ?", userID).Find(&assigned)

	counts := map[string]int{
		models.MaintenancePending:    0,
		models.MaintenanceInProgress: 0,
		models.MaintenanceCompleted:  0,
	}
	for _, req := range assigned {
		counts[req.Status]++
	}

	c.JSON(http.StatusOK, gin.H{
		"assigned_requests": assigned,
		"pending_count":     counts[models.MaintenancePending],
		"in_progress_count": counts[models.MaintenanceInProgress],
		"completed_count":   counts[models.MaintenanceCompleted],
	})
}
