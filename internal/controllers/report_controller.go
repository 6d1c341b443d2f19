package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	logrus "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"rental_manager/internal/authz"
	"rental_manager/internal/cache"
	"rental_manager/internal/config"
	"rental_manager/internal/middleware"
	"rental_manager/internal/models"
)

// Report payloads change slowly relative to how often dashboards poll them.
const reportCacheTTL = 5 * time.Minute

// RentCollectionReport totals completed and pending payment amounts, scoped
// to the owner's properties for owner callers.
func RentCollectionReport(c *gin.Context) {
	userID := middleware.UserID(c)
	role := middleware.Role(c)

	key := fmt.Sprintf("report:rent:%s:%d", role, userID)
	var cached gin.H
	if found, err := cache.GetCached(c.Request.Context(), key, &cached); err == nil && found {
		c.JSON(http.StatusOK, cached)
		return
	}

	paymentsScope := func() *gorm.DB {
		q := config.DB.Model(&models.Payment{})
		if role == authz.RoleOwner {
			q = q.Joins("JOIN leases ON leases.id = payments.lease_id").
				Joins("JOIN properties ON properties.id = leases.property_id").
				Where("properties.owner_id = ?", userID)
		}
		return q
	}

	var totalCollected, totalPending float64
	if err := paymentsScope().Where("payments.status = ?", models.PaymentCompleted).
		Select("COALESCE(SUM(payments.amount), 0)").Scan(&totalCollected).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not compute report"})
		return
	}
	if err := paymentsScope().Where("payments.status = ?", models.PaymentPending).
		Select("COALESCE(SUM(payments.amount), 0)").Scan(&totalPending).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not compute report"})
		return
	}

	payload := gin.H{
		"total_collected": totalCollected,
		"total_pending":   totalPending,
	}
	storeReport(c, key, payload)
	c.JSON(http.StatusOK, payload)
}

// OccupancyReport counts occupied and available properties and their ratio.
func OccupancyReport(c *gin.Context) {
	userID := middleware.UserID(c)
	role := middleware.Role(c)

	key := fmt.Sprintf("report:occupancy:%s:%d", role, userID)
	var cached gin.H
	if found, err := cache.GetCached(c.Request.Context(), key, &cached); err == nil && found {
		c.JSON(http.StatusOK, cached)
		return
	}

	propertiesScope := func() *gorm.DB {
		q := config.DB.Model(&models.Property{})
		if role == authz.RoleOwner {
			q = q.Where("owner_id = ?", userID)
		}
		return q
	}

	var total, occupied, available int64
	if err := propertiesScope().Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not compute report"})
		return
	}
	propertiesScope().Where("availability_status = ?", models.PropertyOccupied).Count(&occupied)
	propertiesScope().Where("availability_status = ?", models.PropertyAvailable).Count(&available)

	var occupancyRate float64
	if total > 0 {
		occupancyRate = float64(occupied) / float64(total) * 100
	}

	payload := gin.H{
		"total_properties": total,
		"occupied":         occupied,
		"available":        available,
		"occupancy_rate":   occupancyRate,
	}
	storeReport(c, key, payload)
	c.JSON(http.StatusOK, payload)
}

// MaintenanceReport counts maintenance requests per lifecycle state.
func MaintenanceReport(c *gin.Context) {
	userID := middleware.UserID(c)
	role := middleware.Role(c)

	key := fmt.Sprintf("report:maintenance:%s:%d", role, userID)
	var cached gin.H
	if found, err := cache.GetCached(c.Request.Context(), key, &cached); err == nil && found {
		c.JSON(http.StatusOK, cached)
		return
	}

	counts := gin.H{}
	for _, status := range []string{models.MaintenancePending, models.MaintenanceInProgress, models.MaintenanceCompleted} {
		query := config.DB.Model(&models.MaintenanceRequest{}).
			Where("maintenance_requests.status = ?", status)
		if role == authz.RoleOwner {
			query = query.Joins("JOIN properties ON properties.id = maintenance_requests.property_id").
				Where("properties.owner_id = ?", userID)
		}
		var n int64
		if err := query.Count(&n).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not compute report"})
			return
		}
		counts[status] = n
	}

	storeReport(c, key, counts)
	c.JSON(http.StatusOK, counts)
}

func storeReport(c *gin.Context, key string, payload gin.H) {
	if err := cache.SetCached(c.Request.Context(), key, payload, reportCacheTTL); err != nil {
		logrus.WithError(err).Warn("report cache write failed")
	}
}
