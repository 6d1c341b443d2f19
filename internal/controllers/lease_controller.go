package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	logrus "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"rental_manager/internal/authz"
	"rental_manager/internal/config"
	"rental_manager/internal/middleware"
	"rental_manager/internal/models"
)

const dateLayout = "2006-01-02"

type createLeaseInput struct {
	PropertyID      uint    `json:"property_id" binding:"required"`
	TenantID        uint    `json:"tenant_id" binding:"required"`
	StartDate       string  `json:"start_date" binding:"required"`
	EndDate         string  `json:"end_date" binding:"required"`
	MonthlyRent     float64 `json:"monthly_rent" binding:"required"`
	SecurityDeposit float64 `json:"security_deposit"`
	TermsConditions string  `json:"terms_conditions"`
	PaymentDueDay   int     `json:"payment_due_day"`
}

// ListLeases returns leases scoped by role: admins see all, owners the
// leases on their properties, tenants their own. Staff have no lease view.
func ListLeases(c *gin.Context) {
	userID := middleware.UserID(c)
	role := middleware.Role(c)

	leases := []models.Lease{}
	query := config.DB.Preload("Property")
	switch role {
	case authz.RoleAdmin:
		// unrestricted
	case authz.RoleOwner:
		query = query.Joins("JOIN properties ON properties.id = leases.property_id").
			Where("properties.owner_id = ?", userID)
	case authz.RoleTenant:
		query = query.Where("tenant_id = ?", userID)
	default:
		c.JSON(http.StatusOK, gin.H{"data": leases})
		return
	}

	if err := query.Find(&leases).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch leases"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": leases})
}

// GetLease retrieves a lease by ID, enforcing the per-role visibility rule.
func GetLease(c *gin.Context) {
	var lease models.Lease
	if err := config.DB.Preload("Property").Preload("Payments").First(&lease, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Lease not found"})
		return
	}

	if !authz.CanViewLease(middleware.Role(c), middleware.UserID(c), lease.TenantID, lease.Property.OwnerID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "You do not have permission to view this lease"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"lease": lease})
}

// CreateLease binds a tenant to an available property. The lease row, the
// availability flip and the tenant notification commit as one transaction,
// so a failed precondition leaves nothing behind.
func CreateLease(c *gin.Context) {
	var input createLeaseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		logrus.WithError(err).Warn("CreateLease: invalid input payload")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	startDate, err := time.Parse(dateLayout, input.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid start_date, expected YYYY-MM-DD"})
		return
	}
	endDate, err := time.Parse(dateLayout, input.EndDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid end_date, expected YYYY-MM-DD"})
		return
	}

	userID := middleware.UserID(c)
	role := middleware.Role(c)

	var property models.Property
	if err := config.DB.First(&property, input.PropertyID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error: " + err.Error()})
		}
		return
	}

	if !authz.CanManageProperty(role, userID, property.OwnerID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "You do not have permission to lease this property"})
		return
	}

	if property.AvailabilityStatus != models.PropertyAvailable {
		c.JSON(http.StatusConflict, gin.H{"error": "Property is not available for lease"})
		return
	}

	dueDay := input.PaymentDueDay
	if dueDay == 0 {
		dueDay = 1
	}

	tx := config.DB.Begin()
	if tx.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start transaction"})
		return
	}

	lease := models.Lease{
		PropertyID:      input.PropertyID,
		TenantID:        input.TenantID,
		StartDate:       startDate,
		EndDate:         endDate,
		MonthlyRent:     input.MonthlyRent,
		SecurityDeposit: input.SecurityDeposit,
		TermsConditions: input.TermsConditions,
		Status:          models.LeaseActive,
		PaymentDueDay:   dueDay,
	}
	if err := tx.Create(&lease).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Create lease failed: " + err.Error()})
		return
	}

	property.AvailabilityStatus = models.PropertyOccupied
	if err := tx.Save(&property).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not update property status: " + err.Error()})
		return
	}

	notification := models.Notification{
		UserID:           input.TenantID,
		Title:            "New Lease Agreement",
		Message:          "A new lease agreement has been created for property: " + property.Title,
		NotificationType: models.NotificationLeaseRenewal,
	}
	if err := tx.Create(&notification).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create notification: " + err.Error()})
		return
	}

	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Transaction commit failed: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"lease": lease})
}

// EndLease moves an active lease to ended and releases the property back to
// available, notifying the tenant.
func EndLease(c *gin.Context) {
	var lease models.Lease
	if err := config.DB.Preload("Property").First(&lease, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Lease not found"})
		return
	}

	if !authz.CanManageProperty(middleware.Role(c), middleware.UserID(c), lease.Property.OwnerID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "You do not have permission to end this lease"})
		return
	}

	if lease.Status != models.LeaseActive {
		c.JSON(http.StatusConflict, gin.H{"error": "Lease is not active"})
		return
	}

	tx := config.DB.Begin()
	if tx.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start transaction"})
		return
	}

	lease.Status = models.LeaseEnded
	if err := tx.Save(&lease).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not end lease: " + err.Error()})
		return
	}

	if err := tx.Model(&models.Property{}).Where("id = ?", lease.PropertyID).
		Update("availability_status", models.PropertyAvailable).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not update property status: " + err.Error()})
		return
	}

	notification := models.Notification{
		UserID:           lease.TenantID,
		Title:            "Lease Ended",
		Message:          "Your lease for property: " + lease.Property.Title + " has ended.",
		NotificationType: models.NotificationLeaseRenewal,
	}
	if err := tx.Create(&notification).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create notification: " + err.Error()})
		return
	}

	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Transaction commit failed: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"lease": lease})
}
