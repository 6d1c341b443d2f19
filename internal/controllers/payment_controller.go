package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"rental_manager/internal/authz"
	"rental_manager/internal/config"
	"rental_manager/internal/middleware"
	"rental_manager/internal/models"
)

type createPaymentInput struct {
	LeaseID       uint    `json:"lease_id" binding:"required"`
	TenantID      uint    `json:"tenant_id"`
	Amount        float64 `json:"amount" binding:"required"`
	PaymentDate   string  `json:"payment_date" binding:"required"`
	PaymentMonth  string  `json:"payment_month"`
	PaymentMethod string  `json:"payment_method"`
	TransactionID string  `json:"transaction_id"`
	LateFee       float64 `json:"late_fee"`
	Notes         string  `json:"notes"`
}

// ListPayments returns payments scoped by role: admins see all, owners the
// payments against their properties' leases, tenants their own.
func ListPayments(c *gin.Context) {
	userID := middleware.UserID(c)
	role := middleware.Role(c)

	payments := []models.Payment{}
	query := config.DB
	switch role {
	case authz.RoleAdmin:
		// unrestricted
	case authz.RoleOwner:
		query = query.Joins("JOIN leases ON leases.id = payments.lease_id").
			Joins("JOIN properties ON properties.id = leases.property_id").
			Where("properties.owner_id = ?", userID)
	case authz.RoleTenant:
		query = query.Where("tenant_id = ?", userID)
	default:
		c.JSON(http.StatusOK, gin.H{"data": payments})
		return
	}

	if err := query.Find(&payments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch payments"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": payments})
}

// CreatePayment records a rent payment against a lease. The amount is
// caller-supplied and not checked against the lease terms; the row is
// written as completed at creation.
func CreatePayment(c *gin.Context) {
	var input createPaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payment input: " + err.Error()})
		return
	}

	paymentDate, err := time.Parse(dateLayout, input.PaymentDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payment_date, expected YYYY-MM-DD"})
		return
	}

	var lease models.Lease
	if err := config.DB.First(&lease, input.LeaseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Lease not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error: " + err.Error()})
		}
		return
	}

	tenantID := input.TenantID
	if middleware.Role(c) == authz.RoleTenant {
		tenantID = middleware.UserID(c)
	}
	if tenantID == 0 {
		tenantID = lease.TenantID
	}

	payment := models.Payment{
		LeaseID:       input.LeaseID,
		TenantID:      tenantID,
		Amount:        input.Amount,
		PaymentDate:   paymentDate,
		PaymentMonth:  input.PaymentMonth,
		PaymentMethod: input.PaymentMethod,
		TransactionID: input.TransactionID,
		Status:        models.PaymentCompleted,
		LateFee:       input.LateFee,
		Notes:         input.Notes,
	}
	if err := config.DB.Create(&payment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not record payment: " + err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"payment": payment})
}
