package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	logrus "github.com/sirupsen/logrus"

	"rental_manager/internal/authz"
	"rental_manager/internal/config"
	"rental_manager/internal/middleware"
	"rental_manager/internal/models"
)

type createMaintenanceInput struct {
	PropertyID  uint   `json:"property_id" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Category    string `json:"category"`
	Priority    string `json:"priority"`
}

// updateMaintenanceInput defines the fields staff/owner/admin can change on
// a request. Assignment and status transitions drive the timestamp fields.
type updateMaintenanceInput struct {
	Status          *string  `json:"status"`
	ResolutionNotes *string  `json:"resolution_notes"`
	Cost            *float64 `json:"cost"`
	StaffID         *uint    `json:"staff_id"`
}

// ListMaintenance returns maintenance requests scoped by role: admins see
// all, owners those on their properties, tenants their own filings, staff
// those assigned to them.
func ListMaintenance(c *gin.Context) {
	userID := middleware.UserID(c)
	role := middleware.Role(c)

	requests := []models.MaintenanceRequest{}
	query := config.DB.Preload("Property")
	switch role {
	case authz.RoleAdmin:
		// unrestricted
	case authz.RoleOwner:
		query = query.Joins("JOIN properties ON properties.id = maintenance_requests.property_id").
			Where("properties.owner_id = ?", userID)
	case authz.RoleTenant:
		query = query.Where("tenant_id = ?", userID)
	case authz.RoleStaff:
		query = query.Where("staff_id = ?", userID)
	default:
		c.JSON(http.StatusOK, gin.H{"data": requests})
		return
	}

	if err := query.Find(&requests).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch maintenance requests"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": requests})
}

// CreateMaintenance files a new request for the authenticated tenant.
func CreateMaintenance(c *gin.Context) {
	var input createMaintenanceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid maintenance input: " + err.Error()})
		return
	}

	var property models.Property
	if err := config.DB.First(&property, input.PropertyID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
		return
	}

	priority := input.Priority
	if priority == "" {
		priority = "medium"
	}

	request := models.MaintenanceRequest{
		PropertyID:   input.PropertyID,
		TenantID:     middleware.UserID(c),
		Title:        input.Title,
		Description:  input.Description,
		Category:     input.Category,
		Priority:     priority,
		Status:       models.MaintenancePending,
		ReportedDate: time.Now().UTC(),
	}
	if err := config.DB.Create(&request).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create maintenance request: " + err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"request": request})
}

// UpdateMaintenance applies status changes, resolution details, and staff
// assignment. Assignment stamps assigned_date; a transition into completed
// stamps completed_date, which then stays set. The filing tenant is notified
// of every update, in the same transaction as the change.
func UpdateMaintenance(c *gin.Context) {
	var request models.MaintenanceRequest
	if err := config.DB.Preload("Property").First(&request, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Maintenance request not found"})
		return
	}

	userID := middleware.UserID(c)
	role := middleware.Role(c)
	switch role {
	case authz.RoleAdmin:
		// unrestricted
	case authz.RoleOwner:
		if request.Property.OwnerID != userID {
			c.JSON(http.StatusForbidden, gin.H{"error": "You do not have permission to update this request"})
			return
		}
	case authz.RoleStaff:
		if request.StaffID == nil || *request.StaffID != userID {
			c.JSON(http.StatusForbidden, gin.H{"error": "This request is not assigned to you"})
			return
		}
	}

	var input updateMaintenanceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	now := time.Now().UTC()

	if input.Status != nil {
		switch *input.Status {
		case models.MaintenancePending, models.MaintenanceInProgress, models.MaintenanceCompleted:
			request.Status = *input.Status
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status"})
			return
		}
	}
	if input.ResolutionNotes != nil {
		request.ResolutionNotes = *input.ResolutionNotes
	}
	if input.Cost != nil {
		request.Cost = *input.Cost
	}
	if input.StaffID != nil {
		var staff models.User
		if err := config.DB.Where("id = ? AND role = ?", *input.StaffID, authz.RoleStaff).First(&staff).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "staff_id does not reference a staff user"})
			return
		}
		request.StaffID = input.StaffID
		request.AssignedDate = &now
	}
	if request.Status == models.MaintenanceCompleted && request.CompletedDate == nil {
		request.CompletedDate = &now
	}

	tx := config.DB.Begin()
	if tx.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start transaction"})
		return
	}

	if err := tx.Save(&request).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not update maintenance request: " + err.Error()})
		return
	}

	notification := models.Notification{
		UserID:           request.TenantID,
		Title:            "Maintenance Request Updated",
		Message:          fmt.Sprintf("Your maintenance request %q status has been updated to: %s", request.Title, request.Status),
		NotificationType: models.NotificationMaintenance,
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

	logrus.WithFields(logrus.Fields{"request_id": request.ID, "status": request.Status}).Info("maintenance request updated")
	c.JSON(http.StatusOK, gin.H{"request": request})
}
