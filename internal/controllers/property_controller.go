package controllers

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	logrus "github.com/sirupsen/logrus"

	"rental_manager/internal/authz"
	"rental_manager/internal/config"
	"rental_manager/internal/middleware"
	"rental_manager/internal/models"
)

type propertyInput struct {
	OwnerID            uint    `json:"owner_id"`
	PropertyType       string  `json:"property_type"`
	Title              string  `json:"title" binding:"required"`
	Address            string  `json:"address" binding:"required"`
	City               string  `json:"city"`
	State              string  `json:"state"`
	ZipCode            string  `json:"zip_code"`
	Bedrooms           int     `json:"bedrooms"`
	Bathrooms          int     `json:"bathrooms"`
	AreaSqft           float64 `json:"area_sqft"`
	RentAmount         float64 `json:"rent_amount" binding:"required"`
	SecurityDeposit    float64 `json:"security_deposit"`
	Description        string  `json:"description"`
	Amenities          string  `json:"amenities"`
	AvailabilityStatus string  `json:"availability_status"`
}

// updatePropertyInput defines the fields a client can send to update a property.
type updatePropertyInput struct {
	PropertyType       *string  `json:"property_type"`
	Title              *string  `json:"title"`
	Address            *string  `json:"address"`
	City               *string  `json:"city"`
	State              *string  `json:"state"`
	ZipCode            *string  `json:"zip_code"`
	Bedrooms           *int     `json:"bedrooms"`
	Bathrooms          *int     `json:"bathrooms"`
	AreaSqft           *float64 `json:"area_sqft"`
	RentAmount         *float64 `json:"rent_amount"`
	SecurityDeposit    *float64 `json:"security_deposit"`
	Description        *string  `json:"description"`
	Amenities          *string  `json:"amenities"`
	AvailabilityStatus *string  `json:"availability_status"`
}

// ListProperties returns properties scoped by role: admins see everything,
// owners their own, everyone else only what is available to lease.
func ListProperties(c *gin.Context) {
	userID := middleware.UserID(c)
	role := middleware.Role(c)

	var properties []models.Property
	query := config.DB
	switch role {
	case authz.RoleAdmin:
		// unrestricted
	case authz.RoleOwner:
		query = query.Where("owner_id = ?", userID)
	default:
		query = query.Where("availability_status = ?", models.PropertyAvailable)
	}

	if err := query.Find(&properties).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch properties"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": properties})
}

// GetProperty retrieves a single property by ID.
func GetProperty(c *gin.Context) {
	id := c.Param("id")
	var property models.Property
	if err := config.DB.First(&property, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"property": property})
}

// CreateProperty registers a new property. Owners always create under their
// own account; admins may create on behalf of any owner.
func CreateProperty(c *gin.Context) {
	var input propertyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid property input: " + err.Error()})
		return
	}

	userID := middleware.UserID(c)
	role := middleware.Role(c)

	ownerID := input.OwnerID
	if role == authz.RoleOwner {
		ownerID = userID
	}
	if ownerID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "owner_id is required"})
		return
	}

	status := input.AvailabilityStatus
	if status == "" {
		status = models.PropertyAvailable
	}

	property := models.Property{
		OwnerID:            ownerID,
		PropertyType:       input.PropertyType,
		Title:              input.Title,
		Address:            input.Address,
		City:               input.City,
		State:              input.State,
		ZipCode:            input.ZipCode,
		Bedrooms:           input.Bedrooms,
		Bathrooms:          input.Bathrooms,
		AreaSqft:           input.AreaSqft,
		RentAmount:         input.RentAmount,
		SecurityDeposit:    input.SecurityDeposit,
		Description:        input.Description,
		Amenities:          input.Amenities,
		AvailabilityStatus: status,
	}

	if err := config.DB.Create(&property).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create property: " + err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"property": property})
}

// UpdateProperty modifies an existing property after an ownership check.
func UpdateProperty(c *gin.Context) {
	property, ok := loadOwnedProperty(c)
	if !ok {
		return
	}

	var input updatePropertyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.PropertyType != nil {
		property.PropertyType = *input.PropertyType
	}
	if input.Title != nil {
		property.Title = *input.Title
	}
	if input.Address != nil {
		property.Address = *input.Address
	}
	if input.City != nil {
		property.City = *input.City
	}
	if input.State != nil {
		property.State = *input.State
	}
	if input.ZipCode != nil {
		property.ZipCode = *input.ZipCode
	}
	if input.Bedrooms != nil {
		property.Bedrooms = *input.Bedrooms
	}
	if input.Bathrooms != nil {
		property.Bathrooms = *input.Bathrooms
	}
	if input.AreaSqft != nil {
		property.AreaSqft = *input.AreaSqft
	}
	if input.RentAmount != nil {
		property.RentAmount = *input.RentAmount
	}
	if input.SecurityDeposit != nil {
		property.SecurityDeposit = *input.SecurityDeposit
	}
	if input.Description != nil {
		property.Description = *input.Description
	}
	if input.Amenities != nil {
		property.Amenities = *input.Amenities
	}
	if input.AvailabilityStatus != nil {
		property.AvailabilityStatus = *input.AvailabilityStatus
	}

	if err := config.DB.Save(&property).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not update property: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"property": property})
}

// DeleteProperty removes a property after an ownership check.
func DeleteProperty(c *gin.Context) {
	property, ok := loadOwnedProperty(c)
	if !ok {
		return
	}

	if err := config.DB.Delete(&property).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete property"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Property deleted"})
}

// UploadPropertyImage stores a property image under the configured upload
// directory and records the filename on the row. The filename is reduced to
// its base name so a crafted name cannot escape the directory.
func UploadPropertyImage(c *gin.Context) {
	property, ok := loadOwnedProperty(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}

	dir := config.UploadDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not prepare upload directory"})
		return
	}

	filename := filepath.Base(fileHeader.Filename)
	if err := c.SaveUploadedFile(fileHeader, filepath.Join(dir, filename)); err != nil {
		logrus.WithError(err).Error("UploadPropertyImage: save failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "upload failed"})
		return
	}

	property.ImagePath = filename
	if err := config.DB.Save(&property).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not update property: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"property": property})
}

// loadOwnedProperty fetches the property in the :id param and enforces the
// admin-or-owning-owner rule, writing the error response itself on failure.
func loadOwnedProperty(c *gin.Context) (models.Property, bool) {
	var property models.Property
	if err := config.DB.First(&property, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
		return property, false
	}

	if !authz.CanManageProperty(middleware.Role(c), middleware.UserID(c), property.OwnerID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "You do not have permission to modify this property"})
		return property, false
	}
	return property, true
}
