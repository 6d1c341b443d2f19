package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"rental_manager/internal/config"
	"rental_manager/internal/middleware"
	"rental_manager/internal/models"
)

// updateProfileInput defines the fields a user can change on their own record.
// Username and role are not self-serviceable.
type updateProfileInput struct {
	FullName *string `json:"full_name"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
	Address  *string `json:"address"`
	Password *string `json:"password"`
}

type tenantProfileInput struct {
	EmergencyContactName  *string  `json:"emergency_contact_name"`
	EmergencyContactPhone *string  `json:"emergency_contact_phone"`
	Occupation            *string  `json:"occupation"`
	Employer              *string  `json:"employer"`
	MonthlyIncome         *float64 `json:"monthly_income"`
	IDProofType           *string  `json:"id_proof_type"`
	IDProofNumber         *string  `json:"id_proof_number"`
}

// GetProfile returns the authenticated user's own record.
func GetProfile(c *gin.Context) {
	var user models.User
	if err := config.DB.First(&user, middleware.UserID(c)).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": userResponse(user)})
}

// UpdateProfile modifies the authenticated user's own record.
func UpdateProfile(c *gin.Context) {
	var user models.User
	if err := config.DB.First(&user, middleware.UserID(c)).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	var input updateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.FullName != nil {
		user.FullName = *input.FullName
	}
	if input.Email != nil {
		user.Email = *input.Email
	}
	if input.Phone != nil {
		user.Phone = *input.Phone
	}
	if input.Address != nil {
		user.Address = *input.Address
	}
	if input.Password != nil && *input.Password != "" {
		if err := user.SetPassword(*input.Password); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not hash password"})
			return
		}
	}

	if err := config.DB.Save(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not update profile: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": userResponse(user)})
}

// GetTenantProfile returns the tenant's screening details, if filed.
func GetTenantProfile(c *gin.Context) {
	var profile models.TenantProfile
	err := config.DB.Where("user_id = ?", middleware.UserID(c)).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Tenant profile not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error: " + err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"profile": profile})
}

// UpsertTenantProfile creates the tenant's screening record on first write
// and updates it afterwards.
func UpsertTenantProfile(c *gin.Context) {
	userID := middleware.UserID(c)

	var input tenantProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var profile models.TenantProfile
	err := config.DB.Where("user_id = ?", userID).First(&profile).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error: " + err.Error()})
		return
	}
	profile.UserID = userID

	if input.EmergencyContactName != nil {
		profile.EmergencyContactName = *input.EmergencyContactName
	}
	if input.EmergencyContactPhone != nil {
		profile.EmergencyContactPhone = *input.EmergencyContactPhone
	}
	if input.Occupation != nil {
		profile.Occupation = *input.Occupation
	}
	if input.Employer != nil {
		profile.Employer = *input.Employer
	}
	if input.MonthlyIncome != nil {
		profile.MonthlyIncome = *input.MonthlyIncome
	}
	if input.IDProofType != nil {
		profile.IDProofType = *input.IDProofType
	}
	if input.IDProofNumber != nil {
		profile.IDProofNumber = *input.IDProofNumber
	}

	if err := config.DB.Save(&profile).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not save tenant profile: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"profile": profile})
}
