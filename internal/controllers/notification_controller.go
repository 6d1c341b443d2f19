package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rental_manager/internal/config"
	"rental_manager/internal/middleware"
	"rental_manager/internal/models"
)

// ListNotifications returns the authenticated user's notifications, newest
// first.
func ListNotifications(c *gin.Context) {
	userID := middleware.UserID(c)

	notifications := []models.Notification{}
	if err := config.DB.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&notifications).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch notifications"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": notifications})
}

// MarkNotificationRead flags a notification as read. Users can only touch
// their own rows.
func MarkNotificationRead(c *gin.Context) {
	var notification models.Notification
	if err := config.DB.First(&notification, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Notification not found"})
		return
	}

	if notification.UserID != middleware.UserID(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Unauthorized access"})
		return
	}

	notification.IsRead = true
	if err := config.DB.Save(&notification).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not update notification"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"notification": notification})
}
