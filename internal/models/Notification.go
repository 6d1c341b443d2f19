// internal/models/notification.go
package models

import "gorm.io/gorm"

// Notification types mirror the state transitions that generate them.
const (
	NotificationGeneral      = "general"
	NotificationLeaseRenewal = "lease_renewal"
	NotificationMaintenance  = "maintenance"
)

// Notification is a durable per-user message row created as a side effect of
// another entity's state change; end users never create one directly.
type Notification struct {
	gorm.Model
	UserID           uint   `json:"user_id" gorm:"index;not null"`
	Title            string `json:"title" gorm:"not null"`
	Message          string `json:"message" gorm:"not null"`
	NotificationType string `json:"notification_type"`
	IsRead           bool   `json:"is_read" gorm:"default:false"`
}
