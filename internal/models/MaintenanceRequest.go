// internal/models/maintenance_request.go
package models

import (
	"time"

	"gorm.io/gorm"
)

// MaintenanceRequest lifecycle: pending -> in_progress -> completed.
// No transition back out of completed is modeled.
const (
	MaintenancePending    = "pending"
	MaintenanceInProgress = "in_progress"
	MaintenanceCompleted  = "completed"
)

// MaintenanceRequest is filed by a tenant against a property and optionally
// assigned to a staff user. AssignedDate is set when staff_id is set;
// CompletedDate is set when the status transitions to completed.
type MaintenanceRequest struct {
	gorm.Model
	PropertyID      uint       `json:"property_id" gorm:"index;not null"`
	Property        Property   `gorm:"foreignKey:PropertyID" json:"property,omitempty"`
	TenantID        uint       `json:"tenant_id" gorm:"index;not null"`
	Tenant          User       `gorm:"foreignKey:TenantID" json:"tenant,omitempty"`
	StaffID         *uint      `json:"staff_id" gorm:"index"`
	Staff           *User      `gorm:"foreignKey:StaffID" json:"staff,omitempty"`
	Title           string     `json:"title" gorm:"not null"`
	Description     string     `json:"description" gorm:"not null"`
	Category        string     `json:"category"`
	Priority        string     `json:"priority" gorm:"default:medium"`
	Status          string     `json:"status" gorm:"default:pending"`
	ReportedDate    time.Time  `json:"reported_date"`
	AssignedDate    *time.Time `json:"assigned_date"`
	CompletedDate   *time.Time `json:"completed_date"`
	Cost            float64    `json:"cost"`
	ResolutionNotes string     `json:"resolution_notes"`
}
