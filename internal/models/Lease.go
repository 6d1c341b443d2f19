// internal/models/lease.go
package models

import (
	"time"

	"gorm.io/gorm"
)

// Lease lifecycle states. There is no hard delete; a lease only ever moves
// from active to ended.
const (
	LeaseActive = "active"
	LeaseEnded  = "ended"
)

// Lease binds a tenant to a property for a date range and rent amount.
type Lease struct {
	gorm.Model
	PropertyID      uint      `json:"property_id" gorm:"index;not null"`
	Property        Property  `gorm:"foreignKey:PropertyID" json:"property,omitempty"`
	TenantID        uint      `json:"tenant_id" gorm:"index;not null"`
	Tenant          User      `gorm:"foreignKey:TenantID" json:"tenant,omitempty"`
	StartDate       time.Time `json:"start_date" gorm:"not null"`
	EndDate         time.Time `json:"end_date" gorm:"not null"`
	MonthlyRent     float64   `json:"monthly_rent" gorm:"not null"`
	SecurityDeposit float64   `json:"security_deposit"`
	TermsConditions string    `json:"terms_conditions"`
	Status          string    `json:"status" gorm:"default:active"`
	PaymentDueDay   int       `json:"payment_due_day" gorm:"default:1"`

	Payments []Payment `gorm:"foreignKey:LeaseID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"payments,omitempty"`
}
