// internal/models/payment.go
package models

import (
	"time"

	"gorm.io/gorm"
)

// Payment states. The schema default is pending, but the recording handler
// writes completed; the pending value stays representable for reports.
const (
	PaymentPending   = "pending"
	PaymentCompleted = "completed"
)

type Payment struct {
	gorm.Model
	LeaseID       uint      `json:"lease_id" gorm:"index;not null"`
	Lease         Lease     `gorm:"foreignKey:LeaseID" json:"lease,omitempty"`
	TenantID      uint      `json:"tenant_id" gorm:"index;not null"`
	Amount        float64   `json:"amount" gorm:"not null"`
	PaymentDate   time.Time `json:"payment_date" gorm:"not null"`
	PaymentMonth  string    `json:"payment_month"` // "YYYY-MM"
	PaymentMethod string    `json:"payment_method"`
	TransactionID string    `json:"transaction_id"`
	Status        string    `json:"status" gorm:"default:pending"`
	LateFee       float64   `json:"late_fee" gorm:"default:0"`
	Notes         string    `json:"notes"`
}
