// internal/models/tenant_profile.go
package models

import "gorm.io/gorm"

// TenantProfile holds the screening details a tenant supplies once,
// separate from the login record.
type TenantProfile struct {
	gorm.Model
	UserID                uint    `json:"user_id" gorm:"uniqueIndex;not null"`
	EmergencyContactName  string  `json:"emergency_contact_name"`
	EmergencyContactPhone string  `json:"emergency_contact_phone"`
	Occupation            string  `json:"occupation"`
	Employer              string  `json:"employer"`
	MonthlyIncome         float64 `json:"monthly_income"`
	IDProofType           string  `json:"id_proof_type"`
	IDProofNumber         string  `json:"id_proof_number"`
}
