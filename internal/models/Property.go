// internal/models/property.go
package models

import (
	"gorm.io/gorm"
)

// Availability states for a Property. A property flips to occupied when an
// active lease is created against it and back to available when that lease ends.
const (
	PropertyAvailable = "available"
	PropertyOccupied  = "occupied"
)

type Property struct {
	gorm.Model
	OwnerID            uint    `json:"owner_id" gorm:"index;not null"`
	Owner              User    `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	PropertyType       string  `json:"property_type"`
	Title              string  `json:"title" gorm:"not null"`
	Address            string  `json:"address" gorm:"not null"`
	City               string  `json:"city"`
	State              string  `json:"state"`
	ZipCode            string  `json:"zip_code"`
	Bedrooms           int     `json:"bedrooms"`
	Bathrooms          int     `json:"bathrooms"`
	AreaSqft           float64 `json:"area_sqft"`
	RentAmount         float64 `json:"rent_amount" gorm:"not null"`
	SecurityDeposit    float64 `json:"security_deposit"`
	Description        string  `json:"description"`
	Amenities          string  `json:"amenities"`
	AvailabilityStatus string  `json:"availability_status" gorm:"default:available"`
	ImagePath          string  `json:"image_path"`

	// Associations
	Leases              []Lease              `gorm:"foreignKey:PropertyID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"leases,omitempty"`
	MaintenanceRequests []MaintenanceRequest `gorm:"foreignKey:PropertyID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"maintenance_requests,omitempty"`
}
