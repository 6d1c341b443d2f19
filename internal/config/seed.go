package config

import (
	"errors"

	"gorm.io/gorm"

	"rental_manager/internal/models"
)

type seedAccount struct {
	Username string
	Email    string
	FullName string
	Phone    string
	Address  string
	Role     string
	Password string
}

// Development accounts only. Change or remove these before any real deployment.
var defaultAdmin = seedAccount{
	Username: "admin",
	Email:    "admin@rental.com",
	FullName: "System Administrator",
	Phone:    "1234567890",
	Role:     "admin",
	Password: "admin123",
}

var sampleAccounts = []seedAccount{
	{
		Username: "owner1",
		Email:    "owner@rental.com",
		FullName: "John Property Owner",
		Phone:    "5551234567",
		Address:  "123 Owner Street",
		Role:     "owner",
		Password: "owner123",
	},
	{
		Username: "tenant1",
		Email:    "tenant@rental.com",
		FullName: "Jane Tenant",
		Phone:    "5559876543",
		Address:  "456 Tenant Avenue",
		Role:     "tenant",
		Password: "tenant123",
	},
	{
		Username: "staff1",
		Email:    "staff@rental.com",
		FullName: "Bob Maintenance Staff",
		Phone:    "5555555555",
		Role:     "staff",
		Password: "staff123",
	},
}

// Seed creates the default admin account, and on a fresh database the sample
// owner/tenant/staff accounts as well. Safe to run repeatedly.
func Seed(db *gorm.DB) error {
	var admin models.User
	err := db.Where("username = ?", defaultAdmin.Username).First(&admin).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		if err := createAccount(db, defaultAdmin); err != nil {
			return err
		}
	} else if err != nil {
		return err
	}

	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 1 {
		// Not a fresh database; leave it alone.
		return nil
	}

	for _, acct := range sampleAccounts {
		if err := createAccount(db, acct); err != nil {
			return err
		}
	}
	return nil
}

func createAccount(db *gorm.DB, acct seedAccount) error {
	user := models.User{
		Username: acct.Username,
		Email:    acct.Email,
		FullName: acct.FullName,
		Phone:    acct.Phone,
		Address:  acct.Address,
		Role:     acct.Role,
		IsActive: true,
	}
	if err := user.SetPassword(acct.Password); err != nil {
		return err
	}
	return db.Create(&user).Error
}
