package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email         string `gorm:"uniqueIndex;not null" json:"email"`
	Password      string `json:"-"`
	Name          string `json:"name"`
	Surname       string `json:"surname"`
	ContactNumber string `json:"contactNumber"`
	Address       string `json:"address"`

	// saved card details for checkout prefill
	CardNumber string `json:"cardNumber,omitempty"`
	CardExpiry string `json:"cardExpiry,omitempty"`
	CardCVV    string `json:"-"`

	Role    string `gorm:"not null;default:customer" json:"role"`
	StaffID string `json:"staffId,omitempty"`
}

const (
	RoleCustomer = "customer"
	RoleStaff    = "staff"
	RoleAdmin    = "admin"
)
