package models

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"size:100;not null" json:"name"`
	MobileNumber string    `gorm:"size:15;uniqueIndex;not null" json:"mobileNumber"`
	Password     string    `gorm:"size:255;not null" json:"-"`
	Role         string    `gorm:"size:20;default:'user';not null" json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// Address is a delivery address owned by exactly one user.
type Address struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	UserID      uint   `gorm:"index;not null" json:"user_id"`
	Name        string `gorm:"size:100;not null" json:"name"`
	Mobile      string `gorm:"size:15;not null" json:"mobile"`
	Pincode     string `gorm:"size:10;not null" json:"pincode"`
	Locality    string `gorm:"size:255;not null" json:"locality"`
	Address     string `gorm:"size:500;not null" json:"address"`
	City        string `gorm:"size:100;not null" json:"city"`
	State       string `gorm:"size:100;not null" json:"state"`
	AddressType string `gorm:"size:20;not null" json:"address_type"`
}
