package models

import (
	"time"

	"gorm.io/gorm"
)

// User is a staff account for the dashboard. Public booking forms are
// anonymous and never create users.
type User struct {
	gorm.Model
	Email        string     `gorm:"unique;not null" json:"email"`
	Name         string     `json:"name"`
	Password     string     `gorm:"not null" json:"-"`
	Role         string     `gorm:"not null;default:staff" json:"role"`
	LastLogoutAt *time.Time `gorm:"column:last_logout_at" json:"-"`
}
