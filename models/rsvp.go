package models

import "gorm.io/gorm"

// RSVP is a free seat reservation, no payment attached.
type RSVP struct {
	gorm.Model
	Name     string `gorm:"not null" json:"name"`
	Email    string `gorm:"not null" json:"email"`
	Phone    string `gorm:"column:mobile;not null" json:"mobile"`
	Question string `json:"question"`
}

// TableName matches the table the free-seat form writes to.
func (RSVP) TableName() string {
	return "nakurueth"
}
