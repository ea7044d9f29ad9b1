package models

import "gorm.io/gorm"

const (
	SessionVirtual  = "virtual"
	SessionPhysical = "physical"
)

type SessionBooking struct {
	gorm.Model
	EventID     string `gorm:"not null" json:"event_id"`
	Name        string `gorm:"not null" json:"name"`
	SessionType string `gorm:"column:session_type;not null" json:"session_type"`
	// Virtual sessions carry a date, time and alternative contact;
	// physical sessions carry a venue.
	Date              string  `json:"date,omitempty"`
	Time              string  `json:"time,omitempty"`
	AltContact        string  `gorm:"column:alt_contact" json:"alt_contact,omitempty"`
	Venue             string  `json:"venue,omitempty"`
	Phone             string  `gorm:"not null;index" json:"phone"`
	Status            string  `gorm:"not null;default:pending" json:"status"`
	Amount            int     `gorm:"not null" json:"amount"`
	MpesaCode         *string `gorm:"column:mpesacode" json:"mpesacode"`
	ExternalReference string  `gorm:"column:external_reference;uniqueIndex;not null" json:"external_reference"`
}

// TableName keeps the table the session forms have always written to.
func (SessionBooking) TableName() string {
	return "bookings"
}
