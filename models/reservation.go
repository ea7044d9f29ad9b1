package models

import "gorm.io/gorm"

// Statuses shared by reservations and session bookings. "Paid" keeps its
// capital P to match the rows the dashboards already filter on.
const (
	StatusPending   = "pending"
	StatusPaid      = "Paid"
	StatusConfirmed = "confirmed"
	StatusClaimed   = "claimed"
)

var allowedTransitions = map[string][]string{
	StatusPending:   {StatusPaid, StatusConfirmed},
	StatusPaid:      {StatusClaimed},
	StatusConfirmed: {StatusClaimed},
	StatusClaimed:   {},
}

// IsValidTransition reports whether a record may move between two statuses.
func IsValidTransition(from, to string) bool {
	for _, allowed := range allowedTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

type Reservation struct {
	gorm.Model
	EventID           string  `gorm:"not null" json:"event_id"`
	Name              string  `gorm:"not null" json:"name"`
	Phone             string  `gorm:"not null;index" json:"phone"`
	Tickets           int     `gorm:"not null" json:"tickets"`
	Status            string  `gorm:"not null;default:pending" json:"status"`
	Amount            int     `gorm:"not null" json:"amount"`
	MpesaCode         *string `gorm:"column:mpesacode" json:"mpesacode"`
	ExternalReference string  `gorm:"column:external_reference;uniqueIndex;not null" json:"external_reference"`
}
