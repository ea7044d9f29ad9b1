package models

import "time"

type Event struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Slug        string    `gorm:"uniqueIndex;not null" json:"slug"`
	Name        string    `json:"name"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	TicketPrice int       `json:"ticket_price"`
	Featured    bool      `json:"featured"`
	CreatedAt   time.Time `json:"created_at"`
}
