package models

import "time"

// OperatorAlert records a checkout whose pending row could not be written
// after the gateway had already accepted the push. Money may have moved
// with no local record, so these rows are the manual reconciliation queue.
type OperatorAlert struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	AlertID   string    `gorm:"uniqueIndex;not null" json:"alert_id"`
	Reference string    `gorm:"not null" json:"reference"`
	Phone     string    `json:"phone"`
	Amount    int       `json:"amount"`
	Detail    string    `json:"detail"`
	CreatedAt time.Time `json:"created_at"`
}
