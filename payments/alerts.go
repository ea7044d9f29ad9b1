package payments

import (
	"log"

	"github.com/Cheppar/merch/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NewStorageAlerter returns the poller's Alert hook backed by the
// operator_alerts table. These rows are the manual reconciliation queue for
// checkouts where money may have moved with no local record. The write is
// attempted even though the store just failed us; if it fails too, the
// poller's RECONCILE log line is all that remains.
func NewStorageAlerter(db *gorm.DB) func(reference, phoneNumber string, amount int, detail string) {
	return func(reference, phoneNumber string, amount int, detail string) {
		alert := models.OperatorAlert{
			AlertID:   uuid.NewString(),
			Reference: reference,
			Phone:     phoneNumber,
			Amount:    amount,
			Detail:    detail,
		}
		if err := db.Create(&alert).Error; err != nil {
			log.Printf("failed to persist operator alert for %s: %v", reference, err)
		}
	}
}
