package payments

import (
	"context"

	"github.com/Cheppar/merch/models"
	"gorm.io/gorm"
)

// ReservationStore persists an event-ticket reservation for one checkout
// attempt. The draft is inserted pending and updated by reference only.
type ReservationStore struct {
	DB    *gorm.DB
	Draft models.Reservation
}

func (s *ReservationStore) CreatePending(ctx context.Context) error {
	s.Draft.Status = models.StatusPending
	s.Draft.MpesaCode = nil
	return s.DB.WithContext(ctx).Create(&s.Draft).Error
}

func (s *ReservationStore) MarkPaid(ctx context.Context, transactionCode string) error {
	return s.DB.WithContext(ctx).
		Model(&models.Reservation{}).
		Where("external_reference = ?", s.Draft.ExternalReference).
		Updates(map[string]interface{}{
			"status":    models.StatusPaid,
			"mpesacode": transactionCode,
		}).Error
}

// BookingStore is the session-booking counterpart of ReservationStore.
type BookingStore struct {
	DB    *gorm.DB
	Draft models.SessionBooking
}

func (s *BookingStore) CreatePending(ctx context.Context) error {
	s.Draft.Status = models.StatusPending
	s.Draft.MpesaCode = nil
	return s.DB.WithContext(ctx).Create(&s.Draft).Error
}

func (s *BookingStore) MarkPaid(ctx context.Context, transactionCode string) error {
	return s.DB.WithContext(ctx).
		Model(&models.SessionBooking{}).
		Where("external_reference = ?", s.Draft.ExternalReference).
		Updates(map[string]interface{}{
			"status":    models.StatusPaid,
			"mpesacode": transactionCode,
		}).Error
}
