package models

// PaymentStatusRecord is written by the gateway backend when an M-Pesa
// transaction settles. This service only ever reads it. The status column
// has drifted across integrations: some write a boolean, others a string
// label, so it is scanned as text and normalized at the polling boundary.
type PaymentStatusRecord struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	UserReference  string `gorm:"column:user_reference;index" json:"user_reference"`
	Status         string `gorm:"column:status" json:"status"`
	MpesaReference string `gorm:"column:mpesa_reference" json:"mpesa_reference"`
}

func (PaymentStatusRecord) TableName() string {
	return "gaspayments"
}
