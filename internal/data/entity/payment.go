package entity

import (
	"github.com/google/uuid"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusRefunded  PaymentStatus = "refunded"
)

type PaymentMethod string

const (
	PaymentMethodCard       PaymentMethod = "card"
	PaymentMethodUPI        PaymentMethod = "upi"
	PaymentMethodNetBanking PaymentMethod = "netbanking"
)

type Payment struct {
	BaseNoDelete
	BookingID     uuid.UUID     `db:"booking_id"`
	Amount        float64       `db:"amount"`
	Method        PaymentMethod `db:"payment_method"`
	TransactionID string        `db:"transaction_id"` // TXN + 10 hex
	Status        PaymentStatus `db:"status"`
}
