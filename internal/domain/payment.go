package domain

import (
	"math"
	"time"
)

// Payment statuses. The only transition is pending -> completed.
const (
	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
)

const (
	PaymentTypePremiumSubscription = "premium_subscription"
	DefaultCurrency                = "RUB"
)

// Amount is a currency value in minor units (kopecks). Stored as an
// integer; converted to a float only at the wire format boundary.
type Amount int64

// AmountFromFloat converts a major-unit currency value to minor units.
func AmountFromFloat(v float64) Amount {
	return Amount(math.Round(v * 100))
}

// Float64 returns the major-unit currency value for the wire format.
func (a Amount) Float64() float64 {
	return float64(a) / 100
}

// Payment represents the payments table
type Payment struct {
	ID            int64  `gorm:"primaryKey;autoIncrement"`
	UserID        int64  `gorm:"not null;index"`
	Amount        Amount `gorm:"not null"`
	Currency      string `gorm:"size:8;not null;default:RUB"`
	PaymentType   string `gorm:"size:64;not null"`
	PaymentMethod string `gorm:"size:32"`
	Status        string `gorm:"size:16;not null;default:pending"`
	TransactionID string `gorm:"size:64;uniqueIndex;not null"`
	CreatedAt     time.Time
	CompletedAt   *time.Time
}

func (Payment) TableName() string {
	return "payments"
}

// PaymentConfirmation is what a completed confirmation resolves to: the owner
// and the payment type driving the premium side effect.
type PaymentConfirmation struct {
	UserID      int64
	PaymentType string
}
