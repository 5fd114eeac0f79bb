package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Payment is the stored and wire representation of a payment transaction.
// OrderID is a foreign reference to an order; referential integrity is not
// enforced here.
type Payment struct {
	PaymentID     uuid.UUID         `json:"payment_id"`
	OrderID       uuid.UUID         `json:"order_id"`
	PaymentMethod string            `json:"payment_method"` // e.g. "credit_card", "paypal", "bank_transfer"
	PaymentDate   time.Time         `json:"payment_date"`
	Amount        decimal.Decimal   `json:"amount"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
	Links         map[string]string `json:"links"`
}

type PaymentCreate struct {
	OrderID       uuid.UUID        `json:"order_id"`
	PaymentMethod string           `json:"payment_method"`
	PaymentDate   *time.Time       `json:"payment_date"`
	Amount        *decimal.Decimal `json:"amount"`
}

type PaymentUpdate struct {
	PaymentMethod *string          `json:"payment_method"`
	PaymentDate   *time.Time       `json:"payment_date"`
	Amount        *decimal.Decimal `json:"amount"`
}
