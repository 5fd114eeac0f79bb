package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func init() {
	// Money fields go over the wire as plain JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

// Order is the stored and wire representation of an order.
type Order struct {
	OrderID    uuid.UUID         `json:"order_id"`
	UserID     uuid.UUID         `json:"user_id"`
	OrderDate  time.Time         `json:"order_date"`
	TotalPrice decimal.Decimal   `json:"total_price"`
	Status     string            `json:"status"` // e.g. "pending", "shipped", "delivered", "cancelled"
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
	Links      map[string]string `json:"links"`
}

// OrderCreate is the client input for creating an order. TotalPrice is a
// pointer so a missing field can be told apart from a zero price.
type OrderCreate struct {
	UserID     uuid.UUID        `json:"user_id"`
	TotalPrice *decimal.Decimal `json:"total_price"`
	Status     string           `json:"status"`
}

// OrderUpdate carries the fields of a partial update; nil means "leave as is".
type OrderUpdate struct {
	UserID     *uuid.UUID       `json:"user_id"`
	OrderDate  *time.Time       `json:"order_date"`
	TotalPrice *decimal.Decimal `json:"total_price"`
	Status     *string          `json:"status"`
}

const DefaultOrderStatus = "pending"
