package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDetailKey is the composite identity of an order line item. Order
// details have no synthetic id of their own.
type OrderDetailKey struct {
	OrderID uuid.UUID
	ProdID  uuid.UUID
}

// OrderDetail is the stored and wire representation of one line item.
type OrderDetail struct {
	OrderID   uuid.UUID         `json:"order_id"`
	ProdID    uuid.UUID         `json:"prod_id"`
	Quantity  int               `json:"quantity"`
	Subtotal  decimal.Decimal   `json:"subtotal"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
	Links     map[string]string `json:"links"`
}

func (d OrderDetail) Key() OrderDetailKey {
	return OrderDetailKey{OrderID: d.OrderID, ProdID: d.ProdID}
}

type OrderDetailCreate struct {
	OrderID  uuid.UUID        `json:"order_id"`
	ProdID   uuid.UUID        `json:"prod_id"`
	Quantity *int             `json:"quantity"`
	Subtotal *decimal.Decimal `json:"subtotal"`
}

type OrderDetailUpdate struct {
	Quantity *int             `json:"quantity"`
	Subtotal *decimal.Decimal `json:"subtotal"`
}
