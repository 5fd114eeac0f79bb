package entity

import (
	"errors"

	"github.com/google/uuid"
)

// Validation here covers only the shape the stores rely on; the HTTP
// layer maps any of these errors to 422.

func (in OrderCreate) Validate() error {
	if in.UserID == uuid.Nil {
		return errors.New("user_id is required")
	}
	if in.TotalPrice == nil {
		return errors.New("total_price is required")
	}
	if in.TotalPrice.IsNegative() {
		return errors.New("total_price must be non-negative")
	}
	return nil
}

func (in OrderUpdate) Validate() error {
	if in.TotalPrice != nil && in.TotalPrice.IsNegative() {
		return errors.New("total_price must be non-negative")
	}
	return nil
}

func (in PaymentCreate) Validate() error {
	if in.OrderID == uuid.Nil {
		return errors.New("order_id is required")
	}
	if in.PaymentMethod == "" {
		return errors.New("payment_method is required")
	}
	if in.PaymentDate == nil {
		return errors.New("payment_date is required")
	}
	if in.Amount == nil {
		return errors.New("amount is required")
	}
	if in.Amount.IsNegative() {
		return errors.New("amount must be non-negative")
	}
	return nil
}

func (in PaymentUpdate) Validate() error {
	if in.Amount != nil && in.Amount.IsNegative() {
		return errors.New("amount must be non-negative")
	}
	return nil
}

func (in OrderDetailCreate) Validate() error {
	if in.OrderID == uuid.Nil {
		return errors.New("order_id is required")
	}
	if in.ProdID == uuid.Nil {
		return errors.New("prod_id is required")
	}
	if in.Quantity == nil {
		return errors.New("quantity is required")
	}
	if *in.Quantity < 1 {
		return errors.New("quantity must be at least 1")
	}
	if in.Subtotal == nil {
		return errors.New("subtotal is required")
	}
	if in.Subtotal.IsNegative() {
		return errors.New("subtotal must be non-negative")
	}
	return nil
}

func (in OrderDetailUpdate) Validate() error {
	if in.Quantity != nil && *in.Quantity < 1 {
		return errors.New("quantity must be at least 1")
	}
	if in.Subtotal != nil && in.Subtotal.IsNegative() {
		return errors.New("subtotal must be non-negative")
	}
	return nil
}
