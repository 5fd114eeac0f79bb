package repository

import (
	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/COMS4153EcommerceProject/Order-Service/internal/apperr"
	"github.com/COMS4153EcommerceProject/Order-Service/internal/entity"
)

type PaymentFilter struct {
	OrderID       *uuid.UUID
	PaymentMethod *string
	MinAmount     *decimal.Decimal
	MaxAmount     *decimal.Decimal
}

type PaymentRepository struct {
	store *MemStore[uuid.UUID, entity.Payment]
}

func NewPaymentRepository() *PaymentRepository {
	return &PaymentRepository{store: NewMemStore[uuid.UUID, entity.Payment]()}
}

func (r *PaymentRepository) Put(payment entity.Payment) {
	r.store.Put(payment.PaymentID, payment)
}

func (r *PaymentRepository) Get(id uuid.UUID) (entity.Payment, error) {
	payment, ok := r.store.Get(id)
	if !ok {
		return entity.Payment{}, apperr.ErrNotFound
	}
	return payment, nil
}

func (r *PaymentRepository) Update(id uuid.UUID, fn func(entity.Payment) entity.Payment) (entity.Payment, error) {
	payment, ok := r.store.Update(id, fn)
	if !ok {
		return entity.Payment{}, apperr.ErrNotFound
	}
	return payment, nil
}

func (r *PaymentRepository) List(filter PaymentFilter, s Sort, page Page) []entity.Payment {
	payments := r.store.Snapshot()

	payments = lo.Filter(payments, func(p entity.Payment, _ int) bool {
		if filter.OrderID != nil && p.OrderID != *filter.OrderID {
			return false
		}
		if filter.PaymentMethod != nil && p.PaymentMethod != *filter.PaymentMethod {
			return false
		}
		return true
	})
	payments = lo.Filter(payments, func(p entity.Payment, _ int) bool {
		if filter.MinAmount != nil && p.Amount.LessThan(*filter.MinAmount) {
			return false
		}
		if filter.MaxAmount != nil && p.Amount.GreaterThan(*filter.MaxAmount) {
			return false
		}
		return true
	})

	applySort(payments, paymentLess(s.By), s.Desc)
	return applyPage(payments, page)
}

func paymentLess(by string) func(a, b entity.Payment) bool {
	switch by {
	case "payment_date":
		return func(a, b entity.Payment) bool { return a.PaymentDate.Before(b.PaymentDate) }
	case "amount":
		return func(a, b entity.Payment) bool { return a.Amount.LessThan(b.Amount) }
	case "created_at":
		return func(a, b entity.Payment) bool { return a.CreatedAt.Before(b.CreatedAt) }
	case "updated_at":
		return func(a, b entity.Payment) bool { return a.UpdatedAt.Before(b.UpdatedAt) }
	default:
		return nil
	}
}
