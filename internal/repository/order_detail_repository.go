package repository

import (
	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/COMS4153EcommerceProject/Order-Service/internal/apperr"
	"github.com/COMS4153EcommerceProject/Order-Service/internal/entity"
)

type OrderDetailFilter struct {
	OrderID     *uuid.UUID
	ProdID      *uuid.UUID
	MinQuantity *int
	MaxQuantity *int
	MinSubtotal *decimal.Decimal
	MaxSubtotal *decimal.Decimal
}

// OrderDetailRepository stores line items under their composite
// (order_id, prod_id) key. A second Put on the same key overwrites the
// first; there is no duplicate rejection.
type OrderDetailRepository struct {
	store *MemStore[entity.OrderDetailKey, entity.OrderDetail]
}

func NewOrderDetailRepository() *OrderDetailRepository {
	return &OrderDetailRepository{store: NewMemStore[entity.OrderDetailKey, entity.OrderDetail]()}
}

func (r *OrderDetailRepository) Put(detail entity.OrderDetail) {
	r.store.Put(detail.Key(), detail)
}

func (r *OrderDetailRepository) Get(key entity.OrderDetailKey) (entity.OrderDetail, error) {
	detail, ok := r.store.Get(key)
	if !ok {
		return entity.OrderDetail{}, apperr.ErrNotFound
	}
	return detail, nil
}

func (r *OrderDetailRepository) Update(key entity.OrderDetailKey, fn func(entity.OrderDetail) entity.OrderDetail) (entity.OrderDetail, error) {
	detail, ok := r.store.Update(key, fn)
	if !ok {
		return entity.OrderDetail{}, apperr.ErrNotFound
	}
	return detail, nil
}

func (r *OrderDetailRepository) List(filter OrderDetailFilter, s Sort, page Page) []entity.OrderDetail {
	details := r.store.Snapshot()

	details = lo.Filter(details, func(d entity.OrderDetail, _ int) bool {
		if filter.OrderID != nil && d.OrderID != *filter.OrderID {
			return false
		}
		if filter.ProdID != nil && d.ProdID != *filter.ProdID {
			return false
		}
		return true
	})
	details = lo.Filter(details, func(d entity.OrderDetail, _ int) bool {
		if filter.MinQuantity != nil && d.Quantity < *filter.MinQuantity {
			return false
		}
		if filter.MaxQuantity != nil && d.Quantity > *filter.MaxQuantity {
			return false
		}
		if filter.MinSubtotal != nil && d.Subtotal.LessThan(*filter.MinSubtotal) {
			return false
		}
		if filter.MaxSubtotal != nil && d.Subtotal.GreaterThan(*filter.MaxSubtotal) {
			return false
		}
		return true
	})

	applySort(details, orderDetailLess(s.By), s.Desc)
	return applyPage(details, page)
}

func orderDetailLess(by string) func(a, b entity.OrderDetail) bool {
	switch by {
	case "quantity":
		return func(a, b entity.OrderDetail) bool { return a.Quantity < b.Quantity }
	case "subtotal":
		return func(a, b entity.OrderDetail) bool { return a.Subtotal.LessThan(b.Subtotal) }
	case "created_at":
		return func(a, b entity.OrderDetail) bool { return a.CreatedAt.Before(b.CreatedAt) }
	case "updated_at":
		return func(a, b entity.OrderDetail) bool { return a.UpdatedAt.Before(b.UpdatedAt) }
	default:
		return nil
	}
}
