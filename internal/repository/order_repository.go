package repository

import (
	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/COMS4153EcommerceProject/Order-Service/internal/apperr"
	"github.com/COMS4153EcommerceProject/Order-Service/internal/entity"
)

// OrderFilter has AND semantics across fields. Nil fields do not filter;
// min/max bounds are inclusive.
type OrderFilter struct {
	UserID        *uuid.UUID
	Status        *string
	MinTotalPrice *decimal.Decimal
	MaxTotalPrice *decimal.Decimal
}

type OrderRepository struct {
	store *MemStore[uuid.UUID, entity.Order]
}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{store: NewMemStore[uuid.UUID, entity.Order]()}
}

func (r *OrderRepository) Put(order entity.Order) {
	r.store.Put(order.OrderID, order)
}

func (r *OrderRepository) Get(id uuid.UUID) (entity.Order, error) {
	order, ok := r.store.Get(id)
	if !ok {
		return entity.Order{}, apperr.ErrNotFound
	}
	return order, nil
}

// Update applies fn to the stored order as one logical write.
func (r *OrderRepository) Update(id uuid.UUID, fn func(entity.Order) entity.Order) (entity.Order, error) {
	order, ok := r.store.Update(id, fn)
	if !ok {
		return entity.Order{}, apperr.ErrNotFound
	}
	return order, nil
}

func (r *OrderRepository) List(filter OrderFilter, s Sort, page Page) []entity.Order {
	orders := r.store.Snapshot()

	orders = lo.Filter(orders, func(o entity.Order, _ int) bool {
		if filter.UserID != nil && o.UserID != *filter.UserID {
			return false
		}
		if filter.Status != nil && o.Status != *filter.Status {
			return false
		}
		return true
	})
	orders = lo.Filter(orders, func(o entity.Order, _ int) bool {
		if filter.MinTotalPrice != nil && o.TotalPrice.LessThan(*filter.MinTotalPrice) {
			return false
		}
		if filter.MaxTotalPrice != nil && o.TotalPrice.GreaterThan(*filter.MaxTotalPrice) {
			return false
		}
		return true
	})

	applySort(orders, orderLess(s.By), s.Desc)
	return applyPage(orders, page)
}

func orderLess(by string) func(a, b entity.Order) bool {
	switch by {
	case "order_date":
		return func(a, b entity.Order) bool { return a.OrderDate.Before(b.OrderDate) }
	case "total_price":
		return func(a, b entity.Order) bool { return a.TotalPrice.LessThan(b.TotalPrice) }
	case "status":
		return func(a, b entity.Order) bool { return a.Status < b.Status }
	case "created_at":
		return func(a, b entity.Order) bool { return a.CreatedAt.Before(b.CreatedAt) }
	case "updated_at":
		return func(a, b entity.Order) bool { return a.UpdatedAt.Before(b.UpdatedAt) }
	default:
		return nil
	}
}
