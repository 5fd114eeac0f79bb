package service

import (
	"time"

	"github.com/COMS4153EcommerceProject/Order-Service/internal/apperr"
	"github.com/COMS4153EcommerceProject/Order-Service/internal/entity"
	"github.com/COMS4153EcommerceProject/Order-Service/internal/links"
	"github.com/COMS4153EcommerceProject/Order-Service/internal/repository"
)

type OrderDetailService struct {
	repo *repository.OrderDetailRepository
}

func NewOrderDetailService(repo *repository.OrderDetailRepository) *OrderDetailService {
	return &OrderDetailService{repo: repo}
}

// CreateOrderDetail stores a line item under its composite key. A
// second create on the same (order_id, prod_id) overwrites the first.
func (s *OrderDetailService) CreateOrderDetail(in entity.OrderDetailCreate) entity.OrderDetail {
	now := time.Now().UTC()

	detail := entity.OrderDetail{
		OrderID:   in.OrderID,
		ProdID:    in.ProdID,
		Quantity:  *in.Quantity,
		Subtotal:  *in.Subtotal,
		CreatedAt: now,
		UpdatedAt: now,
	}
	detail.Links = links.ForOrderDetail(detail.OrderID, detail.ProdID)

	s.repo.Put(detail)
	return detail
}

func (s *OrderDetailService) GetOrderDetail(key entity.OrderDetailKey) (entity.OrderDetail, error) {
	detail, err := s.repo.Get(key)
	if err != nil {
		return entity.OrderDetail{}, err
	}
	if detail.Links == nil {
		detail.Links = links.ForOrderDetail(detail.OrderID, detail.ProdID)
	}
	return detail, nil
}

func (s *OrderDetailService) ListOrderDetails(filter repository.OrderDetailFilter, sort repository.Sort, page repository.Page) []entity.OrderDetail {
	details := s.repo.List(filter, sort, page)
	for i := range details {
		if details[i].Links == nil {
			details[i].Links = links.ForOrderDetail(details[i].OrderID, details[i].ProdID)
		}
	}
	return details
}

func (s *OrderDetailService) UpdateOrderDetail(key entity.OrderDetailKey, in entity.OrderDetailUpdate) (entity.OrderDetail, error) {
	return s.repo.Update(key, func(d entity.OrderDetail) entity.OrderDetail {
		if in.Quantity != nil {
			d.Quantity = *in.Quantity
		}
		if in.Subtotal != nil {
			d.Subtotal = *in.Subtotal
		}
		d.UpdatedAt = time.Now().UTC()
		d.Links = links.ForOrderDetail(d.OrderID, d.ProdID)
		return d
	})
}

// DeleteOrderDetail is reserved; deletion semantics are not defined yet.
func (s *OrderDetailService) DeleteOrderDetail(entity.OrderDetailKey) error {
	return apperr.ErrNotImplemented
}
