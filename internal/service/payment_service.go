package service

import (
	"time"

	"github.com/google/uuid"

	"github.com/COMS4153EcommerceProject/Order-Service/internal/apperr"
	"github.com/COMS4153EcommerceProject/Order-Service/internal/entity"
	"github.com/COMS4153EcommerceProject/Order-Service/internal/links"
	"github.com/COMS4153EcommerceProject/Order-Service/internal/repository"
)

type PaymentService struct {
	repo *repository.PaymentRepository
}

func NewPaymentService(repo *repository.PaymentRepository) *PaymentService {
	return &PaymentService{repo: repo}
}

func (s *PaymentService) CreatePayment(in entity.PaymentCreate) entity.Payment {
	now := time.Now().UTC()

	payment := entity.Payment{
		PaymentID:     uuid.New(),
		OrderID:       in.OrderID,
		PaymentMethod: in.PaymentMethod,
		PaymentDate:   in.PaymentDate.UTC(),
		Amount:        *in.Amount,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	payment.Links = links.ForPayment(payment.PaymentID, payment.OrderID)

	s.repo.Put(payment)
	return payment
}

func (s *PaymentService) GetPayment(id uuid.UUID) (entity.Payment, error) {
	payment, err := s.repo.Get(id)
	if err != nil {
		return entity.Payment{}, err
	}
	if payment.Links == nil {
		payment.Links = links.ForPayment(payment.PaymentID, payment.OrderID)
	}
	return payment, nil
}

func (s *PaymentService) ListPayments(filter repository.PaymentFilter, sort repository.Sort, page repository.Page) []entity.Payment {
	payments := s.repo.List(filter, sort, page)
	for i := range payments {
		if payments[i].Links == nil {
			payments[i].Links = links.ForPayment(payments[i].PaymentID, payments[i].OrderID)
		}
	}
	return payments
}

func (s *PaymentService) UpdatePayment(id uuid.UUID, in entity.PaymentUpdate) (entity.Payment, error) {
	return s.repo.Update(id, func(p entity.Payment) entity.Payment {
		if in.PaymentMethod != nil {
			p.PaymentMethod = *in.PaymentMethod
		}
		if in.PaymentDate != nil {
			p.PaymentDate = in.PaymentDate.UTC()
		}
		if in.Amount != nil {
			p.Amount = *in.Amount
		}
		p.UpdatedAt = time.Now().UTC()
		p.Links = links.ForPayment(p.PaymentID, p.OrderID)
		return p
	})
}

// DeletePayment is reserved; deletion semantics are not defined yet.
func (s *PaymentService) DeletePayment(uuid.UUID) error {
	return apperr.ErrNotImplemented
}
