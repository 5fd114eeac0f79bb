package repository_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/COMS4153EcommerceProject/Order-Service/internal/entity"
	"github.com/COMS4153EcommerceProject/Order-Service/internal/repository"
)

func newPayment(method string, amount string) entity.Payment {
	now := time.Now().UTC()
	return entity.Payment{
		PaymentID:     uuid.New(),
		OrderID:       uuid.New(),
		PaymentMethod: method,
		PaymentDate:   now,
		Amount:        dec(amount),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func seedPayments(t *testing.T) (*repository.PaymentRepository, []entity.Payment) {
	t.Helper()
	repo := repository.NewPaymentRepository()

	payments := []entity.Payment{
		newPayment("paypal", "30.00"),
		newPayment("credit_card", "10.00"),
		newPayment("bank_transfer", "20.00"),
	}
	for _, p := range payments {
		repo.Put(p)
	}
	return repo, payments
}

func TestPaymentListSortByAmount(t *testing.T) {
	repo, _ := seedPayments(t)

	asc := repo.List(repository.PaymentFilter{}, repository.Sort{By: "amount"}, repository.Page{})
	for i := 1; i < len(asc); i++ {
		assert.True(t, asc[i-1].Amount.LessThanOrEqual(asc[i].Amount))
	}
}

func TestPaymentListSortWhitelist(t *testing.T) {
	repo, payments := seedPayments(t)

	// fields outside the whitelist fall back to insertion order
	for _, by := range []string{"payment_method", "no_such_field"} {
		got := repo.List(repository.PaymentFilter{}, repository.Sort{By: by}, repository.Page{})
		require.Len(t, got, len(payments))
		for i, p := range got {
			assert.Equal(t, payments[i].PaymentID, p.PaymentID, "sort by %q must not reorder", by)
		}
	}
}
