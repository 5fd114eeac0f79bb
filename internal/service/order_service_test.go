package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/COMS4153EcommerceProject/Order-Service/internal/apperr"
	"github.com/COMS4153EcommerceProject/Order-Service/internal/entity"
	"github.com/COMS4153EcommerceProject/Order-Service/internal/repository"
	"github.com/COMS4153EcommerceProject/Order-Service/internal/service"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

type recordedEvent struct {
	OrderID uuid.UUID
	Action  string
}

// recordingPublisher captures published events; Err simulates a broken bus.
type recordingPublisher struct {
	mu     sync.Mutex
	Events []recordedEvent
	Err    error
}

func (p *recordingPublisher) PublishOrderEvent(_ context.Context, order entity.Order, action string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Events = append(p.Events, recordedEvent{OrderID: order.OrderID, Action: action})
	return p.Err
}

func newOrderService(pub *recordingPublisher) *service.OrderService {
	return service.NewOrderService(repository.NewOrderRepository(), pub, nil)
}

func orderInput(price string) entity.OrderCreate {
	return entity.OrderCreate{
		UserID:     uuid.New(),
		TotalPrice: lo.ToPtr(dec(price)),
	}
}

func TestCreateOrder(t *testing.T) {
	pub := &recordingPublisher{}
	svc := newOrderService(pub)

	order, err := svc.CreateOrder(context.Background(), orderInput("199.99"), "")
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, order.OrderID)
	assert.Equal(t, "pending", order.Status)
	assert.True(t, order.TotalPrice.Equal(dec("199.99")))
	assert.Equal(t, order.CreatedAt, order.UpdatedAt)
	assert.Equal(t, "UTC", order.CreatedAt.Location().String())
	assert.NotEmpty(t, order.Links["self"])

	require.Len(t, pub.Events, 1)
	assert.Equal(t, recordedEvent{OrderID: order.OrderID, Action: "created"}, pub.Events[0])
}

func TestCreateOrderPublishFailureDoesNotFailCreate(t *testing.T) {
	pub := &recordingPublisher{Err: errors.New("kafka down")}
	svc := newOrderService(pub)

	order, err := svc.CreateOrder(context.Background(), orderInput("10.00"), "")
	require.NoError(t, err)

	// the order was committed despite the publish failure
	got, err := svc.GetOrder(order.OrderID)
	require.NoError(t, err)
	assert.Equal(t, order.OrderID, got.OrderID)
}

func TestUpdateOrderPartial(t *testing.T) {
	pub := &recordingPublisher{}
	svc := newOrderService(pub)

	order, err := svc.CreateOrder(context.Background(), orderInput("100.00"), "")
	require.NoError(t, err)

	updated, err := svc.UpdateOrder(context.Background(), order.OrderID, entity.OrderUpdate{
		Status: lo.ToPtr("shipped"),
	})
	require.NoError(t, err)

	assert.Equal(t, "shipped", updated.Status)
	assert.True(t, updated.TotalPrice.Equal(order.TotalPrice), "untouched field must survive")
	assert.Equal(t, order.OrderID, updated.OrderID)
	assert.Equal(t, order.CreatedAt, updated.CreatedAt)
	assert.False(t, updated.UpdatedAt.Before(order.UpdatedAt))

	require.Len(t, pub.Events, 2)
	assert.Equal(t, "updated", pub.Events[1].Action)
}

func TestUpdateOrderNotFound(t *testing.T) {
	svc := newOrderService(&recordingPublisher{})

	_, err := svc.UpdateOrder(context.Background(), uuid.New(), entity.OrderUpdate{})
	require.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestDeleteOrderNotImplemented(t *testing.T) {
	svc := newOrderService(&recordingPublisher{})

	err := svc.DeleteOrder(uuid.New())
	require.ErrorIs(t, err, apperr.ErrNotImplemented)
}

func TestListOrdersBackfillsLinks(t *testing.T) {
	repo := repository.NewOrderRepository()
	svc := service.NewOrderService(repo, &recordingPublisher{}, nil)

	// stored without links, as if written by an older revision
	order := entity.Order{OrderID: uuid.New(), UserID: uuid.New(), TotalPrice: dec("5.00")}
	repo.Put(order)

	got, err := svc.GetOrder(order.OrderID)
	require.NoError(t, err)
	assert.NotEmpty(t, got.Links)

	listed := svc.ListOrders(repository.OrderFilter{}, repository.Sort{}, repository.Page{})
	require.Len(t, listed, 1)
	assert.NotEmpty(t, listed[0].Links)
}
