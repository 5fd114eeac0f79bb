package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/COMS4153EcommerceProject/Order-Service/internal/apperr"
	"github.com/COMS4153EcommerceProject/Order-Service/internal/entity"
	"github.com/COMS4153EcommerceProject/Order-Service/internal/events"
	"github.com/COMS4153EcommerceProject/Order-Service/internal/links"
	"github.com/COMS4153EcommerceProject/Order-Service/internal/repository"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

// OrderService owns order reads and writes. Every successful mutation
// publishes a best-effort event; publish failures are logged and never
// fail the mutation.
type OrderService struct {
	repo      *repository.OrderRepository
	publisher events.Publisher
	rdb       *redis.Client // nil disables the idempotency guard
}

func NewOrderService(repo *repository.OrderRepository, publisher events.Publisher, rdb *redis.Client) *OrderService {
	return &OrderService{repo: repo, publisher: publisher, rdb: rdb}
}

// CreateOrder assigns identity and timestamps, stores the order and
// publishes a "created" event. idempotentKey is optional.
func (s *OrderService) CreateOrder(ctx context.Context, in entity.OrderCreate, idempotentKey string) (entity.Order, error) {
	if err := s.validateIdempotentKey(ctx, idempotentKey); err != nil {
		return entity.Order{}, err
	}

	now := time.Now().UTC()
	status := in.Status
	if status == "" {
		status = entity.DefaultOrderStatus
	}

	order := entity.Order{
		OrderID:    uuid.New(),
		UserID:     in.UserID,
		OrderDate:  now,
		TotalPrice: *in.TotalPrice,
		Status:     status,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	order.Links = links.ForOrder(order.OrderID)

	s.repo.Put(order)
	s.publish(ctx, order, "created")
	return order, nil
}

func (s *OrderService) GetOrder(id uuid.UUID) (entity.Order, error) {
	order, err := s.repo.Get(id)
	if err != nil {
		return entity.Order{}, err
	}
	if order.Links == nil {
		order.Links = links.ForOrder(order.OrderID)
	}
	return order, nil
}

func (s *OrderService) ListOrders(filter repository.OrderFilter, sort repository.Sort, page repository.Page) []entity.Order {
	orders := s.repo.List(filter, sort, page)
	for i := range orders {
		if orders[i].Links == nil {
			orders[i].Links = links.ForOrder(orders[i].OrderID)
		}
	}
	return orders
}

// UpdateOrder overwrites only the fields present in the partial input.
// Identity and created_at are immutable; updated_at is refreshed.
func (s *OrderService) UpdateOrder(ctx context.Context, id uuid.UUID, in entity.OrderUpdate) (entity.Order, error) {
	order, err := s.repo.Update(id, func(o entity.Order) entity.Order {
		if in.UserID != nil {
			o.UserID = *in.UserID
		}
		if in.OrderDate != nil {
			o.OrderDate = in.OrderDate.UTC()
		}
		if in.TotalPrice != nil {
			o.TotalPrice = *in.TotalPrice
		}
		if in.Status != nil {
			o.Status = *in.Status
		}
		o.UpdatedAt = time.Now().UTC()
		o.Links = links.ForOrder(o.OrderID)
		return o
	})
	if err != nil {
		return entity.Order{}, err
	}

	s.publish(ctx, order, "updated")
	return order, nil
}

// DeleteOrder is reserved; deletion semantics are not defined yet.
func (s *OrderService) DeleteOrder(uuid.UUID) error {
	return apperr.ErrNotImplemented
}

func (s *OrderService) publish(ctx context.Context, order entity.Order, action string) {
	if err := s.publisher.PublishOrderEvent(ctx, order, action); err != nil {
		logger.Error().Err(err).Msgf("Error publishing order %s event for order %s", action, order.OrderID)
	}
}

// validateIdempotentKey rejects a replayed Idempotent-Key. Cache
// failures are logged and treated as a pass so Redis outages do not
// block order creation.
func (s *OrderService) validateIdempotentKey(ctx context.Context, key string) error {
	if s.rdb == nil || key == "" {
		return nil
	}

	redisKey := fmt.Sprintf("idempotent-key:%s", key)
	val, err := s.rdb.Get(ctx, redisKey).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		logger.Error().Err(err).Msg("Error reading idempotent key from cache")
		return nil
	}
	if val != "" {
		return apperr.ErrIdempotencyConflict
	}

	if err := s.rdb.Set(ctx, redisKey, "exists", 24*time.Hour).Err(); err != nil {
		logger.Error().Err(err).Msg("Error storing idempotent key in cache")
	}
	return nil
}
