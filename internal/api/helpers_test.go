package api_test

import (
	"context"

	"github.com/COMS4153EcommerceProject/Order-Service/internal/entity"
)

type noopPublisher struct{}

func (noopPublisher) PublishOrderEvent(context.Context, entity.Order, string) error {
	return nil
}
