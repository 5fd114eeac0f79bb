// Package events is the outbound event port. Publishing is best-effort:
// callers log failures and never roll back the write that triggered the
// event.
package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"

	"github.com/COMS4153EcommerceProject/Order-Service/internal/entity"
)

type Publisher interface {
	PublishOrderEvent(ctx context.Context, order entity.Order, action string) error
}

type KafkaPublisher struct {
	writer *kafka.Writer
}

func NewKafkaPublisher(writer *kafka.Writer) *KafkaPublisher {
	return &KafkaPublisher{writer: writer}
}

// PublishOrderEvent emits one message per mutation, keyed
// order-<action>-<id> so consumers can partition by event kind.
func (p *KafkaPublisher) PublishOrderEvent(ctx context.Context, order entity.Order, action string) error {
	payload, err := json.Marshal(order)
	if err != nil {
		return fmt.Errorf("marshal order event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(fmt.Sprintf("order-%s-%s", action, order.OrderID)),
		Value: payload,
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("write order event: %w", err)
	}
	return nil
}

// Noop is used when no brokers are configured.
type Noop struct{}

func (Noop) PublishOrderEvent(context.Context, entity.Order, string) error { return nil }
