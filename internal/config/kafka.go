package config

import (
	"os"
	"strings"

	"github.com/segmentio/kafka-go"
)

// KafkaBrokerURLs reads the broker list from KAFKA_BROKERS. An empty
// list means event publishing is disabled.
func KafkaBrokerURLs() []string {
	var brokers []string
	for _, b := range strings.Split(os.Getenv("KAFKA_BROKERS"), ",") {
		b = strings.TrimSpace(b)
		if b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

func NewKafkaWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
	}
}
