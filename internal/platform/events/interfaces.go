package events

import (
	"context"

	"github.com/segmentio/kafka-go"
)

// Publisher handles publishing debt events to the events topic
type Publisher interface {
	Publish(ctx context.Context, key string, value interface{}) error
	Close() error
}

// KafkaWriter wraps kafka.Writer methods for testing
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}
