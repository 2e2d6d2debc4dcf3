package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
)

type ValidationPublisher struct {
	writer *kafka.Writer
}

func NewValidationPublisher(brokers []string, topic string) *ValidationPublisher {
	return &ValidationPublisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Topic:    topic,
			Balancer: &kafka.LeastBytes{},
		},
	}
}

// PublishValidation keys by user so per-user events stay ordered within a
// partition.
func (p *ValidationPublisher) PublishValidation(event ValidationEvent) error {
	msg, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(context.Background(), kafka.Message{
		Key:   []byte(event.UserID),
		Value: msg,
		Time:  time.Now(),
	})
}

func (p *ValidationPublisher) Close() error {
	return p.writer.Close()
}
