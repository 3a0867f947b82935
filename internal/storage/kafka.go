package storage

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/segmentio/kafka-go"

	"restman/internal/domain"
)

// KafkaPublisher writes lifecycle events to the event topic. Events for
// the same order key land in order.
type KafkaPublisher struct {
	Writer *kafka.Writer
}

func NewKafkaPublisher(writer *kafka.Writer) *KafkaPublisher {
	return &KafkaPublisher{Writer: writer}
}

func (p *KafkaPublisher) Publish(ctx context.Context, event domain.Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	key := event.OrderID
	if key == 0 {
		key = event.BookingID
	}
	if key == 0 {
		key = event.DishID
	}
	return p.Writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.Itoa(key)),
		Value: payload,
	})
}
