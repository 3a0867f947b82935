package service

import (
	"context"
	"encoding/json"
	"log"

	"github.com/segmentio/kafka-go"

	"restman/internal/domain"
)

// Consumer folds lifecycle events into the analytics keys read by the
// statistics endpoints.
type Consumer struct {
	Reader *kafka.Reader
	Store  AnalyticsStore
}

func NewConsumer(reader *kafka.Reader, store AnalyticsStore) *Consumer {
	return &Consumer{Reader: reader, Store: store}
}

func (c *Consumer) Start(ctx context.Context) {
	log.Println("[restman] starting lifecycle event consumer")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Printf("[restman] error reading event: %v", err)
			continue
		}

		var event domain.Event
		if err := json.Unmarshal(message.Value, &event); err != nil {
			log.Printf("[restman] error unmarshaling event: %v", err)
			continue
		}
		c.ProcessEvent(ctx, event)
	}
}

// ProcessEvent folds one event into the counters. An order is counted
// exactly once, at creation; a cancellation backs that count out again.
// Paid/updated events never touch the counters.
func (c *Consumer) ProcessEvent(ctx context.Context, event domain.Event) {
	switch event.Type {
	case domain.EventOrderCreated:
		day := event.Timestamp.Format("2006-01-02")
		if err := c.Store.RecordOrder(ctx, event.Lines, event.Amount, day); err != nil {
			log.Printf("[restman] error recording order %d: %v", event.OrderID, err)
		}
	case domain.EventOrderCancelled:
		day := event.Timestamp.Format("2006-01-02")
		if err := c.Store.ReverseOrder(ctx, event.Lines, event.Amount, day); err != nil {
			log.Printf("[restman] error reversing order %d: %v", event.OrderID, err)
		}
	case domain.EventNewReview:
		if err := c.Store.RecordReview(ctx, event.DishID, event.Rating); err != nil {
			log.Printf("[restman] error recording review for dish %d: %v", event.DishID, err)
		}
	}
}
