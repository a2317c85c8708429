package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"menulink/recorder-svc/internal/domain"
)

type Consumer struct {
	Reader MessageReader
	Store  StoreInterface
	Now    func() time.Time
}

func NewConsumer(reader MessageReader, store StoreInterface) *Consumer {
	return &Consumer{
		Reader: reader,
		Store:  store,
		Now:    time.Now,
	}
}

// Start reads until ctx is cancelled. Bad messages are logged and skipped.
func (c *Consumer) Start(ctx context.Context) {
	log.Println("Starting Order Recorder consumer...")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Println("Order Recorder consumer stopped")
				return
			}
			log.Printf("Error reading message: %v", err)
			continue
		}

		var event domain.OrderEvent
		if err := json.Unmarshal(message.Value, &event); err != nil {
			log.Printf("Error unmarshaling message: %v", err)
			continue
		}

		c.ProcessOrder(ctx, event)
	}
}

// ProcessOrder records a dispatched order. Counters are only bumped once the
// row is stored.
func (c *Consumer) ProcessOrder(ctx context.Context, event domain.OrderEvent) {
	if event.Type != domain.EventOrderDispatched {
		return
	}
	if event.Timestamp.IsZero() && c.Now != nil {
		event.Timestamp = c.Now()
	}
	log.Printf("Processing order: RestaurantID=%d, Items=%d, Total=%.2f",
		event.RestaurantID, len(event.Items), event.Total)

	id, err := c.Store.InsertOrder(ctx, event)
	if err != nil {
		log.Printf("Error inserting order: %v", err)
		return
	}

	if err := c.Store.RecordCounters(ctx, event); err != nil {
		log.Printf("Error updating order counters: %v", err)
		return
	}

	log.Printf("Successfully recorded order %d for restaurant %d", id, event.RestaurantID)
}
