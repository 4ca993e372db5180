package service

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"foodcourt/internal/domain"

	"github.com/segmentio/kafka-go"
)

// RevenueConsumer reads paid-order events from Kafka and folds them into
// the per-hotel revenue counters shown on the owner dashboard.
type RevenueConsumer struct {
	Reader  *kafka.Reader
	Revenue RevenueStore
}

func NewRevenueConsumer(reader *kafka.Reader, revenue RevenueStore) *RevenueConsumer {
	return &RevenueConsumer{
		Reader:  reader,
		Revenue: revenue,
	}
}

func (c *RevenueConsumer) Start(ctx context.Context) {
	log.Println("Starting revenue consumer...")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			log.Printf("Error reading message: %v", err)
			continue
		}

		var msg domain.OrderEvent
		if err := json.Unmarshal(message.Value, &msg); err != nil {
			log.Printf("Error unmarshaling message: %v", err)
			continue
		}

		if msg.Type == "order_paid" {
			c.ProcessOrder(ctx, msg)
		}
	}
}

func (c *RevenueConsumer) ProcessOrder(ctx context.Context, msg domain.OrderEvent) {
	if msg.Type != "order_paid" {
		return
	}
	log.Printf("Processing paid order: OrderID=%s, Hotel=%s, Total=%.2f",
		msg.OrderID, msg.Hotel, msg.Total)

	if err := c.Revenue.AddRevenue(ctx, msg.Hotel, msg.Total); err != nil {
		log.Printf("Error updating revenue for %s: %v", msg.Hotel, err)
		return
	}

	log.Printf("Successfully recorded revenue for order %s", msg.OrderID)
}
