package service

import (
	"context"

	"menulink/recorder-svc/internal/domain"
	"menulink/recorder-svc/internal/storage"

	"github.com/segmentio/kafka-go"
)

type StoreInterface interface {
	InsertOrder(ctx context.Context, event domain.OrderEvent) (int, error)
	RecordCounters(ctx context.Context, event domain.OrderEvent) error
}

// MessageReader is the part of *kafka.Reader the consumer uses.
type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

type ConsumerInterface interface {
	Start(ctx context.Context)
	ProcessOrder(ctx context.Context, event domain.OrderEvent)
}

var (
	_ StoreInterface    = (*storage.Store)(nil)
	_ MessageReader     = (*kafka.Reader)(nil)
	_ ConsumerInterface = (*Consumer)(nil)
)
