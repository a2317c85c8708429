package mocks

import (
	"context"

	"menulink/recorder-svc/internal/domain"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/mock"
)

type StoreInterface struct {
	mock.Mock
}

func (_m *StoreInterface) InsertOrder(ctx context.Context, event domain.OrderEvent) (int, error) {
	ret := _m.Called(ctx, event)

	var r0 int
	if v, ok := ret.Get(0).(int); ok {
		r0 = v
	}

	return r0, ret.Error(1)
}

func (_m *StoreInterface) RecordCounters(ctx context.Context, event domain.OrderEvent) error {
	ret := _m.Called(ctx, event)

	return ret.Error(0)
}

func NewStoreInterface(t interface {
	mock.TestingT
	Cleanup(func())
}) *StoreInterface {
	m := &StoreInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

type MessageReader struct {
	mock.Mock
}

func (_m *MessageReader) ReadMessage(ctx context.Context) (kafka.Message, error) {
	ret := _m.Called(ctx)

	var r0 kafka.Message
	if v, ok := ret.Get(0).(kafka.Message); ok {
		r0 = v
	}

	return r0, ret.Error(1)
}

func NewMessageReader(t interface {
	mock.TestingT
	Cleanup(func())
}) *MessageReader {
	m := &MessageReader{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
