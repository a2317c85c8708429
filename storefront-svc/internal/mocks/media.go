package mocks

import (
	"context"

	"menulink/storefront-svc/internal/media"

	"github.com/stretchr/testify/mock"
)

type Store struct {
	mock.Mock
}

func (_m *Store) Upload(ctx context.Context, publicID string, contentType string, data []byte) (media.Asset, error) {
	ret := _m.Called(ctx, publicID, contentType, data)

	var r0 media.Asset
	if v, ok := ret.Get(0).(media.Asset); ok {
		r0 = v
	}

	return r0, ret.Error(1)
}

func (_m *Store) Delete(ctx context.Context, publicID string) error {
	ret := _m.Called(ctx, publicID)

	return ret.Error(0)
}

func (_m *Store) PublicID(url string) (string, bool) {
	ret := _m.Called(url)

	var r0 string
	if v, ok := ret.Get(0).(string); ok {
		r0 = v
	}

	var r1 bool
	if v, ok := ret.Get(1).(bool); ok {
		r1 = v
	}

	return r0, r1
}

func NewStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *Store {
	m := &Store{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
