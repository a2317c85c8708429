package mocks

import (
	"context"

	"menulink/identity"

	"github.com/stretchr/testify/mock"
)

type Provider struct {
	mock.Mock
}

func (_m *Provider) SignUp(ctx context.Context, email string, password string, redirectTo string) (*identity.SignUpResult, error) {
	ret := _m.Called(ctx, email, password, redirectTo)

	var r0 *identity.SignUpResult
	if v, ok := ret.Get(0).(*identity.SignUpResult); ok {
		r0 = v
	}

	return r0, ret.Error(1)
}

func (_m *Provider) SignIn(ctx context.Context, email string, password string) (*identity.Tokens, error) {
	ret := _m.Called(ctx, email, password)

	var r0 *identity.Tokens
	if v, ok := ret.Get(0).(*identity.Tokens); ok {
		r0 = v
	}

	return r0, ret.Error(1)
}

func (_m *Provider) SignOut(ctx context.Context, accessToken string) error {
	ret := _m.Called(ctx, accessToken)

	return ret.Error(0)
}

func (_m *Provider) User(ctx context.Context, accessToken string) (*identity.User, error) {
	ret := _m.Called(ctx, accessToken)

	var r0 *identity.User
	if v, ok := ret.Get(0).(*identity.User); ok {
		r0 = v
	}

	return r0, ret.Error(1)
}

func NewProvider(t interface {
	mock.TestingT
	Cleanup(func())
}) *Provider {
	m := &Provider{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
