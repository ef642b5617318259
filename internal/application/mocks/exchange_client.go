package mocks

import (
	"context"

	"github.com/DanielPopoola/coinledger/internal/application"
	"github.com/stretchr/testify/mock"
)

type MockExchangeClient struct {
	mock.Mock
}

func NewMockExchangeClient(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockExchangeClient {
	m := &MockExchangeClient{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockExchangeClient) MarketTicker(ctx context.Context, market string) (*application.ExchangeResponse, error) {
	args := m.Called(ctx, market)
	resp, _ := args.Get(0).(*application.ExchangeResponse)
	return resp, args.Error(1)
}

func (m *MockExchangeClient) ListMarkets(ctx context.Context) (*application.ExchangeResponse, error) {
	args := m.Called(ctx)
	resp, _ := args.Get(0).(*application.ExchangeResponse)
	return resp, args.Error(1)
}

var _ application.ExchangeClient = (*MockExchangeClient)(nil)
