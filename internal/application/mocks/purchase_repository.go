package mocks

import (
	"context"

	"github.com/DanielPopoola/coinledger/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockPurchaseRepository struct {
	mock.Mock
}

// NewMockPurchaseRepository registers AssertExpectations as a cleanup on t.
func NewMockPurchaseRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPurchaseRepository {
	m := &MockPurchaseRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockPurchaseRepository) Create(ctx context.Context, market string, fields map[string]any) (*domain.Purchase, error) {
	args := m.Called(ctx, market, fields)
	p, _ := args.Get(0).(*domain.Purchase)
	return p, args.Error(1)
}

func (m *MockPurchaseRepository) FindByID(ctx context.Context, id string) (*domain.Purchase, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*domain.Purchase)
	return p, args.Error(1)
}

func (m *MockPurchaseRepository) FindAll(ctx context.Context) ([]*domain.Purchase, error) {
	args := m.Called(ctx)
	ps, _ := args.Get(0).([]*domain.Purchase)
	return ps, args.Error(1)
}

func (m *MockPurchaseRepository) FindByMarket(ctx context.Context, market string) ([]*domain.Purchase, error) {
	args := m.Called(ctx, market)
	ps, _ := args.Get(0).([]*domain.Purchase)
	return ps, args.Error(1)
}

func (m *MockPurchaseRepository) Update(ctx context.Context, id string, fields map[string]any) (int64, error) {
	args := m.Called(ctx, id, fields)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPurchaseRepository) Delete(ctx context.Context, id string) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPurchaseRepository) Markets(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	markets, _ := args.Get(0).([]string)
	return markets, args.Error(1)
}

var _ domain.PurchaseRepository = (*MockPurchaseRepository)(nil)
