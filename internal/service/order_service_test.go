package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"ecomshop/internal/model"
)

// MockOrderRepository is a mock implementation of OrderRepository.
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Create(ctx context.Context, order *model.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) FindByUserName(ctx context.Context, username string) ([]model.Order, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Order), args.Error(1)
}

func (m *MockOrderRepository) FindAll(ctx context.Context) ([]model.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Order), args.Error(1)
}

func TestOrderService_CreateOrder(t *testing.T) {
	order := &model.Order{
		UserName:    "alice",
		TotalAmount: decimal.RequireFromString("35"),
		Status:      model.OrderStatusPaid,
		Items: []model.OrderItem{
			{ProductID: 1, ProductName: "Laptop", Price: decimal.RequireFromString("10"), Quantity: 2, Subtotal: decimal.RequireFromString("20")},
		},
	}

	mockRepo := new(MockOrderRepository)
	mockRepo.On("Create", mock.Anything, order).Return(nil)

	service := NewOrderService(mockRepo)
	saved, err := service.CreateOrder(context.Background(), order)

	assert.NoError(t, err)
	assert.Equal(t, order, saved)
	mockRepo.AssertExpectations(t)
}

func TestOrderService_CreateOrder_RepoError(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Order")).Return(errors.New("db down"))

	service := NewOrderService(mockRepo)
	saved, err := service.CreateOrder(context.Background(), &model.Order{UserName: "alice"})

	assert.Error(t, err)
	assert.Nil(t, saved)
	mockRepo.AssertExpectations(t)
}

func TestOrderService_GetOrdersByUsername(t *testing.T) {
	now := time.Now()
	newest := model.Order{ID: 2, UserName: "alice", CreatedAt: now}
	oldest := model.Order{ID: 1, UserName: "alice", CreatedAt: now.Add(-time.Hour)}

	mockRepo := new(MockOrderRepository)
	mockRepo.On("FindByUserName", mock.Anything, "alice").Return([]model.Order{newest, oldest}, nil)

	service := NewOrderService(mockRepo)
	orders, err := service.GetOrdersByUsername(context.Background(), "alice")

	assert.NoError(t, err)
	assert.Len(t, orders, 2)
	// Repository ordering (newest first) is passed through untouched
	assert.Equal(t, uint(2), orders[0].ID)
	assert.Equal(t, uint(1), orders[1].ID)
	assert.True(t, orders[0].CreatedAt.After(orders[1].CreatedAt))
	mockRepo.AssertExpectations(t)
}

func TestOrderService_GetAllOrders(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	mockRepo.On("FindAll", mock.Anything).Return([]model.Order{{ID: 3, UserName: "bob"}}, nil)

	service := NewOrderService(mockRepo)
	orders, err := service.GetAllOrders(context.Background())

	assert.NoError(t, err)
	assert.Len(t, orders, 1)
	mockRepo.AssertExpectations(t)
}
