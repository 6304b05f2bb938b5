package service

import (
	"context"
	"fmt"

	"ecomshop/internal/model"
	"ecomshop/internal/repository"
)

// OrderService persists and lists order aggregates. It stores orders as
// given by the caller: totals and subtotals are computed at the endpoint
// layer and are not re-derived here.
type OrderService interface {
	CreateOrder(ctx context.Context, order *model.Order) (*model.Order, error)
	GetOrdersByUsername(ctx context.Context, username string) ([]model.Order, error)
	GetAllOrders(ctx context.Context) ([]model.Order, error)
}

type orderService struct {
	orderRepo repository.OrderRepository
}

// NewOrderService creates a new order service.
func NewOrderService(orderRepo repository.OrderRepository) OrderService {
	return &orderService{orderRepo: orderRepo}
}

// CreateOrder persists the order and its items as one aggregate.
func (s *orderService) CreateOrder(ctx context.Context, order *model.Order) (*model.Order, error) {
	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}
	return order, nil
}

// GetOrdersByUsername returns the user's orders, newest first.
func (s *orderService) GetOrdersByUsername(ctx context.Context, username string) ([]model.Order, error) {
	orders, err := s.orderRepo.FindByUserName(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("orders for %s: %w", username, err)
	}
	return orders, nil
}

// GetAllOrders returns every order, newest first. There is no pagination.
func (s *orderService) GetAllOrders(ctx context.Context) ([]model.Order, error) {
	orders, err := s.orderRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}
