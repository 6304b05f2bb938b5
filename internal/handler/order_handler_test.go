package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"ecomshop/internal/auth"
	"ecomshop/internal/model"
)

// MockOrderService is a mock implementation of service.OrderService. When no
// return order is configured, CreateOrder echoes back the aggregate it was
// given, the way the real service does.
type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) CreateOrder(ctx context.Context, order *model.Order) (*model.Order, error) {
	args := m.Called(ctx, order)
	if args.Error(1) != nil {
		return nil, args.Error(1)
	}
	if args.Get(0) == nil {
		return order, nil
	}
	return args.Get(0).(*model.Order), nil
}

func (m *MockOrderService) GetOrdersByUsername(ctx context.Context, username string) ([]model.Order, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Order), args.Error(1)
}

func (m *MockOrderService) GetAllOrders(ctx context.Context) ([]model.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Order), args.Error(1)
}

func TestOrderHandler_CreateOrder_ComputesTotals(t *testing.T) {
	tokenService := auth.NewTokenService("test-secret")
	token, err := tokenService.Issue("alice")
	assert.NoError(t, err)

	mockService := new(MockOrderService)
	mockService.On("CreateOrder", mock.Anything, mock.AnythingOfType("*model.Order")).Return(nil, nil)

	e := newTestEcho()
	e.POST("/api/orders/create", NewOrderHandler(mockService, tokenService).CreateOrder)

	body := `{
		"paymentMethod": "card",
		"shippingAddress": "1 Main St",
		"items": [
			{"productId": 1, "productName": "Wireless Headphones", "price": 10, "quantity": 2},
			{"productId": 2, "productName": "Smartphone", "price": 5, "quantity": 3}
		]
	}`
	rec := doJSON(e, http.MethodPost, "/api/orders/create", body, "Bearer "+token)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp OrderResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "alice", resp.UserName)
	assert.Equal(t, model.OrderStatusPaid, resp.Status)
	assert.Equal(t, "card", resp.PaymentMethod)
	assert.Equal(t, "1 Main St", resp.ShippingAddress)
	assert.True(t, resp.TotalAmount.Equal(decimal.RequireFromString("35")))

	assert.Len(t, resp.Items, 2)
	assert.True(t, resp.Items[0].Subtotal.Equal(decimal.RequireFromString("20")))
	assert.True(t, resp.Items[1].Subtotal.Equal(decimal.RequireFromString("15")))
	mockService.AssertExpectations(t)
}

func TestOrderHandler_CreateOrder_InvalidToken(t *testing.T) {
	tokenService := auth.NewTokenService("test-secret")
	mockService := new(MockOrderService)

	e := newTestEcho()
	e.POST("/api/orders/create", NewOrderHandler(mockService, tokenService).CreateOrder)

	tests := []struct {
		name   string
		header string
	}{
		{name: "missing header", header: ""},
		{name: "missing prefix", header: "some-token"},
		{name: "garbage token", header: "Bearer garbage"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(e, http.MethodPost, "/api/orders/create", `{"paymentMethod":"card","shippingAddress":"x","items":[{"productId":1,"productName":"p","price":1,"quantity":1}]}`, tt.header)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.JSONEq(t, `{"message":"Invalid token"}`, rec.Body.String())
		})
	}
	mockService.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything)
}

func TestOrderHandler_CreateOrder_ServiceFailure(t *testing.T) {
	tokenService := auth.NewTokenService("test-secret")
	token, err := tokenService.Issue("alice")
	assert.NoError(t, err)

	mockService := new(MockOrderService)
	mockService.On("CreateOrder", mock.Anything, mock.AnythingOfType("*model.Order")).
		Return(nil, errors.New("db down"))

	e := newTestEcho()
	e.POST("/api/orders/create", NewOrderHandler(mockService, tokenService).CreateOrder)

	body := `{"paymentMethod":"card","shippingAddress":"x","items":[{"productId":1,"productName":"p","price":1,"quantity":1}]}`
	rec := doJSON(e, http.MethodPost, "/api/orders/create", body, "Bearer "+token)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Error creating order: ")
	mockService.AssertExpectations(t)
}

func TestOrderHandler_MyOrders_IncludesItems(t *testing.T) {
	tokenService := auth.NewTokenService("test-secret")
	token, err := tokenService.Issue("alice")
	assert.NoError(t, err)

	now := time.Now()
	orders := []model.Order{
		{
			ID: 2, UserName: "alice", TotalAmount: decimal.RequireFromString("35"),
			Status: model.OrderStatusPaid, CreatedAt: now,
			Items: []model.OrderItem{
				{ProductID: 1, ProductName: "Laptop", Price: decimal.RequireFromString("10"), Quantity: 2, Subtotal: decimal.RequireFromString("20")},
			},
		},
		{
			ID: 1, UserName: "alice", TotalAmount: decimal.RequireFromString("5"),
			Status: model.OrderStatusPaid, CreatedAt: now.Add(-time.Hour),
			Items: []model.OrderItem{
				{ProductID: 2, ProductName: "Tablet", Price: decimal.RequireFromString("5"), Quantity: 1, Subtotal: decimal.RequireFromString("5")},
			},
		},
	}

	mockService := new(MockOrderService)
	mockService.On("GetOrdersByUsername", mock.Anything, "alice").Return(orders, nil)

	e := newTestEcho()
	e.GET("/api/orders/my-orders", NewOrderHandler(mockService, tokenService).MyOrders)

	rec := doJSON(e, http.MethodGet, "/api/orders/my-orders", "", "Bearer "+token)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp []OrderResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
	// Newest first, only alice's orders, items included
	assert.Equal(t, uint(2), resp[0].ID)
	assert.Equal(t, uint(1), resp[1].ID)
	for _, order := range resp {
		assert.Equal(t, "alice", order.UserName)
		assert.NotEmpty(t, order.Items)
	}
	mockService.AssertExpectations(t)
}

func TestOrderHandler_AllOrders_OmitsItems(t *testing.T) {
	orders := []model.Order{
		{
			ID: 1, UserName: "bob", TotalAmount: decimal.RequireFromString("20"),
			Status: model.OrderStatusPaid,
			Items: []model.OrderItem{
				{ProductID: 1, ProductName: "Laptop", Price: decimal.RequireFromString("10"), Quantity: 2, Subtotal: decimal.RequireFromString("20")},
			},
		},
	}

	mockService := new(MockOrderService)
	mockService.On("GetAllOrders", mock.Anything).Return(orders, nil)

	e := newTestEcho()
	e.GET("/api/orders/all", NewOrderHandler(mockService, auth.NewTokenService("test-secret")).AllOrders)

	// No Authorization header at all: this listing is unauthenticated
	rec := doJSON(e, http.MethodGet, "/api/orders/all", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp []OrderResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
	assert.Empty(t, resp[0].Items)
	assert.False(t, strings.Contains(rec.Body.String(), `"items"`))
	mockService.AssertExpectations(t)
}
