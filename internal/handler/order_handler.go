package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"ecomshop/internal/auth"
	apperr "ecomshop/internal/errors"
	"ecomshop/internal/model"
	"ecomshop/internal/service"
)

// OrderHandler handles order creation and listing endpoints.
type OrderHandler struct {
	orderService service.OrderService
	tokenService *auth.TokenService
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(orderService service.OrderService, tokenService *auth.TokenService) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		tokenService: tokenService,
	}
}

// OrderItemRequest is a submitted line item. Price is client-supplied and
// not re-checked against the catalog.
type OrderItemRequest struct {
	ProductID   uint            `json:"productId" validate:"required"`
	ProductName string          `json:"productName" validate:"required"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity" validate:"required,gt=0"`
}

// CreateOrderRequest represents an order creation request.
type CreateOrderRequest struct {
	PaymentMethod   string             `json:"paymentMethod" validate:"required"`
	ShippingAddress string             `json:"shippingAddress" validate:"required"`
	Items           []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
}

// OrderItemResponse is a line item in an order response.
type OrderItemResponse struct {
	ProductID   uint            `json:"productId"`
	ProductName string          `json:"productName"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// OrderResponse represents an order. Items is omitted in the listing of all
// orders, which intentionally uses a narrower shape than the per-user one.
type OrderResponse struct {
	ID              uint                `json:"id"`
	UserName        string              `json:"userName"`
	TotalAmount     decimal.Decimal     `json:"totalAmount"`
	Status          string              `json:"status"`
	PaymentMethod   string              `json:"paymentMethod"`
	ShippingAddress string              `json:"shippingAddress"`
	CreatedAt       time.Time           `json:"createdAt"`
	Items           []OrderItemResponse `json:"items,omitempty"`
}

// CreateOrder godoc
// @Summary Create an order for the authenticated user
// @Tags orders
// @Accept json
// @Produce json
// @Param request body CreateOrderRequest true "Order data"
// @Success 200 {object} OrderResponse
// @Failure 400 {object} errors.MessageResponse
// @Security BearerAuth
// @Router /orders/create [post]
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	username, ok := h.bearerUsername(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, apperr.MessageResponse{Message: "Invalid token"})
	}

	var req CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apperr.MessageResponse{Message: "Error creating order: invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apperr.MessageResponse{Message: "Error creating order: " + err.Error()})
	}

	total := decimal.Zero
	items := make([]model.OrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		subtotal := item.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		total = total.Add(subtotal)
		items = append(items, model.OrderItem{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Price:       item.Price,
			Quantity:    item.Quantity,
			Subtotal:    subtotal,
		})
	}

	order := &model.Order{
		UserName:        username,
		TotalAmount:     total,
		Status:          model.OrderStatusPaid,
		PaymentMethod:   req.PaymentMethod,
		ShippingAddress: req.ShippingAddress,
		Items:           items,
	}

	saved, err := h.orderService.CreateOrder(c.Request().Context(), order)
	if err != nil {
		return c.JSON(http.StatusBadRequest, apperr.MessageResponse{Message: "Error creating order: " + err.Error()})
	}

	return c.JSON(http.StatusOK, toOrderResponse(saved, true))
}

// MyOrders godoc
// @Summary List the authenticated user's orders, newest first
// @Tags orders
// @Produce json
// @Success 200 {array} OrderResponse
// @Failure 400 {object} errors.MessageResponse
// @Security BearerAuth
// @Router /orders/my-orders [get]
func (h *OrderHandler) MyOrders(c echo.Context) error {
	username, ok := h.bearerUsername(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, apperr.MessageResponse{Message: "Invalid token"})
	}

	orders, err := h.orderService.GetOrdersByUsername(c.Request().Context(), username)
	if err != nil {
		return c.JSON(http.StatusBadRequest, apperr.MessageResponse{Message: "Error fetching orders: " + err.Error()})
	}

	response := make([]OrderResponse, 0, len(orders))
	for i := range orders {
		response = append(response, toOrderResponse(&orders[i], true))
	}
	return c.JSON(http.StatusOK, response)
}

// AllOrders godoc
// @Summary List every order, without item details
// @Tags orders
// @Produce json
// @Success 200 {array} OrderResponse
// @Failure 400 {object} errors.MessageResponse
// @Router /orders/all [get]
func (h *OrderHandler) AllOrders(c echo.Context) error {
	orders, err := h.orderService.GetAllOrders(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusBadRequest, apperr.MessageResponse{Message: "Error fetching orders: " + err.Error()})
	}

	response := make([]OrderResponse, 0, len(orders))
	for i := range orders {
		response = append(response, toOrderResponse(&orders[i], false))
	}
	return c.JSON(http.StatusOK, response)
}

// bearerUsername pulls the username out of the Authorization header. Any
// failure (missing header, missing prefix, bad token) reads as not ok.
func (h *OrderHandler) bearerUsername(c echo.Context) (string, bool) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if !strings.HasPrefix(header, "Bearer ") {
		return "", false
	}
	username, err := h.tokenService.ExtractUsername(strings.TrimPrefix(header, "Bearer "))
	if err != nil {
		return "", false
	}
	return username, true
}

func toOrderResponse(order *model.Order, withItems bool) OrderResponse {
	response := OrderResponse{
		ID:              order.ID,
		UserName:        order.UserName,
		TotalAmount:     order.TotalAmount,
		Status:          order.Status,
		PaymentMethod:   order.PaymentMethod,
		ShippingAddress: order.ShippingAddress,
		CreatedAt:       order.CreatedAt,
	}
	if !withItems {
		return response
	}
	response.Items = make([]OrderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		response.Items = append(response.Items, OrderItemResponse{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Price:       item.Price,
			Quantity:    item.Quantity,
			Subtotal:    item.Subtotal,
		})
	}
	return response
}
