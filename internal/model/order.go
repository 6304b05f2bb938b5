package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatusPaid is the only status an order is created with; there is no
// payment gateway behind it.
const OrderStatusPaid = "PAID"

// Order is the order header. UserName is denormalized from the token at
// creation time rather than a foreign key to User.
type Order struct {
	ID              uint            `json:"id" gorm:"primaryKey"`
	UserName        string          `json:"user_name" gorm:"size:100;not null;index"`
	TotalAmount     decimal.Decimal `json:"total_amount" gorm:"type:decimal(20,2);not null"`
	Status          string          `json:"status" gorm:"type:varchar(20);not null"`
	PaymentMethod   string          `json:"payment_method" gorm:"size:100"`
	ShippingAddress string          `json:"shipping_address" gorm:"size:512"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`

	// Relations
	Items []OrderItem `json:"items" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// OrderItem is a line item owned by an Order. Product name and price are
// snapshotted at order time so later catalog edits do not rewrite history.
type OrderItem struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	OrderID     uint            `json:"order_id" gorm:"not null;index"`
	ProductID   uint            `json:"product_id" gorm:"not null"`
	ProductName string          `json:"product_name" gorm:"size:255;not null"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(20,2);not null"`
	Quantity    int             `json:"quantity" gorm:"not null"`
	Subtotal    decimal.Decimal `json:"subtotal" gorm:"type:decimal(20,2);not null"`
}
