package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalog entry. Stock is informational only: order creation
// does not decrement it.
type Product struct {
	ID            uint            `json:"id" gorm:"primaryKey"`
	Name          string          `json:"name" gorm:"size:255;not null"`
	Description   string          `json:"description" gorm:"size:1024;not null"`
	Price         decimal.Decimal `json:"price" gorm:"type:decimal(20,2);not null"`
	ImageURL      string          `json:"image_url" gorm:"size:255"`
	StockQuantity int             `json:"stock_quantity" gorm:"default:0"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}
