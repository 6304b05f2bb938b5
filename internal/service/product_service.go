package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/shopspring/decimal"

	"ecomshop/internal/cache"
	"ecomshop/internal/model"
	"ecomshop/internal/repository"
)

const (
	catalogCacheKey = "catalog:products"
	catalogCacheTTL = 5 * time.Minute
)

// sampleCatalog is inserted on first run when the product table is empty.
var sampleCatalog = []model.Product{
	{Name: "Wireless Headphones", Description: "High-quality wireless headphones with noise cancellation", Price: decimal.RequireFromString("99.99"), ImageURL: "🎧", StockQuantity: 50},
	{Name: "Smartphone", Description: "Latest smartphone with advanced features and great camera", Price: decimal.RequireFromString("599.99"), ImageURL: "📱", StockQuantity: 30},
	{Name: "Laptop", Description: "Powerful laptop for work and gaming", Price: decimal.RequireFromString("999.99"), ImageURL: "💻", StockQuantity: 20},
	{Name: "Smart Watch", Description: "Feature-rich smartwatch with health monitoring", Price: decimal.RequireFromString("199.99"), ImageURL: "⌚", StockQuantity: 40},
	{Name: "Tablet", Description: "Versatile tablet for entertainment and work", Price: decimal.RequireFromString("399.99"), ImageURL: "📱", StockQuantity: 25},
	{Name: "Gaming Console", Description: "Next-gen gaming console with 4K support", Price: decimal.RequireFromString("499.99"), ImageURL: "🎮", StockQuantity: 15},
}

// ProductService serves the catalog and seeds it on first run.
type ProductService interface {
	List(ctx context.Context) ([]model.Product, error)
	SeedCatalog(ctx context.Context) error
}

type productService struct {
	productRepo repository.ProductRepository
	cache       *cache.Client
}

// NewProductService creates a new product service.
func NewProductService(productRepo repository.ProductRepository, cacheClient *cache.Client) ProductService {
	return &productService{
		productRepo: productRepo,
		cache:       cacheClient,
	}
}

// List returns the catalog, served from the cache when possible. Cache
// failures behave like misses, so redis being down only costs a DB read.
func (s *productService) List(ctx context.Context) ([]model.Product, error) {
	if data, err := s.cache.Get(ctx, catalogCacheKey); err == nil && data != nil {
		var products []model.Product
		if err := json.Unmarshal(data, &products); err == nil {
			return products, nil
		}
	}

	products, err := s.productRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	if payload, err := json.Marshal(products); err == nil {
		_ = s.cache.Set(ctx, catalogCacheKey, payload, catalogCacheTTL)
	}
	return products, nil
}

// SeedCatalog inserts the sample catalog if the product table is empty, and
// is a no-op otherwise.
func (s *productService) SeedCatalog(ctx context.Context) error {
	count, err := s.productRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("count products: %w", err)
	}
	if count > 0 {
		return nil
	}

	products := make([]model.Product, len(sampleCatalog))
	copy(products, sampleCatalog)
	if err := s.productRepo.CreateBatch(ctx, products); err != nil {
		return fmt.Errorf("seed products: %w", err)
	}

	_ = s.cache.Delete(ctx, catalogCacheKey)
	log.Printf("Sample products loaded successfully (%d products)", len(products))
	return nil
}
