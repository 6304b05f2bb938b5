package main

import (
	"context"
	"log"
	"net/http"

	_ "ecomshop/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"ecomshop/internal/auth"
	"ecomshop/internal/cache"
	"ecomshop/internal/config"
	"ecomshop/internal/db"
	"ecomshop/internal/handler"
	"ecomshop/internal/model"
	"ecomshop/internal/repository"
	"ecomshop/internal/router"
	"ecomshop/internal/service"
)

// @title E-Commerce API
// @version 1.0
// @description E-commerce backend with user registration, product catalog and orders.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Product{},
		&model.Order{},
		&model.OrderItem{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	productRepo := repository.NewProductRepository(gormDB)
	orderRepo := repository.NewOrderRepository(gormDB)

	// Initialize auth components
	tokenService := auth.NewTokenService(cfg.JWTSecret)

	// Initialize services
	userService := service.NewUserService(userRepo)
	productService := service.NewProductService(productRepo, cacheClient)
	orderService := service.NewOrderService(orderRepo)

	// Seed the sample catalog on first run
	if err := productService.SeedCatalog(context.Background()); err != nil {
		log.Fatalf("seed catalog: %v", err)
	}

	// Initialize handlers
	authHandler := handler.NewAuthHandler(userService, tokenService)
	orderHandler := handler.NewOrderHandler(orderService, tokenService)
	productHandler := handler.NewProductHandler(productService)
	userHandler := handler.NewUserHandler(userService)

	// Register routes
	router.Register(
		e,
		cfg,
		authHandler,
		orderHandler,
		productHandler,
		userHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
