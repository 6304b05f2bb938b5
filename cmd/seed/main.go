package main

import (
	"context"
	"log"

	"ecomshop/internal/cache"
	"ecomshop/internal/config"
	"ecomshop/internal/db"
	"ecomshop/internal/model"
	"ecomshop/internal/repository"
	"ecomshop/internal/service"
)

func main() {
	log.Println("Starting seed script...")

	// Load configuration
	cfg := config.Load()

	// Connect to database
	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	// Run migrations to ensure schema is up to date
	if err := gormDB.AutoMigrate(&model.Product{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	productService := service.NewProductService(repository.NewProductRepository(gormDB), cacheClient)

	// No-op when the catalog already has products
	if err := productService.SeedCatalog(context.Background()); err != nil {
		log.Fatalf("Failed to seed catalog: %v", err)
	}
	log.Println("Seed script finished")
}
