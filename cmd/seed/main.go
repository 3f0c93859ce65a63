package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"shopkart/internal/config"
	"shopkart/internal/db"
	"shopkart/internal/model"
	"shopkart/internal/repository"
)

// SeedProduct mirrors one entry of the seed file.
type SeedProduct struct {
	Name        string `json:"name"`
	Brand       string `json:"brand"`
	Price       string `json:"price"`
	Qty         int    `json:"qty"`
	Image       string `json:"image"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Usage       string `json:"usage"`
}

func main() {
	seedFile := flag.String("file", "seed/products.json", "path to the products seed file")
	flag.Parse()

	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.Product{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	products, err := loadSeedFile(*seedFile)
	if err != nil {
		log.Fatalf("Failed to load seed file: %v", err)
	}
	log.Printf("Loaded %d products from %s", len(products), *seedFile)

	modelProducts := make([]model.Product, 0, len(products))
	skipped := 0
	for _, item := range products {
		price, err := decimal.NewFromString(item.Price)
		if err != nil {
			log.Printf("Skipping product %q with invalid price: %s", item.Name, item.Price)
			skipped++
			continue
		}

		modelProducts = append(modelProducts, model.Product{
			Name:        item.Name,
			Brand:       item.Brand,
			Price:       price,
			Qty:         item.Qty,
			Image:       item.Image,
			Category:    item.Category,
			Description: item.Description,
			Usage:       item.Usage,
		})
	}

	if skipped > 0 {
		log.Printf("Skipped %d invalid products", skipped)
	}

	productRepo := repository.NewProductRepository(gormDB)
	ctx := context.Background()

	log.Println("Seeding products into database...")
	seeded, updated, err := seedProducts(ctx, productRepo, modelProducts)
	if err != nil {
		log.Fatalf("Failed to seed products: %v", err)
	}

	log.Printf("Seed completed successfully!")
	log.Printf("  - New products created: %d", seeded)
	log.Printf("  - Existing products updated: %d", updated)
}

// loadSeedFile reads and parses the seed file.
func loadSeedFile(path string) ([]SeedProduct, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}

	var products []SeedProduct
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	return products, nil
}

// seedProducts creates new products or refreshes existing ones, matched by name.
func seedProducts(ctx context.Context, repo repository.ProductRepository, products []model.Product) (seeded int, updated int, err error) {
	for i := range products {
		product := products[i]

		existing, err := repo.FindByName(ctx, product.Name)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return seeded, updated, fmt.Errorf("error checking product %q: %w", product.Name, err)
		}

		if existing != nil {
			existing.Brand = product.Brand
			existing.Price = product.Price
			existing.Qty = product.Qty
			existing.Image = product.Image
			existing.Category = product.Category
			existing.Description = product.Description
			existing.Usage = product.Usage
			if err := repo.Update(ctx, existing); err != nil {
				return seeded, updated, fmt.Errorf("error updating product %q: %w", product.Name, err)
			}
			updated++
		} else {
			if err := repo.Create(ctx, &product); err != nil {
				return seeded, updated, fmt.Errorf("error creating product %q: %w", product.Name, err)
			}
			seeded++
		}
	}

	return seeded, updated, nil
}
