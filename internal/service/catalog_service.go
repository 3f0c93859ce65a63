package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"shopkart/internal/cache"
	apperrors "shopkart/internal/errors"
	"shopkart/internal/model"
	"shopkart/internal/repository"
)

// CatalogService handles the product catalog.
type CatalogService interface {
	Upload(ctx context.Context, product *model.Product) (*model.Product, error)
	ListByCategory(ctx context.Context, category string) ([]model.Product, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Product, error)
}

type catalogService struct {
	repo  repository.ProductRepository
	cache *cache.Client
}

// NewCatalogService builds a CatalogService with repository and cache.
func NewCatalogService(repo repository.ProductRepository, cache *cache.Client) CatalogService {
	return &catalogService{repo: repo, cache: cache}
}

// Upload persists a new product and drops the cached listing for its category.
func (s *catalogService) Upload(ctx context.Context, product *model.Product) (*model.Product, error) {
	if err := s.repo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	_ = s.cache.Delete(ctx, cache.CategoryKey(product.Category))
	return product, nil
}

// ListByCategory returns the products of one storefront category, cached for
// a few minutes.
func (s *catalogService) ListByCategory(ctx context.Context, category string) ([]model.Product, error) {
	if data, _ := s.cache.Get(ctx, cache.CategoryKey(category)); data != nil {
		var cached []model.Product
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	products, err := s.repo.ListByCategory(ctx, category)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(products); err == nil {
		_ = s.cache.Set(ctx, cache.CategoryKey(category), payload, cache.DefaultTTL)
	}
	return products, nil
}

// Get returns one product by id.
func (s *catalogService) Get(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProductNotFound
		}
		return nil, err
	}
	return product, nil
}
