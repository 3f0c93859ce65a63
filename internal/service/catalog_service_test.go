package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "shopkart/internal/errors"
	"shopkart/internal/model"
)

// MockProductRepository is a mock implementation of ProductRepository.
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Create(ctx context.Context, product *model.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Update(ctx context.Context, product *model.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductRepository) FindByName(ctx context.Context, name string) (*model.Product, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductRepository) ListByCategory(ctx context.Context, category string) ([]model.Product, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockProductRepository) List(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func TestCatalogService_Upload(t *testing.T) {
	mockRepo := new(MockProductRepository)
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Product")).Return(nil)

	service := NewCatalogService(mockRepo, nil)
	product := &model.Product{
		Name:     "Classic Oxford Shirt",
		Brand:    "Northline",
		Price:    decimal.RequireFromString("39.99"),
		Qty:      10,
		Category: model.CategoryMen,
	}

	created, err := service.Upload(context.Background(), product)
	assert.NoError(t, err)
	assert.Equal(t, product, created)
	mockRepo.AssertExpectations(t)
}

func TestCatalogService_ListByCategory(t *testing.T) {
	mockRepo := new(MockProductRepository)
	mockRepo.On("ListByCategory", mock.Anything, model.CategoryKids).Return([]model.Product{
		{Name: "Dino Graphic Tee", Category: model.CategoryKids},
	}, nil)

	service := NewCatalogService(mockRepo, nil)
	products, err := service.ListByCategory(context.Background(), model.CategoryKids)

	assert.NoError(t, err)
	assert.Len(t, products, 1)
	assert.Equal(t, model.CategoryKids, products[0].Category)
	mockRepo.AssertExpectations(t)
}

func TestCatalogService_Get_NotFound(t *testing.T) {
	productID := uuid.New()

	mockRepo := new(MockProductRepository)
	mockRepo.On("FindByID", mock.Anything, productID).Return(nil, gorm.ErrRecordNotFound)

	service := NewCatalogService(mockRepo, nil)
	product, err := service.Get(context.Background(), productID)

	assert.ErrorIs(t, err, apperrors.ErrProductNotFound)
	assert.Nil(t, product)
	mockRepo.AssertExpectations(t)
}
