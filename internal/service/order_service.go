package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"shopkart/internal/model"
	"shopkart/internal/repository"
)

// OrderService handles order persistence for authenticated users.
type OrderService interface {
	Create(ctx context.Context, userID uuid.UUID, items []model.OrderItem) (*model.Order, error)
	List(ctx context.Context, userID uuid.UUID) ([]model.Order, error)
}

type orderService struct {
	repo repository.OrderRepository
}

// NewOrderService creates a new order service.
func NewOrderService(repo repository.OrderRepository) OrderService {
	return &orderService{repo: repo}
}

// Create stores an order for the user. The total is always computed
// server-side from the item lines, never taken from the request.
func (s *orderService) Create(ctx context.Context, userID uuid.UUID, items []model.OrderItem) (*model.Order, error) {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Qty))))
	}

	order := &model.Order{
		UserID: userID,
		Items:  items,
		Total:  total,
		Status: model.OrderStatusPending,
	}

	if err := s.repo.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}
	return order, nil
}

// List returns the user's orders, newest first.
func (s *orderService) List(ctx context.Context, userID uuid.UUID) ([]model.Order, error) {
	return s.repo.ListByUser(ctx, userID)
}
