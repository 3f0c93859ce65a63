package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "shopkart/internal/errors"
	"shopkart/internal/model"
	"shopkart/internal/repository"
)

// PaymentService records payments against a user's orders.
type PaymentService interface {
	Create(ctx context.Context, userID, orderID uuid.UUID, amount decimal.Decimal, provider, reference string) (*model.Payment, error)
	List(ctx context.Context, userID uuid.UUID) ([]model.Payment, error)
}

type paymentService struct {
	paymentRepo repository.PaymentRepository
	orderRepo   repository.OrderRepository
}

// NewPaymentService creates a new payment service.
func NewPaymentService(paymentRepo repository.PaymentRepository, orderRepo repository.OrderRepository) PaymentService {
	return &paymentService{
		paymentRepo: paymentRepo,
		orderRepo:   orderRepo,
	}
}

// Create records a payment for one of the user's orders and marks the order
// paid. An order belonging to another user reads as not found.
func (s *paymentService) Create(ctx context.Context, userID, orderID uuid.UUID, amount decimal.Decimal, provider, reference string) (*model.Payment, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrderNotFound
		}
		return nil, err
	}
	if order.UserID != userID {
		return nil, apperrors.ErrOrderNotFound
	}

	payment := &model.Payment{
		OrderID:   orderID,
		UserID:    userID,
		Amount:    amount,
		Provider:  provider,
		Reference: reference,
	}

	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, fmt.Errorf("create payment: %w", err)
	}

	if err := s.orderRepo.UpdateStatus(ctx, orderID, model.OrderStatusPaid); err != nil {
		return nil, fmt.Errorf("mark order paid: %w", err)
	}

	return payment, nil
}

// List returns the user's payments, newest first.
func (s *paymentService) List(ctx context.Context, userID uuid.UUID) ([]model.Payment, error) {
	return s.paymentRepo.ListByUser(ctx, userID)
}
