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

// MockPaymentRepository is a mock implementation of PaymentRepository.
type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) Create(ctx context.Context, payment *model.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *MockPaymentRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Payment, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Payment), args.Error(1)
}

func TestPaymentService_Create(t *testing.T) {
	userID := uuid.New()
	orderID := uuid.New()
	amount := decimal.RequireFromString("44.98")

	t.Run("records payment and marks order paid", func(t *testing.T) {
		mockPayments := new(MockPaymentRepository)
		mockOrders := new(MockOrderRepository)
		mockOrders.On("FindByID", mock.Anything, orderID).Return(&model.Order{ID: orderID, UserID: userID}, nil)
		mockPayments.On("Create", mock.Anything, mock.AnythingOfType("*model.Payment")).Return(nil)
		mockOrders.On("UpdateStatus", mock.Anything, orderID, model.OrderStatusPaid).Return(nil)

		service := NewPaymentService(mockPayments, mockOrders)
		payment, err := service.Create(context.Background(), userID, orderID, amount, "stripe", "pi_123")

		assert.NoError(t, err)
		assert.Equal(t, orderID, payment.OrderID)
		assert.True(t, payment.Amount.Equal(amount))
		mockPayments.AssertExpectations(t)
		mockOrders.AssertExpectations(t)
	})

	t.Run("someone else's order reads as not found", func(t *testing.T) {
		mockPayments := new(MockPaymentRepository)
		mockOrders := new(MockOrderRepository)
		mockOrders.On("FindByID", mock.Anything, orderID).Return(&model.Order{ID: orderID, UserID: uuid.New()}, nil)

		service := NewPaymentService(mockPayments, mockOrders)
		payment, err := service.Create(context.Background(), userID, orderID, amount, "stripe", "pi_123")

		assert.ErrorIs(t, err, apperrors.ErrOrderNotFound)
		assert.Nil(t, payment)
		mockOrders.AssertExpectations(t)
	})

	t.Run("missing order", func(t *testing.T) {
		mockPayments := new(MockPaymentRepository)
		mockOrders := new(MockOrderRepository)
		mockOrders.On("FindByID", mock.Anything, orderID).Return(nil, gorm.ErrRecordNotFound)

		service := NewPaymentService(mockPayments, mockOrders)
		payment, err := service.Create(context.Background(), userID, orderID, amount, "stripe", "pi_123")

		assert.ErrorIs(t, err, apperrors.ErrOrderNotFound)
		assert.Nil(t, payment)
		mockOrders.AssertExpectations(t)
	})
}
