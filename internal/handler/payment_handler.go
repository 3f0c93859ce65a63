package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	apperrors "shopkart/internal/errors"
	"shopkart/internal/model"
	"shopkart/internal/service"
)

// PaymentHandler handles payment endpoints.
type PaymentHandler struct {
	paymentService service.PaymentService
}

// NewPaymentHandler creates a new payment handler.
func NewPaymentHandler(paymentService service.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// CreatePaymentRequest represents a payment record request.
type CreatePaymentRequest struct {
	OrderID   string `json:"order_id" validate:"required"`
	Amount    string `json:"amount" validate:"required"`
	Provider  string `json:"provider" validate:"required"`
	Reference string `json:"reference" validate:"required"`
}

// Create godoc
// @Summary Record a payment for an order
// @Tags payments
// @Accept json
// @Produce json
// @Param x-auth-token header string true "Access token"
// @Param request body CreatePaymentRequest true "Payment data"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /payments [post]
func (h *PaymentHandler) Create(c echo.Context) error {
	userID, err := authenticatedUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, apperrors.NewErrorResponse("Token is not valid"))
	}

	var req CreatePaymentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusUnauthorized, apperrors.NewErrorResponse("invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnauthorized, apperrors.FromValidationErrorsTitled(err))
	}

	orderID, err := uuid.Parse(req.OrderID)
	if err != nil {
		return writeServiceError(c, apperrors.ErrOrderNotFound)
	}
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, apperrors.NewErrorResponse("Amount is Invalid"))
	}

	payment, err := h.paymentService.Create(c.Request().Context(), userID, orderID, amount, req.Provider, req.Reference)
	if err != nil {
		return writeServiceError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"msg":     "Payment Recorded",
		"payment": payment,
	})
}

// List godoc
// @Summary List the authenticated user's payments
// @Tags payments
// @Produce json
// @Param x-auth-token header string true "Access token"
// @Success 200 {object} map[string][]model.Payment
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /payments [get]
func (h *PaymentHandler) List(c echo.Context) error {
	userID, err := authenticatedUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, apperrors.NewErrorResponse("Token is not valid"))
	}

	payments, err := h.paymentService.List(c.Request().Context(), userID)
	if err != nil {
		return writeServiceError(c, err)
	}

	return c.JSON(http.StatusOK, map[string][]model.Payment{"payments": payments})
}
