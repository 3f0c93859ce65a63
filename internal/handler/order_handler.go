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

// OrderHandler handles order endpoints.
type OrderHandler struct {
	orderService service.OrderService
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(orderService service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// OrderItemRequest is one product line of an order.
type OrderItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Qty       int    `json:"qty" validate:"required,min=1"`
	Price     string `json:"price" validate:"required"`
}

// CreateOrderRequest represents an order creation request.
type CreateOrderRequest struct {
	Items []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
}

// Create godoc
// @Summary Create an order
// @Tags orders
// @Accept json
// @Produce json
// @Param x-auth-token header string true "Access token"
// @Param request body CreateOrderRequest true "Order items"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /orders [post]
func (h *OrderHandler) Create(c echo.Context) error {
	userID, err := authenticatedUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, apperrors.NewErrorResponse("Token is not valid"))
	}

	var req CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusUnauthorized, apperrors.NewErrorResponse("invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnauthorized, apperrors.FromValidationErrorsTitled(err))
	}

	items := make([]model.OrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		productID, err := uuid.Parse(item.ProductID)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, apperrors.NewErrorResponse("ProductID is Invalid"))
		}
		price, err := decimal.NewFromString(item.Price)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, apperrors.NewErrorResponse("Price is Invalid"))
		}
		items = append(items, model.OrderItem{
			ProductID: productID,
			Qty:       item.Qty,
			Price:     price,
		})
	}

	order, err := h.orderService.Create(c.Request().Context(), userID, items)
	if err != nil {
		return writeServiceError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"msg":   "Order Created",
		"order": order,
	})
}

// List godoc
// @Summary List the authenticated user's orders
// @Tags orders
// @Produce json
// @Param x-auth-token header string true "Access token"
// @Success 200 {object} map[string][]model.Order
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /orders [get]
func (h *OrderHandler) List(c echo.Context) error {
	userID, err := authenticatedUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, apperrors.NewErrorResponse("Token is not valid"))
	}

	orders, err := h.orderService.List(c.Request().Context(), userID)
	if err != nil {
		return writeServiceError(c, err)
	}

	return c.JSON(http.StatusOK, map[string][]model.Order{"orders": orders})
}
