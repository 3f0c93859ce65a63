package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"shopkart/internal/auth"
	apperrors "shopkart/internal/errors"
	"shopkart/internal/model"
	"shopkart/internal/service"
)

// UserHandler handles profile endpoints.
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// AddressRequest carries the full replacement address. Every field is
// required; the stored address is swapped out as a whole.
type AddressRequest struct {
	Flat     string `json:"flat" validate:"required"`
	Street   string `json:"street" validate:"required"`
	Landmark string `json:"landmark" validate:"required"`
	City     string `json:"city" validate:"required"`
	State    string `json:"state" validate:"required"`
	Country  string `json:"country" validate:"required"`
	Pin      string `json:"pin" validate:"required"`
	Mobile   string `json:"mobile" validate:"required"`
}

// Me godoc
// @Summary Get the authenticated user
// @Tags users
// @Produce json
// @Param x-auth-token header string true "Access token"
// @Success 200 {object} map[string]model.User
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /users [get]
func (h *UserHandler) Me(c echo.Context) error {
	userID, err := authenticatedUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, apperrors.NewErrorResponse("Token is not valid"))
	}

	user, err := h.userService.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return writeServiceError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]*model.User{"user": user})
}

// UpdateAddress godoc
// @Summary Replace the authenticated user's address
// @Tags users
// @Accept json
// @Produce json
// @Param x-auth-token header string true "Access token"
// @Param request body AddressRequest true "Full address"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /users/address [post]
func (h *UserHandler) UpdateAddress(c echo.Context) error {
	userID, err := authenticatedUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, apperrors.NewErrorResponse("Token is not valid"))
	}

	var req AddressRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusUnauthorized, apperrors.NewErrorResponse("invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnauthorized, apperrors.FromValidationErrorsTitled(err))
	}

	address := model.Address{
		Flat:     req.Flat,
		Street:   req.Street,
		Landmark: req.Landmark,
		City:     req.City,
		State:    req.State,
		Country:  req.Country,
		Pin:      req.Pin,
		Mobile:   req.Mobile,
	}

	user, err := h.userService.UpdateAddress(c.Request().Context(), userID, address)
	if err != nil {
		return writeServiceError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"msg":  "Address Update Success",
		"user": user,
	})
}

// authenticatedUserID resolves the user id the auth gate attached to the
// request context.
func authenticatedUserID(c echo.Context) (uuid.UUID, error) {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return uuid.Nil, apperrors.ErrUserNotFound
	}
	return uuid.Parse(identity.ID)
}
