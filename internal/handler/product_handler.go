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

// ProductHandler handles catalog endpoints.
type ProductHandler struct {
	catalogService service.CatalogService
}

// NewProductHandler creates a new product handler.
func NewProductHandler(catalogService service.CatalogService) *ProductHandler {
	return &ProductHandler{catalogService: catalogService}
}

// UploadProductRequest represents a product upload.
type UploadProductRequest struct {
	Name        string `json:"name" validate:"required"`
	Brand       string `json:"brand" validate:"required"`
	Price       string `json:"price" validate:"required"`
	Qty         int    `json:"qty" validate:"required"`
	Image       string `json:"image" validate:"required"`
	Category    string `json:"category" validate:"required"`
	Description string `json:"description" validate:"required"`
	Usage       string `json:"usage" validate:"required"`
}

// Upload godoc
// @Summary Upload a product
// @Tags products
// @Accept json
// @Produce json
// @Param x-auth-token header string true "Access token"
// @Param request body UploadProductRequest true "Product data"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /products/upload [post]
func (h *ProductHandler) Upload(c echo.Context) error {
	var req UploadProductRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusUnauthorized, apperrors.NewErrorResponse("invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnauthorized, apperrors.FromValidationErrorsTitled(err))
	}

	price, err := decimal.NewFromString(req.Price)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, apperrors.NewErrorResponse("Price is Invalid"))
	}

	product := &model.Product{
		Name:        req.Name,
		Brand:       req.Brand,
		Price:       price,
		Qty:         req.Qty,
		Image:       req.Image,
		Category:    req.Category,
		Description: req.Description,
		Usage:       req.Usage,
	}

	created, err := h.catalogService.Upload(c.Request().Context(), product)
	if err != nil {
		return writeServiceError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"msg":      "Product is Uploaded",
		"products": created,
	})
}

// ListMen godoc
// @Summary List the men's collection
// @Tags products
// @Produce json
// @Success 200 {object} map[string][]model.Product
// @Failure 500 {object} errors.ErrorResponse
// @Router /products/men [get]
func (h *ProductHandler) ListMen(c echo.Context) error {
	return h.listCategory(c, model.CategoryMen)
}

// ListWomen godoc
// @Summary List the women's collection
// @Tags products
// @Produce json
// @Success 200 {object} map[string][]model.Product
// @Failure 500 {object} errors.ErrorResponse
// @Router /products/women [get]
func (h *ProductHandler) ListWomen(c echo.Context) error {
	return h.listCategory(c, model.CategoryWomen)
}

// ListKids godoc
// @Summary List the kids' collection
// @Tags products
// @Produce json
// @Success 200 {object} map[string][]model.Product
// @Failure 500 {object} errors.ErrorResponse
// @Router /products/kids [get]
func (h *ProductHandler) ListKids(c echo.Context) error {
	return h.listCategory(c, model.CategoryKids)
}

func (h *ProductHandler) listCategory(c echo.Context, category string) error {
	products, err := h.catalogService.ListByCategory(c.Request().Context(), category)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, map[string][]model.Product{"products": products})
}

// Get godoc
// @Summary Get a single product
// @Tags products
// @Produce json
// @Param product_id path string true "Product ID"
// @Success 200 {object} map[string]model.Product
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /products/{product_id} [get]
func (h *ProductHandler) Get(c echo.Context) error {
	productID, err := uuid.Parse(c.Param("product_id"))
	if err != nil {
		return writeServiceError(c, apperrors.ErrProductNotFound)
	}

	product, err := h.catalogService.Get(c.Request().Context(), productID)
	if err != nil {
		return writeServiceError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]*model.Product{"products": product})
}
