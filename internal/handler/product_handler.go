package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperr "ecomshop/internal/errors"
	"ecomshop/internal/service"
)

// ProductHandler serves the product catalog.
type ProductHandler struct {
	productService service.ProductService
}

// NewProductHandler creates a new product handler.
func NewProductHandler(productService service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// List godoc
// @Summary List the product catalog
// @Tags products
// @Produce json
// @Success 200 {array} model.Product
// @Failure 500 {object} errors.MessageResponse
// @Router /products [get]
func (h *ProductHandler) List(c echo.Context) error {
	products, err := h.productService.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, apperr.MessageResponse{Message: "Error fetching products"})
	}
	return c.JSON(http.StatusOK, products)
}
