package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/jontropati/storefront/internal/api/dto"
	"github.com/jontropati/storefront/internal/domain"
	"github.com/jontropati/storefront/internal/service"
	apperrors "github.com/jontropati/storefront/pkg/util"
)

// ProductsHandler exposes catalog endpoints.
type ProductsHandler struct {
	catalog *service.CatalogService
}

// NewProductsHandler constructs handler.
func NewProductsHandler(catalog *service.CatalogService) *ProductsHandler {
	return &ProductsHandler{catalog: catalog}
}

// List handles GET /products.
func (h *ProductsHandler) List(c *fiber.Ctx) error {
	products, err := h.catalog.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(products)
}

// Get handles GET /products/:id.
func (h *ProductsHandler) Get(c *fiber.Ctx) error {
	product, err := h.catalog.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(product)
}

// Create handles POST /products. Admin-gated by the router.
func (h *ProductsHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewBadRequest("invalid payload")
	}

	result, err := h.catalog.Create(c.UserContext(), &domain.Product{
		Name:        req.Name,
		Description: req.Description,
		Image:       req.Image,
		Supplier:    req.Supplier,
		Price:       req.Price,
		Quantity:    req.Quantity,
		MinOrder:    req.MinOrder,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusOK).JSON(result)
}

// UpdateQuantity handles PUT /products/:id.
func (h *ProductsHandler) UpdateQuantity(c *fiber.Ctx) error {
	var req dto.UpdateQuantityRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewBadRequest("invalid payload")
	}

	result, err := h.catalog.SetQuantity(c.UserContext(), c.Params("id"), req.Quantity)
	if err != nil {
		return err
	}
	return c.JSON(result)
}

// Delete handles DELETE /products/:id.
func (h *ProductsHandler) Delete(c *fiber.Ctx) error {
	result, err := h.catalog.Delete(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(result)
}
