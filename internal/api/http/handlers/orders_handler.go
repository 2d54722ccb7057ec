package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jontropati/storefront/internal/api/dto"
	"github.com/jontropati/storefront/internal/domain"
	"github.com/jontropati/storefront/internal/service"
	apperrors "github.com/jontropati/storefront/pkg/util"
)

// OrdersHandler exposes order endpoints.
type OrdersHandler struct {
	orders *service.OrderService
}

// NewOrdersHandler constructs handler.
func NewOrdersHandler(orders *service.OrderService) *OrdersHandler {
	return &OrdersHandler{orders: orders}
}

// List handles GET /orders.
func (h *OrdersHandler) List(c *fiber.Ctx) error {
	filter := service.OrderFilter{
		Email:          c.Query("email"),
		DeliveryStatus: c.Query("deliveryStatus"),
		TransactionID:  c.Query("transactionId"),
	}
	orders, err := h.orders.List(c.UserContext(), filter)
	if err != nil {
		return err
	}
	return c.JSON(orders)
}

// ListOwn handles GET /myorders. The ownership gate has already
// matched the email query against the authenticated subject.
func (h *OrdersHandler) ListOwn(c *fiber.Ctx) error {
	orders, err := h.orders.ListByOwner(c.UserContext(), c.Query("email"))
	if err != nil {
		return err
	}
	return c.JSON(orders)
}

// Get handles GET /orders/:id.
func (h *OrdersHandler) Get(c *fiber.Ctx) error {
	order, err := h.orders.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(order)
}

// Create handles POST /orders.
func (h *OrdersHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewBadRequest("invalid payload")
	}

	result, err := h.orders.Place(c.UserContext(), &domain.Order{
		Email:       req.Email,
		ProductID:   req.ProductID,
		ProductName: req.ProductName,
		Quantity:    req.Quantity,
		Price:       req.Price,
		Address:     req.Address,
		Phone:       req.Phone,
	})
	if err != nil {
		return err
	}
	return c.JSON(result)
}

// SetDeliveryStatus handles PUT /orders/:id.
func (h *OrdersHandler) SetDeliveryStatus(c *fiber.Ctx) error {
	var req dto.UpdateDeliveryRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewBadRequest("invalid payload")
	}

	result, err := h.orders.SetDeliveryStatus(c.UserContext(), c.Params("id"), req.DeliveryStatus)
	if err != nil {
		return err
	}
	return c.JSON(result)
}

// RecordPayment handles PATCH /orders/:id.
func (h *OrdersHandler) RecordPayment(c *fiber.Ctx) error {
	var req dto.RecordPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewBadRequest("invalid payload")
	}

	result, err := h.orders.RecordPayment(c.UserContext(), c.Params("id"), domain.PaymentRecord{
		TransactionID: req.TransactionID,
		Email:         req.Email,
		Amount:        req.Amount,
	})
	if err != nil {
		return err
	}
	return c.JSON(result)
}

// Delete handles DELETE /orders/:id.
func (h *OrdersHandler) Delete(c *fiber.Ctx) error {
	result, err := h.orders.Delete(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(result)
}
