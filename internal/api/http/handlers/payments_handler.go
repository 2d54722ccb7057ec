package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jontropati/storefront/internal/api/dto"
	"github.com/jontropati/storefront/internal/service"
	apperrors "github.com/jontropati/storefront/pkg/util"
)

// PaymentsHandler exposes the payment-intent endpoint.
type PaymentsHandler struct {
	payments *service.PaymentService
}

// NewPaymentsHandler constructs handler.
func NewPaymentsHandler(payments *service.PaymentService) *PaymentsHandler {
	return &PaymentsHandler{payments: payments}
}

// CreateIntent handles POST /create-payment-intent.
func (h *PaymentsHandler) CreateIntent(c *fiber.Ctx) error {
	var req dto.CreatePaymentIntentRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewBadRequest("invalid payload")
	}

	intent, err := h.payments.CreateIntent(c.UserContext(), req.Price)
	if err != nil {
		return err
	}
	return c.JSON(dto.CreatePaymentIntentResponse{ClientSecret: intent.ClientSecret})
}
