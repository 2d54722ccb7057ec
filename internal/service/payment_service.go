package service

import (
	"context"
	"math"

	"github.com/jontropati/storefront/internal/payment"
	apperrors "github.com/jontropati/storefront/pkg/util"
)

// PaymentService converts prices into provider payment intents.
type PaymentService struct {
	provider payment.Provider
	currency string
}

// NewPaymentService builds the service.
func NewPaymentService(provider payment.Provider, currency string) *PaymentService {
	return &PaymentService{provider: provider, currency: currency}
}

// CreateIntent creates a payment intent for the given price. The
// provider takes integer minor units: price x 100.
func (s *PaymentService) CreateIntent(ctx context.Context, price float64) (*payment.Intent, error) {
	if price <= 0 {
		return nil, apperrors.NewValidationError("price must be positive", nil)
	}
	amount := int64(math.Round(price * 100))
	return s.provider.CreateIntent(ctx, amount, s.currency)
}
