package service

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/jontropati/storefront/internal/domain"
	"github.com/jontropati/storefront/internal/events"
	"github.com/jontropati/storefront/internal/repository"
	apperrors "github.com/jontropati/storefront/pkg/util"
)

// OrderFilter narrows order listings. Only known fields translate into
// store queries; unknown query keys are ignored.
type OrderFilter struct {
	Email          string
	DeliveryStatus string
	TransactionID  string
}

// OrderService coordinates order reads and writes.
type OrderService struct {
	orders     repository.OrderRepository
	dispatcher events.Dispatcher
}

// NewOrderService builds the service.
func NewOrderService(orders repository.OrderRepository, dispatcher events.Dispatcher) *OrderService {
	return &OrderService{orders: orders, dispatcher: dispatcher}
}

// List returns orders matching the filter.
func (s *OrderService) List(ctx context.Context, filter OrderFilter) ([]domain.Order, error) {
	query := bson.M{}
	if filter.Email != "" {
		query["email"] = filter.Email
	}
	if filter.DeliveryStatus != "" {
		query["deliveryStatus"] = filter.DeliveryStatus
	}
	if filter.TransactionID != "" {
		query["transactionId"] = filter.TransactionID
	}
	return s.orders.Find(ctx, query)
}

// ListByOwner returns the orders belonging to one identity.
func (s *OrderService) ListByOwner(ctx context.Context, email string) ([]domain.Order, error) {
	return s.orders.Find(ctx, bson.M{"email": email})
}

// Get fetches one order by its hex identifier.
func (s *OrderService) Get(ctx context.Context, idHex string) (*domain.Order, error) {
	id, err := parseObjectID(idHex, "order")
	if err != nil {
		return nil, err
	}
	return s.orders.FindByID(ctx, id)
}

// Place inserts a new order.
func (s *OrderService) Place(ctx context.Context, order *domain.Order) (*repository.InsertResult, error) {
	if order.Email == "" {
		return nil, apperrors.NewValidationError("email is required", nil)
	}
	return s.orders.Insert(ctx, order)
}

// SetDeliveryStatus updates the delivery state of an order.
func (s *OrderService) SetDeliveryStatus(ctx context.Context, idHex, status string) (*repository.UpdateResult, error) {
	id, err := parseObjectID(idHex, "order")
	if err != nil {
		return nil, err
	}
	if status == "" {
		return nil, apperrors.NewValidationError("deliveryStatus is required", nil)
	}
	return s.orders.SetDeliveryStatus(ctx, id, status)
}

// RecordPayment stores the provider confirmation on the order and marks
// it paid.
func (s *OrderService) RecordPayment(ctx context.Context, idHex string, payment domain.PaymentRecord) (*repository.UpdateResult, error) {
	id, err := parseObjectID(idHex, "order")
	if err != nil {
		return nil, err
	}
	if payment.TransactionID == "" {
		return nil, apperrors.NewValidationError("transactionId is required", nil)
	}
	if payment.CreatedAt.IsZero() {
		payment.CreatedAt = time.Now()
	}

	result, err := s.orders.RecordPayment(ctx, id, payment)
	if err != nil {
		return nil, err
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.NewEvent(events.EventOrderPaid, idHex, events.OrderPaidPayload{
			OrderID:       idHex,
			TransactionID: payment.TransactionID,
		}))
	}
	return result, nil
}

// Delete removes an order.
func (s *OrderService) Delete(ctx context.Context, idHex string) (*repository.DeleteResult, error) {
	id, err := parseObjectID(idHex, "order")
	if err != nil {
		return nil, err
	}
	return s.orders.Delete(ctx, id)
}
