package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/jontropati/storefront/internal/config"
	"github.com/jontropati/storefront/internal/events"
)

// NotificationService handles emitting notifications for domain events.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	cfg        config.NotificationConfig
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger, cfg config.NotificationConfig) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		logger:     logger,
		cfg:        cfg,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventOrderPaid, n.handleOrderPaid)
	n.dispatcher.Subscribe(events.EventProductCreated, n.handleProductCreated)
	n.dispatcher.Subscribe(events.EventUserRoleChanged, n.handleUserRoleChanged)
}

func (n *NotificationService) handleOrderPaid(ctx context.Context, event events.Event) error {
	n.logger.Info("OrderPaid", zap.String("subject", event.Subject), zap.Any("payload", event.Payload))
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleProductCreated(ctx context.Context, event events.Event) error {
	n.logger.Info("ProductCreated", zap.String("subject", event.Subject), zap.Any("payload", event.Payload))
	return nil
}

func (n *NotificationService) handleUserRoleChanged(ctx context.Context, event events.Event) error {
	n.logger.Info("UserRoleChanged", zap.String("subject", event.Subject), zap.Any("payload", event.Payload))
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) sendWebhookNotificationStub(_ context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.WebhookURL) == "" {
		return
	}
	n.logger.Debug("sendWebhookNotificationStub",
		zap.String("url", n.cfg.WebhookURL),
		zap.String("event_id", event.ID),
		zap.String("event_type", string(event.Type)))
}
