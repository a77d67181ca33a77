package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/autofuellanka/portal-service/internal/config"
	"github.com/autofuellanka/portal-service/internal/events"
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
	n.dispatcher.Subscribe(events.EventBookingCreated, n.handleBookingCreated)
	n.dispatcher.Subscribe(events.EventBookingStatusChanged, n.handleBookingStatusChanged)
	n.dispatcher.Subscribe(events.EventJobAssigned, n.handleJobAssigned)
	n.dispatcher.Subscribe(events.EventInvoiceIssued, n.handleInvoiceIssued)
	n.dispatcher.Subscribe(events.EventPaymentRecorded, n.handlePaymentRecorded)
	n.dispatcher.Subscribe(events.EventInventoryBelowMinimum, n.handleInventoryBelowMinimum)
	n.dispatcher.Subscribe(events.EventFeedbackSubmitted, n.handleFeedbackSubmitted)
}

func (n *NotificationService) handleBookingCreated(ctx context.Context, event events.Event) error {
	n.logger.Info("BookingCreated", zap.Any("payload", event.Payload))
	n.sendEmailNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleBookingStatusChanged(ctx context.Context, event events.Event) error {
	n.logger.Info("BookingStatusChanged", zap.Any("payload", event.Payload))
	n.sendEmailNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleJobAssigned(ctx context.Context, event events.Event) error {
	n.logger.Info("JobAssigned", zap.Any("payload", event.Payload))
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleInvoiceIssued(ctx context.Context, event events.Event) error {
	n.logger.Info("InvoiceIssued", zap.Any("payload", event.Payload))
	n.sendEmailNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handlePaymentRecorded(ctx context.Context, event events.Event) error {
	n.logger.Info("PaymentRecorded", zap.Any("payload", event.Payload))
	return nil
}

func (n *NotificationService) handleInventoryBelowMinimum(ctx context.Context, event events.Event) error {
	n.logger.Warn("InventoryBelowMinimum", zap.Any("payload", event.Payload))
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleFeedbackSubmitted(ctx context.Context, event events.Event) error {
	n.logger.Info("FeedbackSubmitted", zap.Any("payload", event.Payload))
	n.sendEmailNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) sendEmailNotificationStub(_ context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.EmailFrom) == "" {
		return
	}
	n.logger.Debug("sendEmailNotificationStub",
		zap.String("from", n.cfg.EmailFrom),
		zap.String("event_type", string(event.Type)))
}

func (n *NotificationService) sendWebhookNotificationStub(_ context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.WebhookURL) == "" {
		return
	}
	n.logger.Debug("sendWebhookNotificationStub",
		zap.String("url", n.cfg.WebhookURL),
		zap.String("event_type", string(event.Type)))
}
