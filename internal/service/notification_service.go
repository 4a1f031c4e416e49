package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/sportsmgr/club-service/internal/config"
	"github.com/sportsmgr/club-service/internal/events"
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
	n.dispatcher.Subscribe(events.EventPlayerCreated, n.handleEvent)
	n.dispatcher.Subscribe(events.EventPlayerTransfered, n.handleEvent)
	n.dispatcher.Subscribe(events.EventMatchScheduled, n.handleEvent)
	n.dispatcher.Subscribe(events.EventMatchCompleted, n.handleEvent)
	n.dispatcher.Subscribe(events.EventTacticUpdated, n.handleEvent)
}

func (n *NotificationService) handleEvent(ctx context.Context, event events.Event) error {
	n.logger.Info("club event",
		zap.String("type", string(event.Type)),
		zap.String("entity_id", event.EntityID),
		zap.Any("payload", event.Payload))
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) sendWebhookNotificationStub(_ context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.WebhookURL) == "" {
		return
	}
	n.logger.Debug("webhook notification",
		zap.String("url", n.cfg.WebhookURL),
		zap.String("entity_id", event.EntityID),
		zap.String("event_type", string(event.Type)))
}
