package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/estate-service/internal/config"
	"github.com/spec-kit/estate-service/internal/events"
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
	n.dispatcher.Subscribe(events.EventEstateCreated, n.handleEstateCreated)
	n.dispatcher.Subscribe(events.EventEstateApproved, n.handleEstateApproved)
	n.dispatcher.Subscribe(events.EventSellerAssigned, n.handleSellerAssigned)
	n.dispatcher.Subscribe(events.EventMeetingRequested, n.handleMeetingRequested)
	n.dispatcher.Subscribe(events.EventMeetingStatusChanged, n.handleMeetingStatusChanged)
	n.dispatcher.Subscribe(events.EventSellerCreated, n.handleSellerCreated)
}

func (n *NotificationService) handleEstateCreated(ctx context.Context, event events.Event) error {
	n.logger.Info("EstateCreated", zap.String("estate_id", event.SubjectID), zap.Any("payload", event.Payload))
	n.sendEmailNotificationStub(ctx, event)
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleEstateApproved(ctx context.Context, event events.Event) error {
	n.logger.Info("EstateApproved", zap.String("estate_id", event.SubjectID))
	n.sendEmailNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleSellerAssigned(ctx context.Context, event events.Event) error {
	n.logger.Info("SellerAssigned", zap.String("estate_id", event.SubjectID), zap.Any("payload", event.Payload))
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleMeetingRequested(ctx context.Context, event events.Event) error {
	n.logger.Info("MeetingRequested", zap.String("meeting_id", event.SubjectID), zap.Any("payload", event.Payload))
	n.sendEmailNotificationStub(ctx, event)
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleMeetingStatusChanged(ctx context.Context, event events.Event) error {
	n.logger.Info("MeetingStatusChanged", zap.String("meeting_id", event.SubjectID), zap.Any("payload", event.Payload))
	n.sendEmailNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleSellerCreated(ctx context.Context, event events.Event) error {
	n.logger.Info("SellerCreated", zap.String("seller_id", event.SubjectID), zap.Any("payload", event.Payload))
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) sendEmailNotificationStub(_ context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.EmailFrom) == "" {
		return
	}
	n.logger.Debug("sendEmailNotificationStub",
		zap.String("from", n.cfg.EmailFrom),
		zap.String("subject_id", event.SubjectID),
		zap.String("event_type", string(event.Type)))
}

func (n *NotificationService) sendWebhookNotificationStub(_ context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.WebhookURL) == "" {
		return
	}
	n.logger.Debug("sendWebhookNotificationStub",
		zap.String("url", n.cfg.WebhookURL),
		zap.String("subject_id", event.SubjectID),
		zap.String("event_type", string(event.Type)))
}
