package service

import (
	"context"
	"encoding/json"
	"fmt"

	"ustory-be/internal/dto"
	"ustory-be/internal/pkg/apperror"
	"ustory-be/internal/pkg/logger"
	"ustory-be/pkg/events"

	"github.com/google/uuid"
)

const noticeConsumerDurable = "notice-aggregator"

// EventSubscriber is satisfied by *nats.Subscriber.
type EventSubscriber interface {
	Subscribe(ctx context.Context, subject, durableName string, handler func(ctx context.Context, subject string, data []byte) error) error
}

// NoticeConsumer stores notices announced by other services on the event bus.
type NoticeConsumer struct {
	noticeService INoticeService
	logger        logger.ILogger
}

func NewNoticeConsumer(noticeService INoticeService, logger logger.ILogger) *NoticeConsumer {
	return &NoticeConsumer{
		noticeService: noticeService,
		logger:        logger,
	}
}

func (c *NoticeConsumer) Start(ctx context.Context, subscriber EventSubscriber) error {
	return subscriber.Subscribe(ctx, events.Subject(events.TypeNoticeCreated), noticeConsumerDurable, c.Handle)
}

var noticeFields = map[string]bool{
	"recipient_id": true,
	"sender_id":    true,
	"type":         true,
	"paper_id":     true,
	"message":      true,
}

// Handle decodes a NOTICE_CREATED payload. Unknown keys end up in the notice metadata.
func (c *NoticeConsumer) Handle(ctx context.Context, subject string, data []byte) error {
	var payload map[string]interface{}
	if err := json.Unmarshal(data, &payload); err != nil {
		return c.reject(subject, fmt.Errorf("%w: %v", events.ErrInvalidPayload, err))
	}

	req, err := decodeNotice(payload)
	if err != nil {
		return c.reject(subject, err)
	}

	if _, err := c.noticeService.Create(ctx, req); err != nil {
		if apperror.Is(err, apperror.KindBadRequest) {
			return c.reject(subject, fmt.Errorf("%w: %v", events.ErrInvalidPayload, err))
		}
		return err
	}
	return nil
}

func (c *NoticeConsumer) reject(subject string, err error) error {
	c.logger.Warn("NoticeConsumer", "Rejected notice event", map[string]interface{}{
		"subject": subject,
		"error":   err.Error(),
	})
	return err
}

func decodeNotice(payload map[string]interface{}) (*dto.CreateNoticeRequest, error) {
	recipientId, err := requiredUUID(payload, "recipient_id")
	if err != nil {
		return nil, err
	}
	senderId, err := optionalUUID(payload, "sender_id")
	if err != nil {
		return nil, err
	}
	paperId, err := optionalUUID(payload, "paper_id")
	if err != nil {
		return nil, err
	}
	noticeType, _ := payload["type"].(string)
	message, _ := payload["message"].(string)

	var metadata map[string]interface{}
	for k, v := range payload {
		if noticeFields[k] {
			continue
		}
		if metadata == nil {
			metadata = make(map[string]interface{})
		}
		metadata[k] = v
	}

	return &dto.CreateNoticeRequest{
		RecipientId: recipientId,
		SenderId:    senderId,
		Type:        noticeType,
		PaperId:     paperId,
		Message:     message,
		Metadata:    metadata,
	}, nil
}

func requiredUUID(payload map[string]interface{}, key string) (uuid.UUID, error) {
	id, err := optionalUUID(payload, key)
	if err != nil {
		return uuid.Nil, err
	}
	if id == nil {
		return uuid.Nil, fmt.Errorf("%w: %s is required", events.ErrInvalidPayload, key)
	}
	return *id, nil
}

func optionalUUID(payload map[string]interface{}, key string) (*uuid.UUID, error) {
	raw, ok := payload[key]
	if !ok || raw == nil {
		return nil, nil
	}
	str, ok := raw.(string)
	if !ok {
		return nil, fmt.Errorf("%w: %s must be a string", events.ErrInvalidPayload, key)
	}
	id, err := uuid.Parse(str)
	if err != nil {
		return nil, fmt.Errorf("%w: %s is not a valid id", events.ErrInvalidPayload, key)
	}
	return &id, nil
}
