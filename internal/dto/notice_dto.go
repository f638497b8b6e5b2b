package dto

import (
	"time"

	"github.com/google/uuid"
)

// NoticeResponse carries PaperId only for paper-navigable notices; it is null for friend notices.
type NoticeResponse struct {
	Id        uuid.UUID              `json:"id"`
	Type      string                 `json:"type"`
	SenderId  *uuid.UUID             `json:"senderId"`
	PaperId   *uuid.UUID             `json:"paperId"`
	Message   string                 `json:"message"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt time.Time              `json:"createdAt"`
}

type CreateNoticeRequest struct {
	RecipientId uuid.UUID              `json:"recipient_id" validate:"required"`
	SenderId    *uuid.UUID             `json:"sender_id"`
	Type        string                 `json:"type" validate:"required"`
	PaperId     *uuid.UUID             `json:"paper_id"`
	Message     string                 `json:"message" validate:"required,max=1000"`
	Metadata    map[string]interface{} `json:"metadata"`
}
