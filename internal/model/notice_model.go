package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Notice stores a notification delivered to a user. Rows are hard-deleted.
type Notice struct {
	Id          uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	RecipientId uuid.UUID      `gorm:"type:uuid;not null;index:idx_notices_recipient_created,priority:1" json:"recipient_id"`
	SenderId    *uuid.UUID     `gorm:"type:uuid" json:"sender_id,omitempty"`
	Type        string         `gorm:"type:varchar(20);not null" json:"type"`
	PaperId     *uuid.UUID     `gorm:"type:uuid;index" json:"paper_id,omitempty"`
	Message     string         `gorm:"type:text;not null" json:"message"`
	Metadata    datatypes.JSON `json:"metadata,omitempty"`
	CreatedAt   time.Time      `gorm:"autoCreateTime;index:idx_notices_recipient_created,priority:2" json:"created_at"`
}

func (Notice) TableName() string {
	return "notices"
}
