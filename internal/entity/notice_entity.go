package entity

import (
	"time"

	"github.com/google/uuid"
)

type NoticeType string

const (
	NoticeTypeFriend  NoticeType = "FRIEND"
	NoticeTypeRecord  NoticeType = "RECORD"
	NoticeTypeComment NoticeType = "COMMENT"
)

func (t NoticeType) Valid() bool {
	switch t {
	case NoticeTypeFriend, NoticeTypeRecord, NoticeTypeComment:
		return true
	}
	return false
}

// Navigable reports whether notices of this type point at a paper.
func (t NoticeType) Navigable() bool {
	return t == NoticeTypeRecord || t == NoticeTypeComment
}

type Notice struct {
	Id          uuid.UUID
	RecipientId uuid.UUID
	SenderId    *uuid.UUID
	Type        NoticeType
	PaperId     *uuid.UUID
	Message     string
	Metadata    map[string]interface{}
	CreatedAt   time.Time
}
