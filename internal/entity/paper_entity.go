package entity

import (
	"time"

	"github.com/google/uuid"
)

type Address struct {
	Id          uuid.UUID
	City        string
	Store       string
	Coordinates string
}

type Paper struct {
	Id              uuid.UUID
	DiaryId         uuid.UUID
	WriterId        uuid.UUID
	AddressId       *uuid.UUID
	Title           string
	ThumbnailImgURL string
	CreatedAt       time.Time
	UpdatedAt       *time.Time
	DeletedAt       *time.Time
	IsDeleted       bool
}

type Great struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	PaperId   uuid.UUID
	CreatedAt time.Time
}
