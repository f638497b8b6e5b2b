package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Address struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey"`
	City        string    `gorm:"type:varchar(100);not null;index:idx_addresses_city_store,priority:1"`
	Store       string    `gorm:"type:varchar(255);not null;index:idx_addresses_city_store,priority:2"`
	Coordinates string    `gorm:"type:varchar(100)"`
}

func (Address) TableName() string {
	return "addresses"
}

type Paper struct {
	Id              uuid.UUID      `gorm:"type:uuid;primaryKey"`
	DiaryId         uuid.UUID      `gorm:"type:uuid;not null;index:idx_papers_diary_created,priority:1"`
	WriterId        uuid.UUID      `gorm:"type:uuid;not null;index:idx_papers_writer_created,priority:1"`
	AddressId       *uuid.UUID     `gorm:"type:uuid;index"`
	Title           string         `gorm:"type:varchar(255);not null"`
	ThumbnailImgURL string         `gorm:"type:text"`
	CreatedAt       time.Time      `gorm:"autoCreateTime;index:idx_papers_diary_created,priority:2;index:idx_papers_writer_created,priority:2"`
	UpdatedAt       time.Time      `gorm:"autoUpdateTime"`
	DeletedAt       gorm.DeletedAt `gorm:"index"`
}

func (Paper) TableName() string {
	return "papers"
}

// Great is a user's like on a paper. One row per (user, paper).
type Great struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserId    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_greats_user_paper,priority:1"`
	PaperId   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_greats_user_paper,priority:2;index"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Great) TableName() string {
	return "greats"
}
