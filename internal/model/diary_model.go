package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Diary struct {
	Id          uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Name        string         `gorm:"type:varchar(100);not null"`
	ImgURL      string         `gorm:"type:text"`
	Category    string         `gorm:"type:varchar(20);not null"`
	Description string         `gorm:"type:varchar(255)"`
	Color       string         `gorm:"type:varchar(20)"`
	CreatedAt   time.Time      `gorm:"autoCreateTime"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime"`
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

func (Diary) TableName() string {
	return "diaries"
}

// DiaryUser is the membership join between diaries and users.
type DiaryUser struct {
	DiaryId   uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserId    uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (DiaryUser) TableName() string {
	return "diary_users"
}
