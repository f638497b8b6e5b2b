package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	Id                 uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Email              string         `gorm:"type:varchar(255);uniqueIndex;not null"`
	Name               string         `gorm:"type:varchar(100);not null"`
	Nickname           string         `gorm:"type:varchar(50);uniqueIndex;not null"`
	PasswordHash       string         `gorm:"type:varchar(255);not null"`
	LoginType          string         `gorm:"type:varchar(20);not null;default:'BASIC'"`
	ProfileImgURL      string         `gorm:"type:text"`
	ProfileDescription string         `gorm:"type:varchar(255)"`
	CreatedAt          time.Time      `gorm:"autoCreateTime"`
	UpdatedAt          time.Time      `gorm:"autoUpdateTime"`
	DeletedAt          gorm.DeletedAt `gorm:"index"`
}

func (User) TableName() string {
	return "users"
}
