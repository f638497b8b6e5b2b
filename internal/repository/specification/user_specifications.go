package specification

import (
	"gorm.io/gorm"

	"github.com/google/uuid"
)

type ByEmail struct {
	Email string
}

func (s ByEmail) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("email = ?", s.Email)
}

type ByNickname struct {
	Nickname string
}

func (s ByNickname) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("nickname = ?", s.Nickname)
}

type ByDiaryMember struct {
	DiaryID uuid.UUID
	UserID  uuid.UUID
}

func (s ByDiaryMember) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("diary_id = ? AND user_id = ?", s.DiaryID, s.UserID)
}
