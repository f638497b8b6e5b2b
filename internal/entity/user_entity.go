package entity

import (
	"time"

	"github.com/google/uuid"
)

type LoginType string

const (
	LoginTypeBasic LoginType = "BASIC"
	LoginTypeNaver LoginType = "NAVER"
	LoginTypeKakao LoginType = "KAKAO"
)

type User struct {
	Id                 uuid.UUID
	Email              string
	Name               string
	Nickname           string
	PasswordHash       string
	LoginType          LoginType
	ProfileImgURL      string
	ProfileDescription string
	CreatedAt          time.Time
	UpdatedAt          time.Time
	DeletedAt          *time.Time
}
