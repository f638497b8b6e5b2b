package entity

import (
	"time"

	"github.com/google/uuid"
)

type DiaryCategory string
type DiaryColor string

const (
	DiaryCategoryIndividual DiaryCategory = "INDIVIDUAL"
	DiaryCategoryFriend     DiaryCategory = "FRIEND"
	DiaryCategoryCouple     DiaryCategory = "COUPLE"
	DiaryCategoryFamily     DiaryCategory = "FAMILY"

	DiaryColorRed    DiaryColor = "RED"
	DiaryColorYellow DiaryColor = "YELLOW"
	DiaryColorGreen  DiaryColor = "GREEN"
	DiaryColorBlue   DiaryColor = "BLUE"
)

type Diary struct {
	Id          uuid.UUID
	Name        string
	ImgURL      string
	Category    DiaryCategory
	Description string
	Color       DiaryColor
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

type DiaryUser struct {
	DiaryId uuid.UUID
	UserId  uuid.UUID
}
