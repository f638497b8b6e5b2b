package dto

import (
	"time"

	"github.com/google/uuid"
)

type PaperResponse struct {
	Id              uuid.UUID  `json:"id"`
	DiaryId         uuid.UUID  `json:"diaryId"`
	WriterId        uuid.UUID  `json:"writerId"`
	AddressId       *uuid.UUID `json:"addressId"`
	Title           string     `json:"title"`
	ThumbnailImgURL string     `json:"thumbnailImgUrl"`
	CreatedAt       time.Time  `json:"createdAt"`
	IsDeleted       bool       `json:"isDeleted"`
}

// DiaryPapersQuery filters a diary listing. Dates are civil dates (YYYY-MM-DD).
type DiaryPapersQuery struct {
	RequestTime string `query:"requestTime"`
	StartDate   string `query:"startDate"`
	EndDate     string `query:"endDate"`
}

type WriterPapersQuery struct {
	RequestTime string `query:"requestTime"`
}

type AddressPapersQuery struct {
	City  string `query:"city" validate:"required"`
	Store string `query:"store" validate:"required"`
}
