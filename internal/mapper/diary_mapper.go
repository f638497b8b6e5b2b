package mapper

import (
	"time"

	"ustory-be/internal/entity"
	"ustory-be/internal/model"
)

type DiaryMapper struct{}

func NewDiaryMapper() *DiaryMapper {
	return &DiaryMapper{}
}

func (m *DiaryMapper) ToEntity(d *model.Diary) *entity.Diary {
	if d == nil {
		return nil
	}

	var updatedAt *time.Time
	if !d.UpdatedAt.IsZero() {
		t := d.UpdatedAt
		updatedAt = &t
	}

	return &entity.Diary{
		Id:          d.Id,
		Name:        d.Name,
		ImgURL:      d.ImgURL,
		Category:    entity.DiaryCategory(d.Category),
		Description: d.Description,
		Color:       entity.DiaryColor(d.Color),
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   updatedAt,
	}
}

func (m *DiaryMapper) ToModel(d *entity.Diary) *model.Diary {
	if d == nil {
		return nil
	}

	var updatedAt time.Time
	if d.UpdatedAt != nil {
		updatedAt = *d.UpdatedAt
	}

	return &model.Diary{
		Id:          d.Id,
		Name:        d.Name,
		ImgURL:      d.ImgURL,
		Category:    string(d.Category),
		Description: d.Description,
		Color:       string(d.Color),
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   updatedAt,
	}
}
