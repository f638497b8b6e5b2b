package mapper

import (
	"time"

	"ustory-be/internal/entity"
	"ustory-be/internal/model"

	"gorm.io/gorm"
)

type PaperMapper struct{}

func NewPaperMapper() *PaperMapper {
	return &PaperMapper{}
}

func (m *PaperMapper) ToEntity(p *model.Paper) *entity.Paper {
	if p == nil {
		return nil
	}

	var deletedAt *time.Time
	if p.DeletedAt.Valid {
		t := p.DeletedAt.Time
		deletedAt = &t
	}

	var updatedAt *time.Time
	if !p.UpdatedAt.IsZero() {
		t := p.UpdatedAt
		updatedAt = &t
	}

	return &entity.Paper{
		Id:              p.Id,
		DiaryId:         p.DiaryId,
		WriterId:        p.WriterId,
		AddressId:       p.AddressId,
		Title:           p.Title,
		ThumbnailImgURL: p.ThumbnailImgURL,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       updatedAt,
		DeletedAt:       deletedAt,
		IsDeleted:       p.DeletedAt.Valid,
	}
}

func (m *PaperMapper) ToModel(p *entity.Paper) *model.Paper {
	if p == nil {
		return nil
	}

	var deletedAt gorm.DeletedAt
	if p.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *p.DeletedAt, Valid: true}
	} else if p.IsDeleted {
		deletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}

	var updatedAt time.Time
	if p.UpdatedAt != nil {
		updatedAt = *p.UpdatedAt
	}

	return &model.Paper{
		Id:              p.Id,
		DiaryId:         p.DiaryId,
		WriterId:        p.WriterId,
		AddressId:       p.AddressId,
		Title:           p.Title,
		ThumbnailImgURL: p.ThumbnailImgURL,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       updatedAt,
		DeletedAt:       deletedAt,
	}
}

func (m *PaperMapper) ToEntities(papers []*model.Paper) []*entity.Paper {
	entities := make([]*entity.Paper, len(papers))
	for i, p := range papers {
		entities[i] = m.ToEntity(p)
	}
	return entities
}

func (m *PaperMapper) GreatToEntity(g *model.Great) *entity.Great {
	if g == nil {
		return nil
	}
	return &entity.Great{
		Id:        g.Id,
		UserId:    g.UserId,
		PaperId:   g.PaperId,
		CreatedAt: g.CreatedAt,
	}
}

func (m *PaperMapper) GreatToModel(g *entity.Great) *model.Great {
	if g == nil {
		return nil
	}
	return &model.Great{
		Id:        g.Id,
		UserId:    g.UserId,
		PaperId:   g.PaperId,
		CreatedAt: g.CreatedAt,
	}
}
