package mapper

import (
	"encoding/json"
	"fmt"

	"ustory-be/internal/entity"
	"ustory-be/internal/model"

	"gorm.io/datatypes"
)

type NoticeMapper struct{}

func NewNoticeMapper() *NoticeMapper {
	return &NoticeMapper{}
}

func (m *NoticeMapper) ToEntity(n *model.Notice) (*entity.Notice, error) {
	if n == nil {
		return nil, nil
	}

	var metadata map[string]interface{}
	if len(n.Metadata) > 0 {
		if err := json.Unmarshal(n.Metadata, &metadata); err != nil {
			return nil, fmt.Errorf("notice %s has corrupt metadata: %w", n.Id, err)
		}
	}

	return &entity.Notice{
		Id:          n.Id,
		RecipientId: n.RecipientId,
		SenderId:    n.SenderId,
		Type:        entity.NoticeType(n.Type),
		PaperId:     n.PaperId,
		Message:     n.Message,
		Metadata:    metadata,
		CreatedAt:   n.CreatedAt,
	}, nil
}

func (m *NoticeMapper) ToModel(n *entity.Notice) (*model.Notice, error) {
	if n == nil {
		return nil, nil
	}

	var metadata datatypes.JSON
	if len(n.Metadata) > 0 {
		raw, err := json.Marshal(n.Metadata)
		if err != nil {
			return nil, err
		}
		metadata = datatypes.JSON(raw)
	}

	return &model.Notice{
		Id:          n.Id,
		RecipientId: n.RecipientId,
		SenderId:    n.SenderId,
		Type:        string(n.Type),
		PaperId:     n.PaperId,
		Message:     n.Message,
		Metadata:    metadata,
		CreatedAt:   n.CreatedAt,
	}, nil
}

func (m *NoticeMapper) ToEntities(notices []*model.Notice) ([]*entity.Notice, error) {
	entities := make([]*entity.Notice, len(notices))
	for i, n := range notices {
		e, err := m.ToEntity(n)
		if err != nil {
			return nil, err
		}
		entities[i] = e
	}
	return entities, nil
}
