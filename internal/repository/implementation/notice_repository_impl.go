package implementation

import (
	"context"

	"ustory-be/internal/entity"
	"ustory-be/internal/mapper"
	"ustory-be/internal/model"
	"ustory-be/internal/repository/contract"
	"ustory-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NoticeRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.NoticeMapper
}

func NewNoticeRepository(db *gorm.DB) contract.NoticeRepository {
	return &NoticeRepositoryImpl{
		db:     db,
		mapper: mapper.NewNoticeMapper(),
	}
}

func (r *NoticeRepositoryImpl) Create(ctx context.Context, notice *entity.Notice) error {
	m, err := r.mapper.ToModel(notice)
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	created, err := r.mapper.ToEntity(m)
	if err != nil {
		return err
	}
	*notice = *created
	return nil
}

func (r *NoticeRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Notice, error) {
	var models []*model.Notice
	query := r.db.WithContext(ctx).Model(&model.Notice{})
	query = specification.Apply(query, specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models)
}

func (r *NoticeRepositoryImpl) DeleteByID(ctx context.Context, id uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Notice{})
	return result.RowsAffected, result.Error
}
