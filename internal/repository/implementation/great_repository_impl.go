package implementation

import (
	"context"

	"ustory-be/internal/entity"
	"ustory-be/internal/mapper"
	"ustory-be/internal/model"
	"ustory-be/internal/repository/contract"
	"ustory-be/internal/repository/specification"

	"gorm.io/gorm"
)

type GreatRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.PaperMapper
}

func NewGreatRepository(db *gorm.DB) contract.GreatRepository {
	return &GreatRepositoryImpl{
		db:     db,
		mapper: mapper.NewPaperMapper(),
	}
}

func (r *GreatRepositoryImpl) Create(ctx context.Context, great *entity.Great) error {
	m := r.mapper.GreatToModel(great)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*great = *r.mapper.GreatToEntity(m)
	return nil
}

func (r *GreatRepositoryImpl) Delete(ctx context.Context, specs ...specification.Specification) (int64, error) {
	query := specification.Apply(r.db.WithContext(ctx), specs...)
	result := query.Delete(&model.Great{})
	return result.RowsAffected, result.Error
}

func (r *GreatRepositoryImpl) Exists(ctx context.Context, specs ...specification.Specification) (bool, error) {
	count, err := r.Count(ctx, specs...)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GreatRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := specification.Apply(r.db.WithContext(ctx).Model(&model.Great{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
