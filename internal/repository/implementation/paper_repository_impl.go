package implementation

import (
	"context"
	"errors"

	"ustory-be/internal/entity"
	"ustory-be/internal/mapper"
	"ustory-be/internal/model"
	"ustory-be/internal/repository/contract"
	"ustory-be/internal/repository/scope"
	"ustory-be/internal/repository/specification"

	"gorm.io/gorm"
)

type PaperRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.PaperMapper
}

func NewPaperRepository(db *gorm.DB) contract.PaperRepository {
	return &PaperRepositoryImpl{
		db:     db,
		mapper: mapper.NewPaperMapper(),
	}
}

// query starts an unscoped select over papers. Joined specs must not leak
// columns from other tables into the paper rows.
func (r *PaperRepositoryImpl) query(ctx context.Context, specs ...specification.Specification) *gorm.DB {
	db := r.db.WithContext(ctx).Scopes(scope.WithSoftDelete).Model(&model.Paper{}).Select("papers.*")
	return specification.Apply(db, specs...)
}

func (r *PaperRepositoryImpl) Create(ctx context.Context, paper *entity.Paper) error {
	m := r.mapper.ToModel(paper)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*paper = *r.mapper.ToEntity(m)
	return nil
}

func (r *PaperRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Paper, error) {
	var m model.Paper
	if err := r.query(ctx, specs...).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *PaperRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Paper, error) {
	var models []*model.Paper
	if err := r.query(ctx, specs...).Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *PaperRepositoryImpl) CreateAddress(ctx context.Context, address *entity.Address) error {
	m := &model.Address{
		Id:          address.Id,
		City:        address.City,
		Store:       address.Store,
		Coordinates: address.Coordinates,
	}
	return r.db.WithContext(ctx).Create(m).Error
}
