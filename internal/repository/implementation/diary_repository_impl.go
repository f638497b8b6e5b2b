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

type DiaryRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.DiaryMapper
}

func NewDiaryRepository(db *gorm.DB) contract.DiaryRepository {
	return &DiaryRepositoryImpl{
		db:     db,
		mapper: mapper.NewDiaryMapper(),
	}
}

func (r *DiaryRepositoryImpl) Create(ctx context.Context, diary *entity.Diary) error {
	m := r.mapper.ToModel(diary)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*diary = *r.mapper.ToEntity(m)
	return nil
}

func (r *DiaryRepositoryImpl) AddMember(ctx context.Context, member *entity.DiaryUser) error {
	return r.db.WithContext(ctx).Create(&model.DiaryUser{
		DiaryId: member.DiaryId,
		UserId:  member.UserId,
	}).Error
}

func (r *DiaryRepositoryImpl) CountMembers(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := specification.Apply(r.db.WithContext(ctx).Model(&model.DiaryUser{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
