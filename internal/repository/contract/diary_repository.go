package contract

import (
	"context"

	"ustory-be/internal/entity"
	"ustory-be/internal/repository/specification"
)

type DiaryRepository interface {
	Create(ctx context.Context, diary *entity.Diary) error
	AddMember(ctx context.Context, member *entity.DiaryUser) error
	CountMembers(ctx context.Context, specs ...specification.Specification) (int64, error)
}
