package contract

import (
	"context"

	"ustory-be/internal/entity"
	"ustory-be/internal/repository/specification"
)

type GreatRepository interface {
	// Create returns gorm.ErrDuplicatedKey when the (user, paper) pair already exists.
	Create(ctx context.Context, great *entity.Great) error
	// Delete removes matching rows and reports how many were removed.
	Delete(ctx context.Context, specs ...specification.Specification) (int64, error)
	Exists(ctx context.Context, specs ...specification.Specification) (bool, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
