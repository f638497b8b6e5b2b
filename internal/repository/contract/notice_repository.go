package contract

import (
	"context"

	"ustory-be/internal/entity"
	"ustory-be/internal/repository/specification"

	"github.com/google/uuid"
)

type NoticeRepository interface {
	Create(ctx context.Context, notice *entity.Notice) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Notice, error)
	// DeleteByID hard-deletes and reports how many rows were removed.
	DeleteByID(ctx context.Context, id uuid.UUID) (int64, error)
}
