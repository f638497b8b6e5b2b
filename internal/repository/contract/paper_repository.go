package contract

import (
	"context"

	"ustory-be/internal/entity"
	"ustory-be/internal/repository/specification"
)

// PaperRepository queries papers unscoped: soft-deleted rows are only filtered
// when a specification asks for it (see specification.PaperQuery).
type PaperRepository interface {
	Create(ctx context.Context, paper *entity.Paper) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Paper, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Paper, error)
	CreateAddress(ctx context.Context, address *entity.Address) error
}
