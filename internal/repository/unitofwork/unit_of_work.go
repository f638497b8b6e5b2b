package unitofwork

import (
	"context"

	"ustory-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	DiaryRepository() contract.DiaryRepository
	PaperRepository() contract.PaperRepository
	GreatRepository() contract.GreatRepository
	NoticeRepository() contract.NoticeRepository
}
