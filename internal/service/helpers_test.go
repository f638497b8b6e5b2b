package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"ustory-be/internal/entity"
	"ustory-be/internal/pkg/logger"
	"ustory-be/internal/repository/implementation"
	"ustory-be/internal/repository/unitofwork"
	"ustory-be/internal/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fixture struct {
	t   *testing.T
	ctx context.Context
	db  *gorm.DB
	uow unitofwork.RepositoryFactory
	log logger.ILogger
}

func newFixture(t *testing.T) *fixture {
	db := testutil.NewDB(t)
	return &fixture{
		t:   t,
		ctx: context.Background(),
		db:  db,
		uow: unitofwork.NewRepositoryFactory(db),
		log: logger.NewNopLogger(),
	}
}

func (f *fixture) user(nick string) *entity.User {
	u := &entity.User{
		Id:           uuid.New(),
		Email:        fmt.Sprintf("%s-%s@example.com", nick, uuid.NewString()[:8]),
		Name:         nick,
		Nickname:     nick,
		PasswordHash: "x",
		LoginType:    entity.LoginTypeBasic,
	}
	require.NoError(f.t, implementation.NewUserRepository(f.db).Create(f.ctx, u))
	return u
}

func (f *fixture) diary(members ...*entity.User) *entity.Diary {
	repo := implementation.NewDiaryRepository(f.db)
	d := &entity.Diary{
		Id:       uuid.New(),
		Name:     "diary",
		Category: entity.DiaryCategoryFriend,
		Color:    entity.DiaryColorBlue,
	}
	require.NoError(f.t, repo.Create(f.ctx, d))
	for _, m := range members {
		require.NoError(f.t, repo.AddMember(f.ctx, &entity.DiaryUser{DiaryId: d.Id, UserId: m.Id}))
	}
	return d
}

type paperOpt func(*entity.Paper)

func deleted() paperOpt {
	return func(p *entity.Paper) {
		at := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
		p.DeletedAt = &at
	}
}

func at(address *entity.Address) paperOpt {
	return func(p *entity.Paper) {
		p.AddressId = &address.Id
	}
}

func (f *fixture) paper(diary *entity.Diary, writer *entity.User, createdAt time.Time, opts ...paperOpt) *entity.Paper {
	p := &entity.Paper{
		Id:        uuid.Must(uuid.NewV7()),
		DiaryId:   diary.Id,
		WriterId:  writer.Id,
		Title:     "paper " + createdAt.Format(time.RFC3339),
		CreatedAt: createdAt.UTC(),
	}
	for _, opt := range opts {
		opt(p)
	}
	require.NoError(f.t, implementation.NewPaperRepository(f.db).Create(f.ctx, p))
	return p
}

func (f *fixture) address(city, store string) *entity.Address {
	a := &entity.Address{Id: uuid.New(), City: city, Store: store}
	require.NoError(f.t, implementation.NewPaperRepository(f.db).CreateAddress(f.ctx, a))
	return a
}

func (f *fixture) great(user *entity.User, paper *entity.Paper, likedAt time.Time) {
	require.NoError(f.t, implementation.NewGreatRepository(f.db).Create(f.ctx, &entity.Great{
		Id:        uuid.New(),
		UserId:    user.Id,
		PaperId:   paper.Id,
		CreatedAt: likedAt.UTC(),
	}))
}

func ids[T any](items []T, id func(T) uuid.UUID) []uuid.UUID {
	out := make([]uuid.UUID, len(items))
	for i, item := range items {
		out[i] = id(item)
	}
	return out
}

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}
