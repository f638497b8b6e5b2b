package mapper

import (
	"time"

	"ustory-be/internal/entity"
	"ustory-be/internal/model"

	"gorm.io/gorm"
)

type UserMapper struct{}

func NewUserMapper() *UserMapper {
	return &UserMapper{}
}

func (m *UserMapper) ToEntity(u *model.User) *entity.User {
	if u == nil {
		return nil
	}

	var deletedAt *time.Time
	if u.DeletedAt.Valid {
		t := u.DeletedAt.Time
		deletedAt = &t
	}

	return &entity.User{
		Id:                 u.Id,
		Email:              u.Email,
		Name:               u.Name,
		Nickname:           u.Nickname,
		PasswordHash:       u.PasswordHash,
		LoginType:          entity.LoginType(u.LoginType),
		ProfileImgURL:      u.ProfileImgURL,
		ProfileDescription: u.ProfileDescription,
		CreatedAt:          u.CreatedAt,
		UpdatedAt:          u.UpdatedAt,
		DeletedAt:          deletedAt,
	}
}

func (m *UserMapper) ToModel(u *entity.User) *model.User {
	if u == nil {
		return nil
	}

	var deletedAt gorm.DeletedAt
	if u.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *u.DeletedAt, Valid: true}
	}

	return &model.User{
		Id:                 u.Id,
		Email:              u.Email,
		Name:               u.Name,
		Nickname:           u.Nickname,
		PasswordHash:       u.PasswordHash,
		LoginType:          string(u.LoginType),
		ProfileImgURL:      u.ProfileImgURL,
		ProfileDescription: u.ProfileDescription,
		CreatedAt:          u.CreatedAt,
		UpdatedAt:          u.UpdatedAt,
		DeletedAt:          deletedAt,
	}
}
