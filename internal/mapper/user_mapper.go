package mapper

import (
	"astro-observer/internal/entity"
	"astro-observer/internal/model"
)

type UserMapper struct{}

func NewUserMapper() *UserMapper {
	return &UserMapper{}
}

func (m *UserMapper) ToEntity(u *model.User) *entity.User {
	if u == nil {
		return nil
	}
	return &entity.User{
		Id:                    u.Id,
		Username:              u.Username,
		Email:                 u.Email,
		PasswordHash:          u.PasswordHash,
		Nickname:              u.Nickname,
		AvatarURL:             u.AvatarURL,
		AiDailyUsage:          u.AiDailyUsage,
		AiDailyUsageLastReset: u.AiDailyUsageLastReset,
		CreatedAt:             u.CreatedAt,
		UpdatedAt:             u.UpdatedAt,
	}
}

func (m *UserMapper) ToModel(u *entity.User) *model.User {
	if u == nil {
		return nil
	}
	return &model.User{
		Id:                    u.Id,
		Username:              u.Username,
		Email:                 u.Email,
		PasswordHash:          u.PasswordHash,
		Nickname:              u.Nickname,
		AvatarURL:             u.AvatarURL,
		AiDailyUsage:          u.AiDailyUsage,
		AiDailyUsageLastReset: u.AiDailyUsageLastReset,
		CreatedAt:             u.CreatedAt,
		UpdatedAt:             u.UpdatedAt,
	}
}
