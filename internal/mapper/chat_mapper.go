package mapper

import (
	"astro-observer/internal/entity"
	"astro-observer/internal/model"
)

type ChatMapper struct{}

func NewChatMapper() *ChatMapper {
	return &ChatMapper{}
}

func (m *ChatMapper) TurnToEntity(t *model.ChatTurn) *entity.ChatTurn {
	if t == nil {
		return nil
	}
	return &entity.ChatTurn{
		Id:            t.Id,
		UserId:        t.UserId,
		SessionId:     t.SessionId,
		Role:          t.Role,
		Content:       t.Content,
		ModuleContext: t.ModuleContext,
		CreatedAt:     t.CreatedAt,
	}
}

func (m *ChatMapper) TurnToModel(t *entity.ChatTurn) *model.ChatTurn {
	if t == nil {
		return nil
	}
	return &model.ChatTurn{
		Id:            t.Id,
		UserId:        t.UserId,
		SessionId:     t.SessionId,
		Role:          t.Role,
		Content:       t.Content,
		ModuleContext: t.ModuleContext,
		CreatedAt:     t.CreatedAt,
	}
}
