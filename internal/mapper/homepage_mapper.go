package mapper

import (
	"astro-observer/internal/entity"
	"astro-observer/internal/model"
)

type HomepageMapper struct{}

func NewHomepageMapper() *HomepageMapper {
	return &HomepageMapper{}
}

func (m *HomepageMapper) ToEntity(c *model.HomepageContent) *entity.HomepageContent {
	if c == nil {
		return nil
	}
	return &entity.HomepageContent{
		Id:          c.Id,
		ContentType: entity.HomepageContentType(c.ContentType),
		Title:       c.Title,
		Content:     c.Content,
		ImageURL:    c.ImageURL,
		LinkURL:     c.LinkURL,
		SortOrder:   c.SortOrder,
		IsActive:    c.IsActive,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func (m *HomepageMapper) ToModel(c *entity.HomepageContent) *model.HomepageContent {
	if c == nil {
		return nil
	}
	return &model.HomepageContent{
		Id:          c.Id,
		ContentType: string(c.ContentType),
		Title:       c.Title,
		Content:     c.Content,
		ImageURL:    c.ImageURL,
		LinkURL:     c.LinkURL,
		SortOrder:   c.SortOrder,
		IsActive:    c.IsActive,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
