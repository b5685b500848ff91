package dto

import (
	"time"

	"github.com/google/uuid"
)

type HomepageContentDTO struct {
	Id          uuid.UUID `json:"id"`
	ContentType string    `json:"content_type"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	ImageURL    string    `json:"image_url"`
	LinkURL     string    `json:"link_url"`
	SortOrder   int       `json:"sort_order"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
