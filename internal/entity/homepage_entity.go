package entity

import (
	"time"

	"github.com/google/uuid"
)

type HomepageContentType string

const (
	ContentTypeBackground HomepageContentType = "background"
	ContentTypeCarousel   HomepageContentType = "carousel"
	ContentTypeUpdate     HomepageContentType = "update"
	ContentTypeKnowledge  HomepageContentType = "knowledge"
)

type HomepageContent struct {
	Id          uuid.UUID
	ContentType HomepageContentType
	Title       string
	Content     string
	ImageURL    string
	LinkURL     string
	SortOrder   int
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
