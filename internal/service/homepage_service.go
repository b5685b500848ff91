package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"astro-observer/internal/dto"
	"astro-observer/internal/entity"
	"astro-observer/internal/repository/specification"
	"astro-observer/internal/repository/unitofwork"

	"github.com/redis/go-redis/v9"
)

const homepageCacheTTL = 5 * time.Minute

type IHomepageService interface {
	GetContent(ctx context.Context, contentType string) ([]*dto.HomepageContentDTO, error)
}

// homepageService serves the landing page blocks. The rows barely ever
// change, so reads go through Redis; a cold or absent Redis just means
// hitting the DB.
type homepageService struct {
	uowFactory unitofwork.RepositoryFactory
	redis      *redis.Client
}

func NewHomepageService(uowFactory unitofwork.RepositoryFactory, redisClient *redis.Client) IHomepageService {
	return &homepageService{
		uowFactory: uowFactory,
		redis:      redisClient,
	}
}

func (s *homepageService) GetContent(ctx context.Context, contentType string) ([]*dto.HomepageContentDTO, error) {
	if contentType != "" && !validContentType(contentType) {
		return nil, errors.New("invalid content type")
	}

	cacheKey := "homepage:content:" + contentType
	if s.redis != nil {
		if cached, err := s.redis.Get(ctx, cacheKey).Result(); err == nil {
			var items []*dto.HomepageContentDTO
			if err := json.Unmarshal([]byte(cached), &items); err == nil {
				return items, nil
			}
		}
	}

	specs := []specification.Specification{
		specification.ActiveOnly{},
		specification.OrderBy{Field: "sort_order", Desc: false},
		specification.OrderBy{Field: "created_at", Desc: true},
	}
	if contentType != "" {
		specs = append([]specification.Specification{specification.ByContentType{ContentType: contentType}}, specs...)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	records, err := uow.HomepageContentRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.HomepageContentDTO, 0, len(records))
	for _, r := range records {
		items = append(items, &dto.HomepageContentDTO{
			Id:          r.Id,
			ContentType: string(r.ContentType),
			Title:       r.Title,
			Content:     r.Content,
			ImageURL:    r.ImageURL,
			LinkURL:     r.LinkURL,
			SortOrder:   r.SortOrder,
			IsActive:    r.IsActive,
			CreatedAt:   r.CreatedAt,
			UpdatedAt:   r.UpdatedAt,
		})
	}

	if s.redis != nil {
		if payload, err := json.Marshal(items); err == nil {
			s.redis.Set(ctx, cacheKey, payload, homepageCacheTTL)
		}
	}

	return items, nil
}

func validContentType(contentType string) bool {
	switch entity.HomepageContentType(contentType) {
	case entity.ContentTypeBackground, entity.ContentTypeCarousel, entity.ContentTypeUpdate, entity.ContentTypeKnowledge:
		return true
	}
	return false
}
