package service

import (
	"context"
	"encoding/json"
	"errors"

	"gorm.io/gorm"

	"github.com/PietroSRobusti/sus-para-todos/internal/cache"
	apperrors "github.com/PietroSRobusti/sus-para-todos/internal/errors"
	"github.com/PietroSRobusti/sus-para-todos/internal/model"
	"github.com/PietroSRobusti/sus-para-todos/internal/repository"
)

const newsListCacheKey = "news:list"

// NewsInput is the validated payload for publishing a news item.
type NewsInput struct {
	Title    string
	Summary  string
	Content  string
	Category string
	ImageURL *string
}

// NewsService exposes the news feed operations.
type NewsService interface {
	List(ctx context.Context) ([]model.News, error)
	Get(ctx context.Context, id string) (*model.News, error)
	Create(ctx context.Context, input NewsInput) (*model.News, error)
	GenerateImage(ctx context.Context, id string) (string, error)
}

type newsService struct {
	repo   repository.NewsRepository
	images ImageGenerator
	cache  *cache.Client
}

// NewNewsService builds a NewsService.
func NewNewsService(repo repository.NewsRepository, images ImageGenerator, cache *cache.Client) NewsService {
	return &newsService{repo: repo, images: images, cache: cache}
}

func (s *newsService) List(ctx context.Context) ([]model.News, error) {
	if data, _ := s.cache.Get(ctx, newsListCacheKey); data != nil {
		var cached []model.News
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(items); err == nil {
		_ = s.cache.Set(ctx, newsListCacheKey, payload, directoryCacheTTL)
	}
	return items, nil
}

func (s *newsService) Get(ctx context.Context, id string) (*model.News, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNewsNotFound
		}
		return nil, err
	}
	return item, nil
}

func (s *newsService) Create(ctx context.Context, input NewsInput) (*model.News, error) {
	item := &model.News{
		Title:    input.Title,
		Summary:  input.Summary,
		Content:  input.Content,
		Category: input.Category,
		ImageURL: input.ImageURL,
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	_ = s.cache.Delete(ctx, newsListCacheKey)
	return item, nil
}

func (s *newsService) GenerateImage(ctx context.Context, id string) (string, error) {
	item, err := s.Get(ctx, id)
	if err != nil {
		return "", err
	}

	imageURL, err := s.images.GenerateNewsImage(ctx, item.Title, item.Category)
	if err != nil {
		return "", err
	}
	if err := s.repo.UpdateImage(ctx, id, imageURL); err != nil {
		return "", err
	}
	_ = s.cache.Delete(ctx, newsListCacheKey)
	return imageURL, nil
}
