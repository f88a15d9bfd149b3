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

const specialtyListCacheKey = "specialties:list"

// ImageGenerator is the external collaborator that turns a name or headline
// into an illustration URL.
type ImageGenerator interface {
	GenerateSpecialtyIcon(ctx context.Context, name string) (string, error)
	GenerateNewsImage(ctx context.Context, title, category string) (string, error)
}

// SpecialtyService exposes the specialty directory operations.
type SpecialtyService interface {
	List(ctx context.Context) ([]model.Specialty, error)
	Get(ctx context.Context, id string) (*model.Specialty, error)
	Create(ctx context.Context, name string, imageURL *string) (*model.Specialty, error)
	// GenerateImage asks the external collaborator for an icon and stores
	// the resulting URL as a narrow single-field write.
	GenerateImage(ctx context.Context, id string) (string, error)
}

type specialtyService struct {
	repo   repository.SpecialtyRepository
	images ImageGenerator
	cache  *cache.Client
}

// NewSpecialtyService builds a SpecialtyService.
func NewSpecialtyService(repo repository.SpecialtyRepository, images ImageGenerator, cache *cache.Client) SpecialtyService {
	return &specialtyService{repo: repo, images: images, cache: cache}
}

func (s *specialtyService) List(ctx context.Context) ([]model.Specialty, error) {
	if data, _ := s.cache.Get(ctx, specialtyListCacheKey); data != nil {
		var cached []model.Specialty
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	specialties, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(specialties); err == nil {
		_ = s.cache.Set(ctx, specialtyListCacheKey, payload, directoryCacheTTL)
	}
	return specialties, nil
}

func (s *specialtyService) Get(ctx context.Context, id string) (*model.Specialty, error) {
	specialty, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSpecialtyNotFound
		}
		return nil, err
	}
	return specialty, nil
}

func (s *specialtyService) Create(ctx context.Context, name string, imageURL *string) (*model.Specialty, error) {
	existing, err := s.repo.FindByName(ctx, name)
	if err == nil && existing != nil {
		return nil, apperrors.ErrSpecialtyTaken
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	specialty := &model.Specialty{Name: name, ImageURL: imageURL}
	if err := s.repo.Create(ctx, specialty); err != nil {
		return nil, err
	}
	_ = s.cache.Delete(ctx, specialtyListCacheKey)
	return specialty, nil
}

func (s *specialtyService) GenerateImage(ctx context.Context, id string) (string, error) {
	specialty, err := s.Get(ctx, id)
	if err != nil {
		return "", err
	}

	imageURL, err := s.images.GenerateSpecialtyIcon(ctx, specialty.Name)
	if err != nil {
		return "", err
	}
	if err := s.repo.UpdateImage(ctx, id, imageURL); err != nil {
		return "", err
	}
	_ = s.cache.Delete(ctx, specialtyListCacheKey)
	return imageURL, nil
}
