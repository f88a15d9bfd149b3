package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/PietroSRobusti/sus-para-todos/internal/cache"
	apperrors "github.com/PietroSRobusti/sus-para-todos/internal/errors"
	"github.com/PietroSRobusti/sus-para-todos/internal/model"
	"github.com/PietroSRobusti/sus-para-todos/internal/repository"
)

const (
	hospitalListCacheKey = "hospitals:list"
	directoryCacheTTL    = 5 * time.Minute
)

// HospitalInput is the validated payload for creating a hospital.
type HospitalInput struct {
	Name    string
	Address string
	Phone   *string
}

// HospitalPatch carries the fields of a partial update; nil means untouched.
type HospitalPatch struct {
	Name    *string
	Address *string
	Phone   *string
}

// HospitalService exposes the hospital directory operations.
type HospitalService interface {
	List(ctx context.Context) ([]model.Hospital, error)
	Get(ctx context.Context, id string) (*model.Hospital, error)
	Create(ctx context.Context, input HospitalInput) (*model.Hospital, error)
	Update(ctx context.Context, id string, patch HospitalPatch) (*model.Hospital, error)
	Delete(ctx context.Context, id string) error
}

type hospitalService struct {
	repo  repository.HospitalRepository
	cache *cache.Client
}

// NewHospitalService builds a HospitalService with repository and cache.
func NewHospitalService(repo repository.HospitalRepository, cache *cache.Client) HospitalService {
	return &hospitalService{repo: repo, cache: cache}
}

func (s *hospitalService) List(ctx context.Context) ([]model.Hospital, error) {
	if data, _ := s.cache.Get(ctx, hospitalListCacheKey); data != nil {
		var cached []model.Hospital
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	hospitals, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(hospitals); err == nil {
		_ = s.cache.Set(ctx, hospitalListCacheKey, payload, directoryCacheTTL)
	}
	return hospitals, nil
}

func (s *hospitalService) Get(ctx context.Context, id string) (*model.Hospital, error) {
	hospital, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrHospitalNotFound
		}
		return nil, err
	}
	return hospital, nil
}

func (s *hospitalService) Create(ctx context.Context, input HospitalInput) (*model.Hospital, error) {
	hospital := &model.Hospital{
		Name:    input.Name,
		Address: input.Address,
		Phone:   input.Phone,
	}
	if err := s.repo.Create(ctx, hospital); err != nil {
		return nil, err
	}
	_ = s.cache.Delete(ctx, hospitalListCacheKey)
	return hospital, nil
}

func (s *hospitalService) Update(ctx context.Context, id string, patch HospitalPatch) (*model.Hospital, error) {
	fields := map[string]interface{}{}
	if patch.Name != nil {
		fields["name"] = *patch.Name
	}
	if patch.Address != nil {
		fields["address"] = *patch.Address
	}
	if patch.Phone != nil {
		fields["phone"] = *patch.Phone
	}

	hospital, err := s.repo.Update(ctx, id, fields)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrHospitalNotFound
		}
		return nil, err
	}
	_ = s.cache.Delete(ctx, hospitalListCacheKey)
	return hospital, nil
}

func (s *hospitalService) Delete(ctx context.Context, id string) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return apperrors.ErrHospitalNotFound
	}
	_ = s.cache.Delete(ctx, hospitalListCacheKey)
	return nil
}
