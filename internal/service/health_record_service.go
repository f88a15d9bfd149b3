package service

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "github.com/PietroSRobusti/sus-para-todos/internal/errors"
	"github.com/PietroSRobusti/sus-para-todos/internal/model"
	"github.com/PietroSRobusti/sus-para-todos/internal/repository"
)

// HealthRecordInput is the validated payload for a new health-log entry.
// Ownership comes from the session, never from the body.
type HealthRecordInput struct {
	Title string
	Date  time.Time
	Notes *string
}

// HealthRecordPatch carries a partial update; nil fields stay untouched.
type HealthRecordPatch struct {
	Title *string
	Date  *time.Time
	Notes *string
}

// HealthRecordService exposes the personal health-log operations, all scoped
// to the calling user.
type HealthRecordService interface {
	List(ctx context.Context, userID string) ([]model.HealthRecord, error)
	Get(ctx context.Context, id, userID string) (*model.HealthRecord, error)
	Create(ctx context.Context, input HealthRecordInput, userID string) (*model.HealthRecord, error)
	Update(ctx context.Context, id, userID string, patch HealthRecordPatch) (*model.HealthRecord, error)
	Delete(ctx context.Context, id, userID string) error
}

type healthRecordService struct {
	repo repository.HealthRecordRepository
}

// NewHealthRecordService builds a HealthRecordService.
func NewHealthRecordService(repo repository.HealthRecordRepository) HealthRecordService {
	return &healthRecordService{repo: repo}
}

func (s *healthRecordService) List(ctx context.Context, userID string) ([]model.HealthRecord, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *healthRecordService) Get(ctx context.Context, id, userID string) (*model.HealthRecord, error) {
	record, err := s.repo.FindByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrHealthRecordNotFound
		}
		return nil, err
	}
	return record, nil
}

func (s *healthRecordService) Create(ctx context.Context, input HealthRecordInput, userID string) (*model.HealthRecord, error) {
	record := &model.HealthRecord{
		UserID: userID,
		Title:  input.Title,
		Date:   input.Date,
		Notes:  input.Notes,
	}
	if err := s.repo.Create(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

func (s *healthRecordService) Update(ctx context.Context, id, userID string, patch HealthRecordPatch) (*model.HealthRecord, error) {
	fields := map[string]interface{}{}
	if patch.Title != nil {
		fields["title"] = *patch.Title
	}
	if patch.Date != nil {
		fields["date"] = *patch.Date
	}
	if patch.Notes != nil {
		fields["notes"] = *patch.Notes
	}

	record, err := s.repo.Update(ctx, id, userID, fields)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrHealthRecordNotFound
		}
		return nil, err
	}
	return record, nil
}

func (s *healthRecordService) Delete(ctx context.Context, id, userID string) error {
	deleted, err := s.repo.Delete(ctx, id, userID)
	if err != nil {
		return err
	}
	if !deleted {
		return apperrors.ErrHealthRecordNotFound
	}
	return nil
}
