package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/PietroSRobusti/sus-para-todos/internal/model"
)

// HealthRecordRepository defines health-record persistence operations, scoped
// to the owning user exactly like AppointmentRepository.
type HealthRecordRepository interface {
	ListByUser(ctx context.Context, userID string) ([]model.HealthRecord, error)
	FindByID(ctx context.Context, id, userID string) (*model.HealthRecord, error)
	Create(ctx context.Context, record *model.HealthRecord) error
	Update(ctx context.Context, id, userID string, fields map[string]interface{}) (*model.HealthRecord, error)
	Delete(ctx context.Context, id, userID string) (bool, error)
}

type healthRecordRepository struct {
	db *gorm.DB
}

// NewHealthRecordRepository builds a GORM-backed repository.
func NewHealthRecordRepository(db *gorm.DB) HealthRecordRepository {
	return &healthRecordRepository{db: db}
}

func (r *healthRecordRepository) ListByUser(ctx context.Context, userID string) ([]model.HealthRecord, error) {
	var records []model.HealthRecord
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *healthRecordRepository) FindByID(ctx context.Context, id, userID string) (*model.HealthRecord, error) {
	var record model.HealthRecord
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *healthRecordRepository) Create(ctx context.Context, record *model.HealthRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *healthRecordRepository) Update(ctx context.Context, id, userID string, fields map[string]interface{}) (*model.HealthRecord, error) {
	if len(fields) == 0 {
		return r.FindByID(ctx, id, userID)
	}
	tx := r.db.WithContext(ctx).Model(&model.HealthRecord{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(fields)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.FindByID(ctx, id, userID)
}

func (r *healthRecordRepository) Delete(ctx context.Context, id, userID string) (bool, error) {
	tx := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.HealthRecord{})
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}
