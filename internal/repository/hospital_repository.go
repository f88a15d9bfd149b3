package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/PietroSRobusti/sus-para-todos/internal/model"
)

// HospitalRepository defines hospital directory persistence operations.
type HospitalRepository interface {
	List(ctx context.Context) ([]model.Hospital, error)
	FindByID(ctx context.Context, id string) (*model.Hospital, error)
	Create(ctx context.Context, hospital *model.Hospital) error
	Update(ctx context.Context, id string, fields map[string]interface{}) (*model.Hospital, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type hospitalRepository struct {
	db *gorm.DB
}

// NewHospitalRepository builds a GORM-backed repository.
func NewHospitalRepository(db *gorm.DB) HospitalRepository {
	return &hospitalRepository{db: db}
}

func (r *hospitalRepository) List(ctx context.Context) ([]model.Hospital, error) {
	var hospitals []model.Hospital
	if err := r.db.WithContext(ctx).Find(&hospitals).Error; err != nil {
		return nil, err
	}
	return hospitals, nil
}

func (r *hospitalRepository) FindByID(ctx context.Context, id string) (*model.Hospital, error) {
	var hospital model.Hospital
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&hospital).Error; err != nil {
		return nil, err
	}
	return &hospital, nil
}

func (r *hospitalRepository) Create(ctx context.Context, hospital *model.Hospital) error {
	return r.db.WithContext(ctx).Create(hospital).Error
}

// Update applies only the supplied fields; omitted columns keep their values.
func (r *hospitalRepository) Update(ctx context.Context, id string, fields map[string]interface{}) (*model.Hospital, error) {
	if len(fields) == 0 {
		return r.FindByID(ctx, id)
	}
	tx := r.db.WithContext(ctx).Model(&model.Hospital{}).
		Where("id = ?", id).
		Updates(fields)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.FindByID(ctx, id)
}

// Delete removes the row and reports whether anything was deleted, so the
// handler can map "affected zero rows" to a 404.
func (r *hospitalRepository) Delete(ctx context.Context, id string) (bool, error) {
	tx := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Hospital{})
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}
