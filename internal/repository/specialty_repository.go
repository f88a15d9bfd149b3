package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/PietroSRobusti/sus-para-todos/internal/model"
)

// SpecialtyRepository defines specialty directory persistence operations.
type SpecialtyRepository interface {
	List(ctx context.Context) ([]model.Specialty, error)
	FindByID(ctx context.Context, id string) (*model.Specialty, error)
	FindByName(ctx context.Context, name string) (*model.Specialty, error)
	Create(ctx context.Context, specialty *model.Specialty) error
	// UpdateImage is the narrow single-field write used by the external
	// image-generation collaborator. It bypasses the partial-update path.
	UpdateImage(ctx context.Context, id, imageURL string) error
}

type specialtyRepository struct {
	db *gorm.DB
}

// NewSpecialtyRepository builds a GORM-backed repository.
func NewSpecialtyRepository(db *gorm.DB) SpecialtyRepository {
	return &specialtyRepository{db: db}
}

func (r *specialtyRepository) List(ctx context.Context) ([]model.Specialty, error) {
	var specialties []model.Specialty
	if err := r.db.WithContext(ctx).Find(&specialties).Error; err != nil {
		return nil, err
	}
	return specialties, nil
}

func (r *specialtyRepository) FindByID(ctx context.Context, id string) (*model.Specialty, error) {
	var specialty model.Specialty
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&specialty).Error; err != nil {
		return nil, err
	}
	return &specialty, nil
}

func (r *specialtyRepository) FindByName(ctx context.Context, name string) (*model.Specialty, error) {
	var specialty model.Specialty
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&specialty).Error; err != nil {
		return nil, err
	}
	return &specialty, nil
}

func (r *specialtyRepository) Create(ctx context.Context, specialty *model.Specialty) error {
	return r.db.WithContext(ctx).Create(specialty).Error
}

func (r *specialtyRepository) UpdateImage(ctx context.Context, id, imageURL string) error {
	return r.db.WithContext(ctx).Model(&model.Specialty{}).
		Where("id = ?", id).
		Update("image_url", imageURL).Error
}
