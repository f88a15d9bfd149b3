package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/PietroSRobusti/sus-para-todos/internal/model"
)

// NewsRepository defines news persistence operations.
type NewsRepository interface {
	List(ctx context.Context) ([]model.News, error)
	FindByID(ctx context.Context, id string) (*model.News, error)
	Create(ctx context.Context, item *model.News) error
	// UpdateImage is the narrow single-field write used by the external
	// image-generation collaborator.
	UpdateImage(ctx context.Context, id, imageURL string) error
}

type newsRepository struct {
	db *gorm.DB
}

// NewNewsRepository builds a GORM-backed repository.
func NewNewsRepository(db *gorm.DB) NewsRepository {
	return &newsRepository{db: db}
}

func (r *newsRepository) List(ctx context.Context) ([]model.News, error) {
	var items []model.News
	if err := r.db.WithContext(ctx).
		Order("published_at DESC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *newsRepository) FindByID(ctx context.Context, id string) (*model.News, error) {
	var item model.News
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *newsRepository) Create(ctx context.Context, item *model.News) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *newsRepository) UpdateImage(ctx context.Context, id, imageURL string) error {
	return r.db.WithContext(ctx).Model(&model.News{}).
		Where("id = ?", id).
		Update("image_url", imageURL).Error
}
