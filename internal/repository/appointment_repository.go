package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/PietroSRobusti/sus-para-todos/internal/model"
)

// AppointmentRepository defines appointment persistence operations. Every
// read and write is scoped to the owning user: the id predicate and the
// user_id predicate always travel in the same statement.
type AppointmentRepository interface {
	ListByUser(ctx context.Context, userID string) ([]model.Appointment, error)
	FindByID(ctx context.Context, id, userID string) (*model.Appointment, error)
	Create(ctx context.Context, appointment *model.Appointment) error
	Update(ctx context.Context, id, userID string, fields map[string]interface{}) (*model.Appointment, error)
	Delete(ctx context.Context, id, userID string) (bool, error)
}

type appointmentRepository struct {
	db *gorm.DB
}

// NewAppointmentRepository builds a GORM-backed repository.
func NewAppointmentRepository(db *gorm.DB) AppointmentRepository {
	return &appointmentRepository{db: db}
}

func (r *appointmentRepository) ListByUser(ctx context.Context, userID string) ([]model.Appointment, error) {
	var appointments []model.Appointment
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("appointment_date").
		Find(&appointments).Error; err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindByID(ctx context.Context, id, userID string) (*model.Appointment, error) {
	var appointment model.Appointment
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&appointment).Error; err != nil {
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) Create(ctx context.Context, appointment *model.Appointment) error {
	return r.db.WithContext(ctx).Create(appointment).Error
}

func (r *appointmentRepository) Update(ctx context.Context, id, userID string, fields map[string]interface{}) (*model.Appointment, error) {
	if len(fields) == 0 {
		return r.FindByID(ctx, id, userID)
	}
	tx := r.db.WithContext(ctx).Model(&model.Appointment{}).
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

func (r *appointmentRepository) Delete(ctx context.Context, id, userID string) (bool, error) {
	tx := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.Appointment{})
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}
