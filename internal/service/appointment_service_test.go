package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "github.com/PietroSRobusti/sus-para-todos/internal/errors"
	"github.com/PietroSRobusti/sus-para-todos/internal/model"
)

// MockAppointmentRepository is a mock implementation of repository.AppointmentRepository.
type MockAppointmentRepository struct {
	mock.Mock
}

func (m *MockAppointmentRepository) ListByUser(ctx context.Context, userID string) ([]model.Appointment, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) FindByID(ctx context.Context, id, userID string) (*model.Appointment, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) Create(ctx context.Context, appointment *model.Appointment) error {
	args := m.Called(ctx, appointment)
	return args.Error(0)
}

func (m *MockAppointmentRepository) Update(ctx context.Context, id, userID string, fields map[string]interface{}) (*model.Appointment, error) {
	args := m.Called(ctx, id, userID, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) Delete(ctx context.Context, id, userID string) (bool, error) {
	args := m.Called(ctx, id, userID)
	return args.Bool(0), args.Error(1)
}

func TestAppointmentService_Create(t *testing.T) {
	mockRepo := new(MockAppointmentRepository)
	mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(a *model.Appointment) bool {
		return a.UserID == "user-1" && a.ServiceType == model.ServiceConsulta
	})).Return(nil)

	svc := NewAppointmentService(mockRepo)
	appointment, err := svc.Create(context.Background(), AppointmentInput{
		HospitalID:      "hosp-1",
		SpecialtyID:     "spec-1",
		ServiceType:     model.ServiceConsulta,
		PatientName:     "Maria Silva",
		PatientCPF:      "123.456.789-00",
		AppointmentDate: time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
		AppointmentTime: "14:30",
	}, "user-1")

	assert.NoError(t, err)
	assert.Equal(t, "user-1", appointment.UserID)
	mockRepo.AssertExpectations(t)
}

func TestAppointmentService_Get(t *testing.T) {
	t.Run("owner sees their appointment", func(t *testing.T) {
		mockRepo := new(MockAppointmentRepository)
		mockRepo.On("FindByID", mock.Anything, "appt-1", "user-1").
			Return(&model.Appointment{ID: "appt-1", UserID: "user-1"}, nil)

		svc := NewAppointmentService(mockRepo)
		appointment, err := svc.Get(context.Background(), "appt-1", "user-1")
		assert.NoError(t, err)
		assert.Equal(t, "appt-1", appointment.ID)
		mockRepo.AssertExpectations(t)
	})

	t.Run("another user's appointment is indistinguishable from a missing one", func(t *testing.T) {
		mockRepo := new(MockAppointmentRepository)
		mockRepo.On("FindByID", mock.Anything, "appt-1", "user-2").Return(nil, gorm.ErrRecordNotFound)

		svc := NewAppointmentService(mockRepo)
		_, err := svc.Get(context.Background(), "appt-1", "user-2")
		assert.ErrorIs(t, err, apperrors.ErrAppointmentNotFound)
		mockRepo.AssertExpectations(t)
	})
}

func TestAppointmentService_Update(t *testing.T) {
	strPtr := func(s string) *string { return &s }

	t.Run("patch maps only the provided columns", func(t *testing.T) {
		mockRepo := new(MockAppointmentRepository)
		mockRepo.On("Update", mock.Anything, "appt-1", "user-1", map[string]interface{}{
			"patient_cpf":      "987.654.321-00",
			"appointment_time": "09:00",
		}).Return(&model.Appointment{ID: "appt-1", UserID: "user-1"}, nil)

		svc := NewAppointmentService(mockRepo)
		_, err := svc.Update(context.Background(), "appt-1", "user-1", AppointmentPatch{
			PatientCPF:      strPtr("987.654.321-00"),
			AppointmentTime: strPtr("09:00"),
		})
		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("cross-user update is not found", func(t *testing.T) {
		mockRepo := new(MockAppointmentRepository)
		mockRepo.On("Update", mock.Anything, "appt-1", "user-2", mock.Anything).Return(nil, gorm.ErrRecordNotFound)

		svc := NewAppointmentService(mockRepo)
		_, err := svc.Update(context.Background(), "appt-1", "user-2", AppointmentPatch{AppointmentTime: strPtr("09:00")})
		assert.ErrorIs(t, err, apperrors.ErrAppointmentNotFound)
		mockRepo.AssertExpectations(t)
	})
}

func TestAppointmentService_Delete(t *testing.T) {
	t.Run("owner delete", func(t *testing.T) {
		mockRepo := new(MockAppointmentRepository)
		mockRepo.On("Delete", mock.Anything, "appt-1", "user-1").Return(true, nil)

		svc := NewAppointmentService(mockRepo)
		assert.NoError(t, svc.Delete(context.Background(), "appt-1", "user-1"))
		mockRepo.AssertExpectations(t)
	})

	t.Run("cross-user delete is not found", func(t *testing.T) {
		mockRepo := new(MockAppointmentRepository)
		mockRepo.On("Delete", mock.Anything, "appt-1", "user-2").Return(false, nil)

		svc := NewAppointmentService(mockRepo)
		assert.ErrorIs(t, svc.Delete(context.Background(), "appt-1", "user-2"), apperrors.ErrAppointmentNotFound)
		mockRepo.AssertExpectations(t)
	})
}
