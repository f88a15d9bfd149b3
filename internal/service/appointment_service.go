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

// AppointmentInput is the validated payload for booking an appointment. The
// owner id is not part of it: it arrives as a trusted parameter taken from
// the session, never from the request body.
type AppointmentInput struct {
	HospitalID      string
	SpecialtyID     string
	ServiceType     string
	PatientName     string
	PatientCPF      string
	PatientBirth    string
	PatientPhone    string
	AppointmentDate time.Time
	AppointmentTime string
}

// AppointmentPatch carries a partial update; nil fields stay untouched.
type AppointmentPatch struct {
	HospitalID      *string
	SpecialtyID     *string
	ServiceType     *string
	PatientName     *string
	PatientCPF      *string
	PatientBirth    *string
	PatientPhone    *string
	AppointmentDate *time.Time
	AppointmentTime *string
}

// AppointmentService exposes the booking operations, all scoped to the
// calling user.
type AppointmentService interface {
	List(ctx context.Context, userID string) ([]model.Appointment, error)
	Get(ctx context.Context, id, userID string) (*model.Appointment, error)
	Create(ctx context.Context, input AppointmentInput, userID string) (*model.Appointment, error)
	Update(ctx context.Context, id, userID string, patch AppointmentPatch) (*model.Appointment, error)
	Delete(ctx context.Context, id, userID string) error
}

type appointmentService struct {
	repo repository.AppointmentRepository
}

// NewAppointmentService builds an AppointmentService.
func NewAppointmentService(repo repository.AppointmentRepository) AppointmentService {
	return &appointmentService{repo: repo}
}

func (s *appointmentService) List(ctx context.Context, userID string) ([]model.Appointment, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *appointmentService) Get(ctx context.Context, id, userID string) (*model.Appointment, error) {
	appointment, err := s.repo.FindByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAppointmentNotFound
		}
		return nil, err
	}
	return appointment, nil
}

func (s *appointmentService) Create(ctx context.Context, input AppointmentInput, userID string) (*model.Appointment, error) {
	appointment := &model.Appointment{
		UserID:          userID,
		HospitalID:      input.HospitalID,
		SpecialtyID:     input.SpecialtyID,
		ServiceType:     input.ServiceType,
		PatientName:     input.PatientName,
		PatientCPF:      input.PatientCPF,
		PatientBirth:    input.PatientBirth,
		PatientPhone:    input.PatientPhone,
		AppointmentDate: input.AppointmentDate,
		AppointmentTime: input.AppointmentTime,
	}
	if err := s.repo.Create(ctx, appointment); err != nil {
		return nil, err
	}
	return appointment, nil
}

func (s *appointmentService) Update(ctx context.Context, id, userID string, patch AppointmentPatch) (*model.Appointment, error) {
	fields := map[string]interface{}{}
	if patch.HospitalID != nil {
		fields["hospital_id"] = *patch.HospitalID
	}
	if patch.SpecialtyID != nil {
		fields["specialty_id"] = *patch.SpecialtyID
	}
	if patch.ServiceType != nil {
		fields["service_type"] = *patch.ServiceType
	}
	if patch.PatientName != nil {
		fields["patient_name"] = *patch.PatientName
	}
	if patch.PatientCPF != nil {
		fields["patient_cpf"] = *patch.PatientCPF
	}
	if patch.PatientBirth != nil {
		fields["patient_birth"] = *patch.PatientBirth
	}
	if patch.PatientPhone != nil {
		fields["patient_phone"] = *patch.PatientPhone
	}
	if patch.AppointmentDate != nil {
		fields["appointment_date"] = *patch.AppointmentDate
	}
	if patch.AppointmentTime != nil {
		fields["appointment_time"] = *patch.AppointmentTime
	}

	appointment, err := s.repo.Update(ctx, id, userID, fields)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAppointmentNotFound
		}
		return nil, err
	}
	return appointment, nil
}

func (s *appointmentService) Delete(ctx context.Context, id, userID string) error {
	deleted, err := s.repo.Delete(ctx, id, userID)
	if err != nil {
		return err
	}
	if !deleted {
		return apperrors.ErrAppointmentNotFound
	}
	return nil
}
