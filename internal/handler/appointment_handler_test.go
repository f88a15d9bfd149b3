package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	apperrors "github.com/PietroSRobusti/sus-para-todos/internal/errors"
	"github.com/PietroSRobusti/sus-para-todos/internal/middleware"
	"github.com/PietroSRobusti/sus-para-todos/internal/model"
	"github.com/PietroSRobusti/sus-para-todos/internal/service"
)

// MockAppointmentService is a mock implementation of service.AppointmentService.
type MockAppointmentService struct {
	mock.Mock
}

func (m *MockAppointmentService) List(ctx context.Context, userID string) ([]model.Appointment, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Appointment), args.Error(1)
}

func (m *MockAppointmentService) Get(ctx context.Context, id, userID string) (*model.Appointment, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Appointment), args.Error(1)
}

func (m *MockAppointmentService) Create(ctx context.Context, input service.AppointmentInput, userID string) (*model.Appointment, error) {
	args := m.Called(ctx, input, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Appointment), args.Error(1)
}

func (m *MockAppointmentService) Update(ctx context.Context, id, userID string, patch service.AppointmentPatch) (*model.Appointment, error) {
	args := m.Called(ctx, id, userID, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Appointment), args.Error(1)
}

func (m *MockAppointmentService) Delete(ctx context.Context, id, userID string) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

func TestAppointmentHandler_Create(t *testing.T) {
	validBody := `{
		"hospitalId": "hosp-1",
		"specialtyId": "spec-1",
		"serviceType": "Consulta",
		"patientName": "Maria Silva",
		"patientCPF": "123.456.789-00",
		"patientBirth": "1990-05-01",
		"patientPhone": "11 99999-0000",
		"appointmentDate": "2026-10-01",
		"appointmentTime": "14:30"
	}`

	t.Run("booking uses the session user as owner", func(t *testing.T) {
		mockSvc := new(MockAppointmentService)
		mockSvc.On("Create", mock.Anything, mock.MatchedBy(func(in service.AppointmentInput) bool {
			return in.ServiceType == model.ServiceConsulta && in.AppointmentDate.Year() == 2026
		}), "user-1").Return(&model.Appointment{ID: "appt-1", UserID: "user-1"}, nil)

		c, rec := newTestContext(t, http.MethodPost, "/api/appointments", validBody)
		middleware.SetUserID(c, "user-1")
		h := NewAppointmentHandler(mockSvc, zap.NewNop())

		assert.NoError(t, h.Create(c))
		assert.Equal(t, http.StatusCreated, rec.Code)
		mockSvc.AssertExpectations(t)
	})

	t.Run("missing date is rejected before the service", func(t *testing.T) {
		mockSvc := new(MockAppointmentService)

		c, rec := newTestContext(t, http.MethodPost, "/api/appointments", `{
			"hospitalId": "hosp-1",
			"specialtyId": "spec-1",
			"serviceType": "Consulta",
			"patientName": "Maria Silva",
			"patientCPF": "123.456.789-00",
			"patientBirth": "1990-05-01",
			"patientPhone": "11 99999-0000",
			"appointmentTime": "14:30"
		}`)
		middleware.SetUserID(c, "user-1")
		h := NewAppointmentHandler(mockSvc, zap.NewNop())

		assert.NoError(t, h.Create(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var resp apperrors.ErrorResponse
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "O campo appointmentDate é obrigatório", resp.Error)
		mockSvc.AssertExpectations(t)
	})

	t.Run("unknown service type is rejected", func(t *testing.T) {
		mockSvc := new(MockAppointmentService)

		c, rec := newTestContext(t, http.MethodPost, "/api/appointments", `{
			"hospitalId": "hosp-1",
			"specialtyId": "spec-1",
			"serviceType": "Cirurgia",
			"patientName": "Maria Silva",
			"patientCPF": "123.456.789-00",
			"patientBirth": "1990-05-01",
			"patientPhone": "11 99999-0000",
			"appointmentDate": "2026-10-01",
			"appointmentTime": "14:30"
		}`)
		middleware.SetUserID(c, "user-1")
		h := NewAppointmentHandler(mockSvc, zap.NewNop())

		assert.NoError(t, h.Create(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		mockSvc.AssertExpectations(t)
	})
}

func TestAppointmentHandler_Get(t *testing.T) {
	t.Run("someone else's appointment reads as missing", func(t *testing.T) {
		mockSvc := new(MockAppointmentService)
		mockSvc.On("Get", mock.Anything, "appt-1", "user-2").
			Return(nil, apperrors.ErrAppointmentNotFound)

		c, rec := newTestContext(t, http.MethodGet, "/api/appointments/appt-1", "")
		c.SetParamNames("id")
		c.SetParamValues("appt-1")
		middleware.SetUserID(c, "user-2")
		h := NewAppointmentHandler(mockSvc, zap.NewNop())

		assert.NoError(t, h.Get(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)

		var resp apperrors.ErrorResponse
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Agendamento não encontrado", resp.Error)
		mockSvc.AssertExpectations(t)
	})
}

func TestAppointmentHandler_Update(t *testing.T) {
	mockSvc := new(MockAppointmentService)
	mockSvc.On("Update", mock.Anything, "appt-1", "user-1", mock.MatchedBy(func(p service.AppointmentPatch) bool {
		return p.AppointmentTime != nil && *p.AppointmentTime == "09:00" && p.PatientName == nil
	})).Return(&model.Appointment{ID: "appt-1", UserID: "user-1", AppointmentTime: "09:00"}, nil)

	c, rec := newTestContext(t, http.MethodPut, "/api/appointments/appt-1", `{"appointmentTime":"09:00"}`)
	c.SetParamNames("id")
	c.SetParamValues("appt-1")
	middleware.SetUserID(c, "user-1")
	h := NewAppointmentHandler(mockSvc, zap.NewNop())

	assert.NoError(t, h.Update(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	mockSvc.AssertExpectations(t)
}

func TestAppointmentHandler_Delete(t *testing.T) {
	t.Run("cancel", func(t *testing.T) {
		mockSvc := new(MockAppointmentService)
		mockSvc.On("Delete", mock.Anything, "appt-1", "user-1").Return(nil)

		c, rec := newTestContext(t, http.MethodDelete, "/api/appointments/appt-1", "")
		c.SetParamNames("id")
		c.SetParamValues("appt-1")
		middleware.SetUserID(c, "user-1")
		h := NewAppointmentHandler(mockSvc, zap.NewNop())

		assert.NoError(t, h.Delete(c))
		assert.Equal(t, http.StatusNoContent, rec.Code)
		mockSvc.AssertExpectations(t)
	})

	t.Run("cancelling a missing appointment is not found", func(t *testing.T) {
		mockSvc := new(MockAppointmentService)
		mockSvc.On("Delete", mock.Anything, "ghost", "user-1").Return(apperrors.ErrAppointmentNotFound)

		c, rec := newTestContext(t, http.MethodDelete, "/api/appointments/ghost", "")
		c.SetParamNames("id")
		c.SetParamValues("ghost")
		middleware.SetUserID(c, "user-1")
		h := NewAppointmentHandler(mockSvc, zap.NewNop())

		assert.NoError(t, h.Delete(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
		mockSvc.AssertExpectations(t)
	})
}
