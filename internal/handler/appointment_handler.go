package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/PietroSRobusti/sus-para-todos/internal/middleware"
	"github.com/PietroSRobusti/sus-para-todos/internal/service"
	"github.com/PietroSRobusti/sus-para-todos/internal/validation"
)

// AppointmentHandler handles the booking endpoints. All routes run behind
// RequireAuth, and every service call carries the session's user id.
type AppointmentHandler struct {
	svc service.AppointmentService
	log *zap.Logger
}

// NewAppointmentHandler creates a new appointment handler.
func NewAppointmentHandler(svc service.AppointmentService, log *zap.Logger) *AppointmentHandler {
	return &AppointmentHandler{svc: svc, log: log}
}

// AppointmentRequest is the payload for booking an appointment. It carries
// no owner field: the owner is always the session user.
type AppointmentRequest struct {
	HospitalID      string          `json:"hospitalId" validate:"required"`
	SpecialtyID     string          `json:"specialtyId" validate:"required"`
	ServiceType     string          `json:"serviceType" validate:"required,oneof=Consulta Exame"`
	PatientName     string          `json:"patientName" validate:"required"`
	PatientCPF      string          `json:"patientCPF" validate:"required"`
	PatientBirth    string          `json:"patientBirth" validate:"required"`
	PatientPhone    string          `json:"patientPhone" validate:"required"`
	AppointmentDate validation.Date `json:"appointmentDate"`
	AppointmentTime string          `json:"appointmentTime" validate:"required"`
}

// AppointmentPatchRequest is the partial payload for rescheduling or editing.
type AppointmentPatchRequest struct {
	HospitalID      *string          `json:"hospitalId"`
	SpecialtyID     *string          `json:"specialtyId"`
	ServiceType     *string          `json:"serviceType" validate:"omitempty,oneof=Consulta Exame"`
	PatientName     *string          `json:"patientName"`
	PatientCPF      *string          `json:"patientCPF"`
	PatientBirth    *string          `json:"patientBirth"`
	PatientPhone    *string          `json:"patientPhone"`
	AppointmentDate *validation.Date `json:"appointmentDate"`
	AppointmentTime *string          `json:"appointmentTime"`
}

// List godoc
// @Summary List the caller's appointments
// @Tags appointments
// @Produce json
// @Success 200 {array} model.Appointment
// @Failure 401 {object} errors.ErrorResponse
// @Router /appointments [get]
func (h *AppointmentHandler) List(c echo.Context) error {
	appointments, err := h.svc.List(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, appointments)
}

// Get godoc
// @Summary Get one of the caller's appointments
// @Tags appointments
// @Produce json
// @Param id path string true "Appointment ID"
// @Success 200 {object} model.Appointment
// @Failure 404 {object} errors.ErrorResponse
// @Router /appointments/{id} [get]
func (h *AppointmentHandler) Get(c echo.Context) error {
	appointment, err := h.svc.Get(c.Request().Context(), c.Param("id"), middleware.UserID(c))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, appointment)
}

// Create godoc
// @Summary Book an appointment
// @Tags appointments
// @Accept json
// @Produce json
// @Param request body AppointmentRequest true "Appointment data"
// @Success 201 {object} model.Appointment
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /appointments [post]
func (h *AppointmentHandler) Create(c echo.Context) error {
	var req AppointmentRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Corpo da requisição inválido")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, validation.First(err))
	}
	if req.AppointmentDate.IsZero() {
		return badRequest(c, "O campo appointmentDate é obrigatório")
	}

	appointment, err := h.svc.Create(c.Request().Context(), service.AppointmentInput{
		HospitalID:      req.HospitalID,
		SpecialtyID:     req.SpecialtyID,
		ServiceType:     req.ServiceType,
		PatientName:     req.PatientName,
		PatientCPF:      req.PatientCPF,
		PatientBirth:    req.PatientBirth,
		PatientPhone:    req.PatientPhone,
		AppointmentDate: req.AppointmentDate.Time,
		AppointmentTime: req.AppointmentTime,
	}, middleware.UserID(c))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusCreated, appointment)
}

// Update godoc
// @Summary Edit or reschedule an appointment
// @Tags appointments
// @Accept json
// @Produce json
// @Param id path string true "Appointment ID"
// @Param request body AppointmentPatchRequest true "Fields to change"
// @Success 200 {object} model.Appointment
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /appointments/{id} [put]
func (h *AppointmentHandler) Update(c echo.Context) error {
	var req AppointmentPatchRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Corpo da requisição inválido")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, validation.First(err))
	}

	patch := service.AppointmentPatch{
		HospitalID:      req.HospitalID,
		SpecialtyID:     req.SpecialtyID,
		ServiceType:     req.ServiceType,
		PatientName:     req.PatientName,
		PatientCPF:      req.PatientCPF,
		PatientBirth:    req.PatientBirth,
		PatientPhone:    req.PatientPhone,
		AppointmentTime: req.AppointmentTime,
	}
	if req.AppointmentDate != nil {
		patch.AppointmentDate = &req.AppointmentDate.Time
	}

	appointment, err := h.svc.Update(c.Request().Context(), c.Param("id"), middleware.UserID(c), patch)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, appointment)
}

// Delete godoc
// @Summary Cancel an appointment
// @Tags appointments
// @Param id path string true "Appointment ID"
// @Success 204
// @Failure 404 {object} errors.ErrorResponse
// @Router /appointments/{id} [delete]
func (h *AppointmentHandler) Delete(c echo.Context) error {
	if err := h.svc.Delete(c.Request().Context(), c.Param("id"), middleware.UserID(c)); err != nil {
		return respondError(c, h.log, err)
	}
	return c.NoContent(http.StatusNoContent)
}
