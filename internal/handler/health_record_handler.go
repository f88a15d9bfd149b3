package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/PietroSRobusti/sus-para-todos/internal/middleware"
	"github.com/PietroSRobusti/sus-para-todos/internal/service"
	"github.com/PietroSRobusti/sus-para-todos/internal/validation"
)

// HealthRecordHandler handles the personal health-log endpoints. Unlike the
// rest of the API these return the full validation message list, JSON-encoded
// under the error key, because the log form shows all problems at once.
type HealthRecordHandler struct {
	svc service.HealthRecordService
	log *zap.Logger
}

// NewHealthRecordHandler creates a new health-record handler.
func NewHealthRecordHandler(svc service.HealthRecordService, log *zap.Logger) *HealthRecordHandler {
	return &HealthRecordHandler{svc: svc, log: log}
}

// HealthRecordRequest is the payload for a new health-log entry.
type HealthRecordRequest struct {
	Title string          `json:"title" validate:"required"`
	Date  validation.Date `json:"date"`
	Notes *string         `json:"notes"`
}

// HealthRecordPatchRequest is the partial payload for editing an entry.
type HealthRecordPatchRequest struct {
	Title *string          `json:"title"`
	Date  *validation.Date `json:"date"`
	Notes *string          `json:"notes"`
}

func healthRecordValidationError(c echo.Context, msgs []string) error {
	return badRequest(c, validation.JoinJSON(msgs))
}

// List godoc
// @Summary List the caller's health records, newest first
// @Tags health-records
// @Produce json
// @Success 200 {array} model.HealthRecord
// @Failure 401 {object} errors.ErrorResponse
// @Router /health-records [get]
func (h *HealthRecordHandler) List(c echo.Context) error {
	records, err := h.svc.List(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, records)
}

// Get godoc
// @Summary Get one of the caller's health records
// @Tags health-records
// @Produce json
// @Param id path string true "Record ID"
// @Success 200 {object} model.HealthRecord
// @Failure 404 {object} errors.ErrorResponse
// @Router /health-records/{id} [get]
func (h *HealthRecordHandler) Get(c echo.Context) error {
	record, err := h.svc.Get(c.Request().Context(), c.Param("id"), middleware.UserID(c))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, record)
}

// Create godoc
// @Summary Add a health-log entry
// @Tags health-records
// @Accept json
// @Produce json
// @Param request body HealthRecordRequest true "Record data"
// @Success 201 {object} model.HealthRecord
// @Failure 400 {object} errors.ErrorResponse
// @Router /health-records [post]
func (h *HealthRecordHandler) Create(c echo.Context) error {
	var req HealthRecordRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Corpo da requisição inválido")
	}
	if err := c.Validate(&req); err != nil {
		return healthRecordValidationError(c, validation.Messages(err))
	}
	if req.Date.IsZero() {
		return healthRecordValidationError(c, []string{"O campo date é obrigatório"})
	}

	record, err := h.svc.Create(c.Request().Context(), service.HealthRecordInput{
		Title: req.Title,
		Date:  req.Date.Time,
		Notes: req.Notes,
	}, middleware.UserID(c))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusCreated, record)
}

// Update godoc
// @Summary Edit a health-log entry
// @Tags health-records
// @Accept json
// @Produce json
// @Param id path string true "Record ID"
// @Param request body HealthRecordPatchRequest true "Fields to change"
// @Success 200 {object} model.HealthRecord
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /health-records/{id} [put]
func (h *HealthRecordHandler) Update(c echo.Context) error {
	var req HealthRecordPatchRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Corpo da requisição inválido")
	}
	if err := c.Validate(&req); err != nil {
		return healthRecordValidationError(c, validation.Messages(err))
	}

	patch := service.HealthRecordPatch{
		Title: req.Title,
		Notes: req.Notes,
	}
	if req.Date != nil {
		patch.Date = &req.Date.Time
	}

	record, err := h.svc.Update(c.Request().Context(), c.Param("id"), middleware.UserID(c), patch)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, record)
}

// Delete godoc
// @Summary Remove a health-log entry
// @Tags health-records
// @Param id path string true "Record ID"
// @Success 204
// @Failure 404 {object} errors.ErrorResponse
// @Router /health-records/{id} [delete]
func (h *HealthRecordHandler) Delete(c echo.Context) error {
	if err := h.svc.Delete(c.Request().Context(), c.Param("id"), middleware.UserID(c)); err != nil {
		return respondError(c, h.log, err)
	}
	return c.NoContent(http.StatusNoContent)
}
