package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/PietroSRobusti/sus-para-todos/internal/service"
	"github.com/PietroSRobusti/sus-para-todos/internal/validation"
)

// SpecialtyHandler handles the specialty directory endpoints.
type SpecialtyHandler struct {
	svc service.SpecialtyService
	log *zap.Logger
}

// NewSpecialtyHandler creates a new specialty handler.
func NewSpecialtyHandler(svc service.SpecialtyService, log *zap.Logger) *SpecialtyHandler {
	return &SpecialtyHandler{svc: svc, log: log}
}

// SpecialtyRequest is the payload for creating a specialty.
type SpecialtyRequest struct {
	Name     string  `json:"name" validate:"required"`
	ImageURL *string `json:"imageUrl"`
}

// List godoc
// @Summary List specialties
// @Tags specialties
// @Produce json
// @Success 200 {array} model.Specialty
// @Router /specialties [get]
func (h *SpecialtyHandler) List(c echo.Context) error {
	specialties, err := h.svc.List(c.Request().Context())
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, specialties)
}

// Get godoc
// @Summary Get specialty by id
// @Tags specialties
// @Produce json
// @Param id path string true "Specialty ID"
// @Success 200 {object} model.Specialty
// @Failure 404 {object} errors.ErrorResponse
// @Router /specialties/{id} [get]
func (h *SpecialtyHandler) Get(c echo.Context) error {
	specialty, err := h.svc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, specialty)
}

// Create godoc
// @Summary Create specialty (admin)
// @Tags specialties
// @Accept json
// @Produce json
// @Param request body SpecialtyRequest true "Specialty data"
// @Success 201 {object} model.Specialty
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /specialties [post]
func (h *SpecialtyHandler) Create(c echo.Context) error {
	var req SpecialtyRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Corpo da requisição inválido")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, validation.First(err))
	}

	specialty, err := h.svc.Create(c.Request().Context(), req.Name, req.ImageURL)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusCreated, specialty)
}

// GenerateImage godoc
// @Summary Generate specialty icon via the image service (admin)
// @Tags specialties
// @Produce json
// @Param id path string true "Specialty ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /specialties/{id}/generate-image [post]
func (h *SpecialtyHandler) GenerateImage(c echo.Context) error {
	imageURL, err := h.svc.GenerateImage(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"imageUrl": imageURL})
}
