package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/PietroSRobusti/sus-para-todos/internal/service"
	"github.com/PietroSRobusti/sus-para-todos/internal/validation"
)

// HospitalHandler handles the hospital directory endpoints.
type HospitalHandler struct {
	svc service.HospitalService
	log *zap.Logger
}

// NewHospitalHandler creates a new hospital handler.
func NewHospitalHandler(svc service.HospitalService, log *zap.Logger) *HospitalHandler {
	return &HospitalHandler{svc: svc, log: log}
}

// HospitalRequest is the payload for creating a hospital.
type HospitalRequest struct {
	Name    string  `json:"name" validate:"required"`
	Address string  `json:"address" validate:"required"`
	Phone   *string `json:"phone"`
}

// HospitalPatchRequest is the partial payload for updating a hospital.
// Absent fields keep their stored values.
type HospitalPatchRequest struct {
	Name    *string `json:"name"`
	Address *string `json:"address"`
	Phone   *string `json:"phone"`
}

// List godoc
// @Summary List hospitals
// @Tags hospitals
// @Produce json
// @Success 200 {array} model.Hospital
// @Router /hospitals [get]
func (h *HospitalHandler) List(c echo.Context) error {
	hospitals, err := h.svc.List(c.Request().Context())
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, hospitals)
}

// Get godoc
// @Summary Get hospital by id
// @Tags hospitals
// @Produce json
// @Param id path string true "Hospital ID"
// @Success 200 {object} model.Hospital
// @Failure 404 {object} errors.ErrorResponse
// @Router /hospitals/{id} [get]
func (h *HospitalHandler) Get(c echo.Context) error {
	hospital, err := h.svc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, hospital)
}

// Create godoc
// @Summary Create hospital (admin)
// @Tags hospitals
// @Accept json
// @Produce json
// @Param request body HospitalRequest true "Hospital data"
// @Success 201 {object} model.Hospital
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /hospitals [post]
func (h *HospitalHandler) Create(c echo.Context) error {
	var req HospitalRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Corpo da requisição inválido")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, validation.First(err))
	}

	hospital, err := h.svc.Create(c.Request().Context(), service.HospitalInput{
		Name:    req.Name,
		Address: req.Address,
		Phone:   req.Phone,
	})
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusCreated, hospital)
}

// Update godoc
// @Summary Update hospital fields (admin)
// @Tags hospitals
// @Accept json
// @Produce json
// @Param id path string true "Hospital ID"
// @Param request body HospitalPatchRequest true "Fields to change"
// @Success 200 {object} model.Hospital
// @Failure 404 {object} errors.ErrorResponse
// @Router /hospitals/{id} [put]
func (h *HospitalHandler) Update(c echo.Context) error {
	var req HospitalPatchRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Corpo da requisição inválido")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, validation.First(err))
	}

	hospital, err := h.svc.Update(c.Request().Context(), c.Param("id"), service.HospitalPatch{
		Name:    req.Name,
		Address: req.Address,
		Phone:   req.Phone,
	})
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, hospital)
}

// Delete godoc
// @Summary Delete hospital (admin)
// @Tags hospitals
// @Param id path string true "Hospital ID"
// @Success 204
// @Failure 404 {object} errors.ErrorResponse
// @Router /hospitals/{id} [delete]
func (h *HospitalHandler) Delete(c echo.Context) error {
	if err := h.svc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return respondError(c, h.log, err)
	}
	return c.NoContent(http.StatusNoContent)
}
