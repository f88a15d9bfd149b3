package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/PietroSRobusti/sus-para-todos/internal/service"
	"github.com/PietroSRobusti/sus-para-todos/internal/validation"
)

// NewsHandler handles the news feed endpoints.
type NewsHandler struct {
	svc service.NewsService
	log *zap.Logger
}

// NewNewsHandler creates a new news handler.
func NewNewsHandler(svc service.NewsService, log *zap.Logger) *NewsHandler {
	return &NewsHandler{svc: svc, log: log}
}

// NewsRequest is the payload for publishing a news item.
type NewsRequest struct {
	Title    string  `json:"title" validate:"required"`
	Summary  string  `json:"summary" validate:"required"`
	Content  string  `json:"content" validate:"required"`
	Category string  `json:"category" validate:"required"`
	ImageURL *string `json:"imageUrl"`
}

// List godoc
// @Summary List news, newest first
// @Tags news
// @Produce json
// @Success 200 {array} model.News
// @Router /news [get]
func (h *NewsHandler) List(c echo.Context) error {
	items, err := h.svc.List(c.Request().Context())
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, items)
}

// Get godoc
// @Summary Get news item by id
// @Tags news
// @Produce json
// @Param id path string true "News ID"
// @Success 200 {object} model.News
// @Failure 404 {object} errors.ErrorResponse
// @Router /news/{id} [get]
func (h *NewsHandler) Get(c echo.Context) error {
	item, err := h.svc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, item)
}

// Create godoc
// @Summary Publish news item (admin)
// @Tags news
// @Accept json
// @Produce json
// @Param request body NewsRequest true "News data"
// @Success 201 {object} model.News
// @Failure 400 {object} errors.ErrorResponse
// @Router /news [post]
func (h *NewsHandler) Create(c echo.Context) error {
	var req NewsRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Corpo da requisição inválido")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, validation.First(err))
	}

	item, err := h.svc.Create(c.Request().Context(), service.NewsInput{
		Title:    req.Title,
		Summary:  req.Summary,
		Content:  req.Content,
		Category: req.Category,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusCreated, item)
}

// GenerateImage godoc
// @Summary Generate news illustration via the image service (admin)
// @Tags news
// @Produce json
// @Param id path string true "News ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /news/{id}/generate-image [post]
func (h *NewsHandler) GenerateImage(c echo.Context) error {
	imageURL, err := h.svc.GenerateImage(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"imageUrl": imageURL})
}
