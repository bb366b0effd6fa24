package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"campuslink/internal/errors"
	"campuslink/internal/service"
)

// HobbyHandler bundles hobby HTTP handlers.
type HobbyHandler struct {
	svc service.HobbyService
}

// NewHobbyHandler creates a handler layer.
func NewHobbyHandler(svc service.HobbyService) *HobbyHandler {
	return &HobbyHandler{svc: svc}
}

// HobbyRequest represents a hobby create payload.
type HobbyRequest struct {
	ProfileID uint   `json:"profile_id" validate:"required"`
	Name      string `json:"name" validate:"required"`
}

// HobbyUpdateRequest represents a hobby rename payload.
type HobbyUpdateRequest struct {
	Name string `json:"name" validate:"required"`
}

// ListHobbies godoc
// @Summary List hobbies for a profile
// @Tags hobbies
// @Produce json
// @Param profileId path int true "Profile ID"
// @Success 200 {array} model.Hobby
// @Router /hobbies/{profileId} [get]
func (h *HobbyHandler) ListHobbies(c echo.Context) error {
	profileID, err := strconv.Atoi(c.Param("profileId"))
	if err != nil {
		return respondError(c, errors.Invalid("invalid profile id"))
	}
	hobbies, err := h.svc.ListHobbies(c.Request().Context(), uint(profileID))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, hobbies)
}

// CreateHobby godoc
// @Summary Create hobby
// @Tags hobbies
// @Accept json
// @Produce json
// @Param hobby body HobbyRequest true "Hobby payload"
// @Success 201 {object} model.Hobby
// @Failure 400 {object} errors.ErrorResponse
// @Router /hobbies [post]
func (h *HobbyHandler) CreateHobby(c echo.Context) error {
	var req HobbyRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, errors.Invalid("invalid request body"))
	}
	hobby, err := h.svc.CreateHobby(c.Request().Context(), req.ProfileID, req.Name)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, hobby)
}

// UpdateHobby godoc
// @Summary Rename hobby
// @Tags hobbies
// @Accept json
// @Produce json
// @Param id path int true "Hobby ID"
// @Param hobby body HobbyUpdateRequest true "Hobby payload"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /hobbies/{id} [put]
func (h *HobbyHandler) UpdateHobby(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return respondError(c, errors.Invalid("invalid id"))
	}
	var req HobbyUpdateRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, errors.Invalid("invalid request body"))
	}
	if err := h.svc.RenameHobby(c.Request().Context(), uint(id), req.Name); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "hobby updated"})
}

// DeleteHobby godoc
// @Summary Delete hobby
// @Tags hobbies
// @Produce json
// @Param id path int true "Hobby ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Router /hobbies/{id} [delete]
func (h *HobbyHandler) DeleteHobby(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return respondError(c, errors.Invalid("invalid id"))
	}
	if err := h.svc.DeleteHobby(c.Request().Context(), uint(id)); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "hobby deleted"})
}
