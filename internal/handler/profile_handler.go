package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"campuslink/internal/errors"
	"campuslink/internal/model"
	"campuslink/internal/service"
)

// ProfileHandler bundles bio profile HTTP handlers.
type ProfileHandler struct {
	svc service.ProfileService
}

// NewProfileHandler creates a handler layer.
func NewProfileHandler(svc service.ProfileService) *ProfileHandler {
	return &ProfileHandler{svc: svc}
}

// ProfileRequest represents a profile create/update payload.
type ProfileRequest struct {
	Name  string `json:"name" validate:"required"`
	Bio   string `json:"bio"`
	Quote string `json:"quote"`
}

// ListProfiles godoc
// @Summary List profiles
// @Tags profiles
// @Produce json
// @Success 200 {array} model.Profile
// @Router /users [get]
func (h *ProfileHandler) ListProfiles(c echo.Context) error {
	profiles, err := h.svc.ListProfiles(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, profiles)
}

// CreateProfile godoc
// @Summary Create profile
// @Tags profiles
// @Accept json
// @Produce json
// @Param profile body ProfileRequest true "Profile payload"
// @Success 201 {object} model.Profile
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /users [post]
func (h *ProfileHandler) CreateProfile(c echo.Context) error {
	var req ProfileRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, errors.Invalid("invalid request body"))
	}
	profile := &model.Profile{Name: req.Name, Bio: req.Bio, Quote: req.Quote}
	created, err := h.svc.CreateProfile(c.Request().Context(), profile)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, created)
}

// UpdateProfile godoc
// @Summary Update profile
// @Tags profiles
// @Accept json
// @Produce json
// @Param id path int true "Profile ID"
// @Param profile body ProfileRequest true "Profile payload"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/{id} [put]
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return respondError(c, errors.Invalid("invalid id"))
	}
	var req ProfileRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, errors.Invalid("invalid request body"))
	}
	if _, err := h.svc.UpdateProfile(c.Request().Context(), uint(id), req.Name, req.Bio, req.Quote); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "profile updated"})
}

// DeleteProfile godoc
// @Summary Delete profile with its study groups and hobbies
// @Tags profiles
// @Produce json
// @Param id path int true "Profile ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/{id} [delete]
func (h *ProfileHandler) DeleteProfile(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return respondError(c, errors.Invalid("invalid id"))
	}
	if err := h.svc.DeleteProfile(c.Request().Context(), uint(id)); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "profile deleted"})
}
