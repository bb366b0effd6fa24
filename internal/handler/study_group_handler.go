package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"campuslink/internal/errors"
	"campuslink/internal/service"
)

// StudyGroupHandler bundles study group HTTP handlers.
type StudyGroupHandler struct {
	svc service.StudyGroupService
}

// NewStudyGroupHandler creates a handler layer.
func NewStudyGroupHandler(svc service.StudyGroupService) *StudyGroupHandler {
	return &StudyGroupHandler{svc: svc}
}

// StudyGroupRequest represents a study group create payload.
type StudyGroupRequest struct {
	ProfileID uint   `json:"profile_id" validate:"required"`
	Name      string `json:"name" validate:"required"`
}

// ListGroups godoc
// @Summary List study groups for a profile
// @Tags study-groups
// @Produce json
// @Param profileId path int true "Profile ID"
// @Success 200 {array} model.StudyGroup
// @Router /study-groups/{profileId} [get]
func (h *StudyGroupHandler) ListGroups(c echo.Context) error {
	profileID, err := strconv.Atoi(c.Param("profileId"))
	if err != nil {
		return respondError(c, errors.Invalid("invalid profile id"))
	}
	groups, err := h.svc.ListGroups(c.Request().Context(), uint(profileID))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, groups)
}

// CreateGroup godoc
// @Summary Create study group
// @Tags study-groups
// @Accept json
// @Produce json
// @Param group body StudyGroupRequest true "Study group payload"
// @Success 201 {object} model.StudyGroup
// @Failure 400 {object} errors.ErrorResponse
// @Router /study-groups [post]
func (h *StudyGroupHandler) CreateGroup(c echo.Context) error {
	var req StudyGroupRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, errors.Invalid("invalid request body"))
	}
	group, err := h.svc.CreateGroup(c.Request().Context(), req.ProfileID, req.Name)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, group)
}

// DeleteGroup godoc
// @Summary Delete study group
// @Tags study-groups
// @Produce json
// @Param id path int true "Study group ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Router /study-groups/{id} [delete]
func (h *StudyGroupHandler) DeleteGroup(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return respondError(c, errors.Invalid("invalid id"))
	}
	if err := h.svc.DeleteGroup(c.Request().Context(), uint(id)); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "study group deleted"})
}
