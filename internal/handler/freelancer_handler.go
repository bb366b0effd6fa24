package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"campuslink/internal/errors"
	"campuslink/internal/service"
)

// FreelancerHandler bundles marketplace HTTP handlers.
type FreelancerHandler struct {
	svc service.FreelancerService
}

// NewFreelancerHandler creates a handler layer.
func NewFreelancerHandler(svc service.FreelancerService) *FreelancerHandler {
	return &FreelancerHandler{svc: svc}
}

// FreelancerRequest represents a freelancer profile create payload.
type FreelancerRequest struct {
	AccountID uint   `json:"account_id" validate:"required"`
	Headline  string `json:"headline" validate:"required"`
	Skills    string `json:"skills"`
}

// ServiceRequest represents a service listing create payload.
type ServiceRequest struct {
	FreelancerID uint            `json:"freelancer_id" validate:"required"`
	Title        string          `json:"title" validate:"required"`
	Description  string          `json:"description"`
	HourlyRate   decimal.Decimal `json:"hourly_rate"`
}

// ListFreelancers godoc
// @Summary List freelancer profiles
// @Tags freelancers
// @Produce json
// @Success 200 {array} model.FreelancerProfile
// @Router /freelancers [get]
func (h *FreelancerHandler) ListFreelancers(c echo.Context) error {
	profiles, err := h.svc.ListFreelancers(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, profiles)
}

// CreateFreelancer godoc
// @Summary Create freelancer profile
// @Tags freelancers
// @Accept json
// @Produce json
// @Param freelancer body FreelancerRequest true "Freelancer payload"
// @Success 201 {object} model.FreelancerProfile
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /freelancers [post]
func (h *FreelancerHandler) CreateFreelancer(c echo.Context) error {
	var req FreelancerRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, errors.Invalid("invalid request body"))
	}
	profile, err := h.svc.CreateFreelancer(c.Request().Context(), req.AccountID, req.Headline, req.Skills)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, profile)
}

// GetFreelancer godoc
// @Summary Get freelancer profile with services
// @Tags freelancers
// @Produce json
// @Param id path int true "Freelancer ID"
// @Success 200 {object} model.FreelancerProfile
// @Failure 404 {object} errors.ErrorResponse
// @Router /freelancers/{id} [get]
func (h *FreelancerHandler) GetFreelancer(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return respondError(c, errors.Invalid("invalid id"))
	}
	profile, err := h.svc.GetFreelancer(c.Request().Context(), uint(id))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, profile)
}

// ListServices godoc
// @Summary List services of a freelancer
// @Tags freelancers
// @Produce json
// @Param id path int true "Freelancer ID"
// @Success 200 {array} model.Service
// @Router /freelancers/{id}/services [get]
func (h *FreelancerHandler) ListServices(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return respondError(c, errors.Invalid("invalid id"))
	}
	services, err := h.svc.ListServices(c.Request().Context(), uint(id))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, services)
}

// CreateService godoc
// @Summary Create service listing
// @Tags freelancers
// @Accept json
// @Produce json
// @Param service body ServiceRequest true "Service payload"
// @Success 201 {object} model.Service
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /services [post]
func (h *FreelancerHandler) CreateService(c echo.Context) error {
	var req ServiceRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, errors.Invalid("invalid request body"))
	}
	svc, err := h.svc.CreateService(c.Request().Context(), req.FreelancerID, req.Title, req.Description, req.HourlyRate)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, svc)
}

// DeleteService godoc
// @Summary Delete service listing
// @Tags freelancers
// @Produce json
// @Param id path int true "Service ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Router /services/{id} [delete]
func (h *FreelancerHandler) DeleteService(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return respondError(c, errors.Invalid("invalid id"))
	}
	if err := h.svc.DeleteService(c.Request().Context(), uint(id)); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "service deleted"})
}
