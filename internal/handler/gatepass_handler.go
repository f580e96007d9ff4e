package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"gatepass/internal/auth"
	apperrors "gatepass/internal/errors"
	"gatepass/internal/middleware"
	"gatepass/internal/model"
	"gatepass/internal/service"
)

const facultyDashboardPath = "/faculty_dashboard"

// GatePassHandler serves the role dashboards and the request workflow.
type GatePassHandler struct {
	workflow   service.WorkflowService
	dashboards service.DashboardService
}

// NewGatePassHandler creates a new gate pass handler.
func NewGatePassHandler(workflow service.WorkflowService, dashboards service.DashboardService) *GatePassHandler {
	return &GatePassHandler{workflow: workflow, dashboards: dashboards}
}

// GatePassRequest represents a student's gate pass request.
type GatePassRequest struct {
	RollNo       string `json:"roll_no" form:"roll_no" validate:"required,max=20"`
	DateOfBirth  string `json:"dob" form:"dob" validate:"required,max=20"`
	ParentName   string `json:"parent_name" form:"parent_name" validate:"required,max=100"`
	ParentNumber string `json:"parent_number" form:"parent_number" validate:"required,max=15"`
	Reason       string `json:"reason" form:"reason" validate:"required,max=255"`
}

// StudentDashboard godoc
// @Summary Student dashboard
// @Description The signed-in student's requests, newest first.
// @Tags dashboards
// @Produce json
// @Security BearerAuth
// @Success 200 {object} DashboardResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /student_dashboard [get]
func (h *GatePassHandler) StudentDashboard(c echo.Context) error {
	return h.dashboard(c, h.dashboards.StudentView)
}

// FacultyDashboard godoc
// @Summary Faculty dashboard
// @Description Requests awaiting a decision.
// @Tags dashboards
// @Produce json
// @Security BearerAuth
// @Success 200 {object} DashboardResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /faculty_dashboard [get]
func (h *GatePassHandler) FacultyDashboard(c echo.Context) error {
	return h.dashboard(c, h.dashboards.FacultyView)
}

// SecurityDashboard godoc
// @Summary Security dashboard
// @Description Accepted and rejected requests, newest first.
// @Tags dashboards
// @Produce json
// @Security BearerAuth
// @Success 200 {object} DashboardResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /security_dashboard [get]
func (h *GatePassHandler) SecurityDashboard(c echo.Context) error {
	return h.dashboard(c, h.dashboards.SecurityView)
}

// RequestGatePass godoc
// @Summary Request a gate pass
// @Tags gatepass
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Security BearerAuth
// @Param request body GatePassRequest true "Gate pass details"
// @Success 201 {object} GatePassResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /request_gatepass [post]
func (h *GatePassHandler) RequestGatePass(c echo.Context) error {
	var req GatePassRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	gatePass, err := h.workflow.Submit(c.Request().Context(), middleware.SessionFrom(c), service.SubmitRequest{
		RollNo:       req.RollNo,
		DateOfBirth:  req.DateOfBirth,
		ParentName:   req.ParentName,
		ParentNumber: req.ParentNumber,
		Reason:       req.Reason,
	})
	if err != nil {
		return apperrors.ToEchoError(err)
	}

	return c.JSON(http.StatusCreated, GatePassResponse{
		Notice:   "Wait for some time, request has been sent to faculty!",
		Redirect: "/student_dashboard",
		GatePass: gatePass,
	})
}

// UpdateRequest godoc
// @Summary Accept or reject a gate pass
// @Tags gatepass
// @Produce json
// @Security BearerAuth
// @Param id path int true "Gate pass ID"
// @Param status path string true "Decision" Enums(Accepted, Rejected)
// @Success 200 {object} GatePassResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /update_request/{id}/{status} [get]
func (h *GatePassHandler) UpdateRequest(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return resolveError(fmt.Errorf("%w: invalid gate pass id %q", apperrors.ErrValidation, c.Param("id")))
	}

	gatePass, err := h.workflow.Resolve(c.Request().Context(), middleware.SessionFrom(c), uint(id), c.Param("status"))
	if err != nil {
		return resolveError(err)
	}

	return c.JSON(http.StatusOK, GatePassResponse{
		Notice:   fmt.Sprintf("Gatepass request %s!", gatePass.Status),
		Redirect: facultyDashboardPath,
		GatePass: gatePass,
	})
}

func (h *GatePassHandler) dashboard(c echo.Context, view func(context.Context, *auth.Session) ([]model.GatePass, error)) error {
	session := middleware.SessionFrom(c)
	requests, err := view(c.Request().Context(), session)
	if err != nil {
		return apperrors.ToEchoError(err)
	}
	if requests == nil {
		requests = []model.GatePass{}
	}
	return c.JSON(http.StatusOK, DashboardResponse{
		Role:     session.Role,
		Username: session.Username,
		Requests: requests,
	})
}

// resolveError sends the faculty member back to their dashboard unless the failure is about the session itself.
func resolveError(err error) error {
	httpErr := apperrors.MapErrorToHTTP(err)
	if !errors.Is(err, apperrors.ErrUnauthenticated) && !errors.Is(err, apperrors.ErrForbidden) {
		httpErr.WithRedirect(facultyDashboardPath)
	}
	return httpErr.ToEcho(err)
}
