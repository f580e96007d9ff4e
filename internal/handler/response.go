package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "gatepass/internal/errors"
	"gatepass/internal/model"
)

// NoticeResponse is the body of every successful action.
type NoticeResponse struct {
	Notice   string `json:"notice"`
	Redirect string `json:"redirect,omitempty"`
}

// GatePassResponse reports an action on a single gate pass.
type GatePassResponse struct {
	Notice   string          `json:"notice"`
	Redirect string          `json:"redirect,omitempty"`
	GatePass *model.GatePass `json:"gate_pass"`
}

// DashboardResponse lists the gate passes visible to a role.
type DashboardResponse struct {
	Notice   string           `json:"notice,omitempty"`
	Role     model.Role       `json:"role"`
	Username string           `json:"username"`
	Requests []model.GatePass `json:"requests"`
}

func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error:  "invalid request body",
			Code:   "INVALID_REQUEST",
			Notice: "invalid request body",
		})
	}
	if err := c.Validate(req); err != nil {
		return apperrors.ToEchoError(fmt.Errorf("%w: %v", apperrors.ErrValidation, err))
	}
	return nil
}
