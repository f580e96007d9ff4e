package auth

import (
	"time"

	apperrors "gatepass/internal/errors"
	"gatepass/internal/model"
)

// Session is the authenticated identity bound to one request.
type Session struct {
	ID        string     `json:"id"`
	UserID    uint       `json:"user_id"`
	Username  string     `json:"username"`
	Role      model.Role `json:"role"`
	ExpiresAt time.Time  `json:"expires_at"`
}

// NewSession builds a Session from validated token claims.
func NewSession(c *Claims) *Session {
	s := &Session{
		ID:       c.ID,
		UserID:   c.UserID,
		Username: c.Username,
		Role:     c.Role,
	}
	if c.ExpiresAt != nil {
		s.ExpiresAt = c.ExpiresAt.Time
	}
	return s
}

// RequireRole guards every role-specific operation.
func RequireRole(s *Session, role model.Role) error {
	if s == nil || s.UserID == 0 {
		return apperrors.ErrUnauthenticated
	}
	if s.Role != role {
		return apperrors.ErrForbidden
	}
	return nil
}

// DashboardPath returns the view a role lands on after login.
func DashboardPath(role model.Role) string {
	switch role {
	case model.RoleStudent:
		return "/student_dashboard"
	case model.RoleFaculty:
		return "/faculty_dashboard"
	case model.RoleSecurity:
		return "/security_dashboard"
	}
	return "/"
}
