package auth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"

	apperrors "gatepass/internal/errors"
	"gatepass/internal/model"
)

func TestRequireRole(t *testing.T) {
	student := &Session{ID: "s", UserID: 1, Role: model.RoleStudent}

	tests := []struct {
		name    string
		session *Session
		role    model.Role
		want    error
	}{
		{"matching role", student, model.RoleStudent, nil},
		{"wrong role", student, model.RoleFaculty, apperrors.ErrForbidden},
		{"security cannot act as faculty", &Session{UserID: 2, Role: model.RoleSecurity}, model.RoleFaculty, apperrors.ErrForbidden},
		{"no session", nil, model.RoleStudent, apperrors.ErrUnauthenticated},
		{"empty session", &Session{}, model.RoleStudent, apperrors.ErrUnauthenticated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := RequireRole(tt.session, tt.role)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestNewSession(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	s := NewSession(&Claims{
		UserID:   4,
		Username: "carol",
		Role:     model.RoleSecurity,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        "jti",
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	})

	assert.Equal(t, "jti", s.ID)
	assert.Equal(t, uint(4), s.UserID)
	assert.Equal(t, "carol", s.Username)
	assert.Equal(t, model.RoleSecurity, s.Role)
	assert.True(t, exp.Equal(s.ExpiresAt))
}

func TestDashboardPath(t *testing.T) {
	assert.Equal(t, "/student_dashboard", DashboardPath(model.RoleStudent))
	assert.Equal(t, "/faculty_dashboard", DashboardPath(model.RoleFaculty))
	assert.Equal(t, "/security_dashboard", DashboardPath(model.RoleSecurity))
	assert.Equal(t, "/", DashboardPath(model.Role("")))
}

func TestSessionStore_NilCacheNeverRevoked(t *testing.T) {
	store := NewSessionStore(nil)
	ctx := context.Background()

	assert.NoError(t, store.RevokeSession(ctx, "jti", time.Minute))
	revoked, err := store.IsSessionRevoked(ctx, "jti")
	assert.NoError(t, err)
	assert.False(t, revoked)
}
