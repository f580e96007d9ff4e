package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gatepass/internal/auth"
	apperrors "gatepass/internal/errors"
	"gatepass/internal/model"
)

func TestDashboardService_RoleGuards(t *testing.T) {
	svc := NewDashboardService(new(MockGatePassRepository), newMemoryCache())
	ctx := context.Background()

	views := map[model.Role]func(context.Context, *auth.Session) ([]model.GatePass, error){
		model.RoleStudent:  svc.StudentView,
		model.RoleFaculty:  svc.FacultyView,
		model.RoleSecurity: svc.SecurityView,
	}
	sessions := []*auth.Session{studentSession, facultySession, securitySession}

	for role, view := range views {
		for _, session := range sessions {
			if session.Role == role {
				continue
			}
			_, err := view(ctx, session)
			assert.ErrorIs(t, err, apperrors.ErrForbidden, "%s viewing %s dashboard", session.Role, role)
		}
		_, err := view(ctx, nil)
		assert.ErrorIs(t, err, apperrors.ErrUnauthenticated)
	}
}

func TestDashboardService_StudentView(t *testing.T) {
	repo := new(MockGatePassRepository)
	repo.On("ListByStudent", mock.Anything, studentSession.UserID).Return([]model.GatePass{
		{ID: 2, StudentID: 1, Status: model.GatePassStatusPending},
		{ID: 1, StudentID: 1, Status: model.GatePassStatusAccepted},
	}, nil)

	got, err := NewDashboardService(repo, newMemoryCache()).StudentView(context.Background(), studentSession)
	require.NoError(t, err)
	assert.Len(t, got, 2)
	repo.AssertExpectations(t)
}

func TestDashboardService_FacultyView(t *testing.T) {
	repo := new(MockGatePassRepository)
	repo.On("ListPending", mock.Anything).Return([]model.GatePass{{ID: 3, Status: model.GatePassStatusPending}}, nil)

	got, err := NewDashboardService(repo, newMemoryCache()).FacultyView(context.Background(), facultySession)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, uint(3), got[0].ID)
}

func TestDashboardService_SecurityViewIsCachedUntilResolve(t *testing.T) {
	repo := new(MockGatePassRepository)
	cache := newMemoryCache()
	dashboards := NewDashboardService(repo, cache)
	workflow := NewWorkflowService(repo, cache, true)
	ctx := context.Background()

	repo.On("ListResolved", mock.Anything).Return([]model.GatePass{
		{ID: 1, Reason: "trip", Status: model.GatePassStatusAccepted},
	}, nil).Once()

	first, err := dashboards.SecurityView(ctx, securitySession)
	require.NoError(t, err)
	second, err := dashboards.SecurityView(ctx, securitySession)
	require.NoError(t, err)
	require.Len(t, second, len(first))
	assert.Equal(t, first[0].ID, second[0].ID)
	assert.Equal(t, first[0].Status, second[0].Status)
	repo.AssertNumberOfCalls(t, "ListResolved", 1)

	repo.On("ResolvePending", mock.Anything, uint(2), model.GatePassStatusRejected).Return(true, nil)
	repo.On("FindByID", mock.Anything, uint(2)).Return(&model.GatePass{ID: 2, Status: model.GatePassStatusRejected}, nil)
	_, err = workflow.Resolve(ctx, facultySession, 2, "Rejected")
	require.NoError(t, err)

	repo.On("ListResolved", mock.Anything).Return([]model.GatePass{
		{ID: 2, Reason: "visit", Status: model.GatePassStatusRejected},
		{ID: 1, Reason: "trip", Status: model.GatePassStatusAccepted},
	}, nil).Once()

	third, err := dashboards.SecurityView(ctx, securitySession)
	require.NoError(t, err)
	assert.Len(t, third, 2)
	repo.AssertNumberOfCalls(t, "ListResolved", 2)
}

func TestDashboardService_SecurityViewDropsListLoadedDuringResolve(t *testing.T) {
	cache := newMemoryCache()
	readRepo := new(MockGatePassRepository)
	writeRepo := new(MockGatePassRepository)
	dashboards := NewDashboardService(readRepo, cache)
	workflow := NewWorkflowService(writeRepo, cache, false)
	ctx := context.Background()

	writeRepo.On("WithTransaction", mock.Anything, mock.Anything).Return(nil)
	writeRepo.On("FindByIDForUpdate", mock.Anything, uint(1)).Return(&model.GatePass{ID: 1, Status: model.GatePassStatusAccepted}, nil)
	writeRepo.On("SetStatus", mock.Anything, uint(1), model.GatePassStatusRejected).Return(nil)

	// The decision commits after the reader queried but before it fills the cache.
	readRepo.On("ListResolved", mock.Anything).Run(func(mock.Arguments) {
		_, err := workflow.Resolve(ctx, facultySession, 1, "Rejected")
		require.NoError(t, err)
	}).Return([]model.GatePass{{ID: 1, Status: model.GatePassStatusAccepted}}, nil).Once()

	stale, err := dashboards.SecurityView(ctx, securitySession)
	require.NoError(t, err)
	assert.Equal(t, model.GatePassStatusAccepted, stale[0].Status)

	readRepo.On("ListResolved", mock.Anything).Return([]model.GatePass{
		{ID: 1, Status: model.GatePassStatusRejected},
	}, nil).Once()

	fresh, err := dashboards.SecurityView(ctx, securitySession)
	require.NoError(t, err)
	assert.Equal(t, model.GatePassStatusRejected, fresh[0].Status)
	readRepo.AssertNumberOfCalls(t, "ListResolved", 2)
}

// counterlessCache refuses INCR, as a Redis replica would.
type counterlessCache struct {
	*memoryCache
}

func (c counterlessCache) Incr(context.Context, string) (int64, error) {
	return 0, errors.New("READONLY You can't write against a read only replica")
}

func TestDashboardService_SecurityViewDroppedWhenVersionBumpFails(t *testing.T) {
	cache := counterlessCache{newMemoryCache()}
	repo := new(MockGatePassRepository)
	dashboards := NewDashboardService(repo, cache)
	workflow := NewWorkflowService(repo, cache, true)
	ctx := context.Background()

	repo.On("ListResolved", mock.Anything).Return([]model.GatePass{{ID: 1, Status: model.GatePassStatusAccepted}}, nil).Once()
	_, err := dashboards.SecurityView(ctx, securitySession)
	require.NoError(t, err)

	repo.On("ResolvePending", mock.Anything, uint(2), model.GatePassStatusAccepted).Return(true, nil)
	repo.On("FindByID", mock.Anything, uint(2)).Return(&model.GatePass{ID: 2, Status: model.GatePassStatusAccepted}, nil)
	_, err = workflow.Resolve(ctx, facultySession, 2, "Accepted")
	require.NoError(t, err)
	assert.Equal(t, 1, cache.deletes)

	repo.On("ListResolved", mock.Anything).Return([]model.GatePass{
		{ID: 2, Status: model.GatePassStatusAccepted},
		{ID: 1, Status: model.GatePassStatusAccepted},
	}, nil).Once()
	got, err := dashboards.SecurityView(ctx, securitySession)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}
