package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"gorm.io/gorm"

	"gatepass/internal/auth"
	apperrors "gatepass/internal/errors"
	"gatepass/internal/model"
	"gatepass/internal/repository"
)

// ViewCache is the subset of the cache client the services need.
type ViewCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Incr(ctx context.Context, key string) (int64, error)
}

// SubmitRequest carries the fields of a new gate pass request.
type SubmitRequest struct {
	RollNo       string
	DateOfBirth  string
	ParentName   string
	ParentNumber string
	Reason       string
}

// WorkflowService moves gate passes through Pending -> Accepted | Rejected.
type WorkflowService interface {
	Submit(ctx context.Context, session *auth.Session, req SubmitRequest) (*model.GatePass, error)
	Resolve(ctx context.Context, session *auth.Session, id uint, decision string) (*model.GatePass, error)
}

type workflowService struct {
	repo   repository.GatePassRepository
	cache  ViewCache
	strict bool
}

// NewWorkflowService creates a workflow service. In strict mode only Pending requests can be
// resolved; otherwise a later decision overwrites an earlier one.
func NewWorkflowService(repo repository.GatePassRepository, cache ViewCache, strict bool) WorkflowService {
	return &workflowService{
		repo:   repo,
		cache:  cache,
		strict: strict,
	}
}

// Submit files a new Pending request on behalf of the session's student.
func (s *workflowService) Submit(ctx context.Context, session *auth.Session, req SubmitRequest) (*model.GatePass, error) {
	if err := auth.RequireRole(session, model.RoleStudent); err != nil {
		return nil, err
	}

	fields := []struct {
		name  string
		value *string
		max   int
	}{
		{"roll_no", &req.RollNo, model.MaxRollNoLen},
		{"dob", &req.DateOfBirth, model.MaxDateOfBirthLen},
		{"parent_name", &req.ParentName, model.MaxParentNameLen},
		{"parent_number", &req.ParentNumber, model.MaxParentNumberLen},
		{"reason", &req.Reason, model.MaxReasonLen},
	}
	for _, f := range fields {
		*f.value = strings.TrimSpace(*f.value)
		if *f.value == "" {
			return nil, fmt.Errorf("%w: %s is required", apperrors.ErrValidation, f.name)
		}
		if utf8.RuneCountInString(*f.value) > f.max {
			return nil, fmt.Errorf("%w: %s must be at most %d characters", apperrors.ErrValidation, f.name, f.max)
		}
	}

	gatePass := &model.GatePass{
		StudentID:    session.UserID,
		RollNo:       req.RollNo,
		DateOfBirth:  req.DateOfBirth,
		ParentName:   req.ParentName,
		ParentNumber: req.ParentNumber,
		Reason:       req.Reason,
	}
	if err := s.repo.Create(ctx, gatePass); err != nil {
		return nil, fmt.Errorf("create gate pass: %w", err)
	}
	return gatePass, nil
}

// Resolve records a faculty decision on a request.
func (s *workflowService) Resolve(ctx context.Context, session *auth.Session, id uint, decision string) (*model.GatePass, error) {
	if err := auth.RequireRole(session, model.RoleFaculty); err != nil {
		return nil, err
	}

	status, err := model.ParseDecision(decision)
	if err != nil {
		return nil, fmt.Errorf("%w: %w: %v", apperrors.ErrValidation, apperrors.ErrInvalidDecision, err)
	}

	var gatePass *model.GatePass
	if s.strict {
		gatePass, err = s.resolvePending(ctx, id, status)
	} else {
		gatePass, err = s.overwrite(ctx, id, status)
	}
	if err != nil {
		return nil, err
	}

	invalidateResolvedView(ctx, s.cache)
	return gatePass, nil
}

func (s *workflowService) resolvePending(ctx context.Context, id uint, status model.GatePassStatus) (*model.GatePass, error) {
	updated, err := s.repo.ResolvePending(ctx, id, status)
	if err != nil {
		return nil, fmt.Errorf("resolve gate pass: %w", err)
	}

	gatePass, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrGatePassNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find gate pass: %w", err)
	}
	if !updated {
		return nil, apperrors.ErrAlreadyResolved
	}
	return gatePass, nil
}

func (s *workflowService) overwrite(ctx context.Context, id uint, status model.GatePassStatus) (*model.GatePass, error) {
	var gatePass *model.GatePass
	err := s.repo.WithTransaction(ctx, func(ctx context.Context, repo repository.GatePassRepository) error {
		locked, err := repo.FindByIDForUpdate(ctx, id)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrGatePassNotFound
		}
		if err != nil {
			return fmt.Errorf("find gate pass: %w", err)
		}
		if err := repo.SetStatus(ctx, id, status); err != nil {
			return fmt.Errorf("update gate pass status: %w", err)
		}
		locked.Status = status
		gatePass = locked
		return nil
	})
	if err != nil {
		return nil, err
	}
	return gatePass, nil
}
