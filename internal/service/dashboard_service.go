package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"gatepass/internal/auth"
	"gatepass/internal/model"
	"gatepass/internal/repository"
)

const (
	resolvedViewCacheKey   = "gatepass:resolved"
	resolvedViewVersionKey = "gatepass:resolved:version"
	resolvedViewCacheTTL   = 30 * time.Second
)

// DashboardService builds the per-role dashboard lists.
type DashboardService interface {
	StudentView(ctx context.Context, session *auth.Session) ([]model.GatePass, error)
	FacultyView(ctx context.Context, session *auth.Session) ([]model.GatePass, error)
	SecurityView(ctx context.Context, session *auth.Session) ([]model.GatePass, error)
}

type dashboardService struct {
	repo  repository.GatePassRepository
	cache ViewCache
}

// NewDashboardService creates a new dashboard service.
func NewDashboardService(repo repository.GatePassRepository, cache ViewCache) DashboardService {
	return &dashboardService{repo: repo, cache: cache}
}

// StudentView lists the student's own requests.
func (s *dashboardService) StudentView(ctx context.Context, session *auth.Session) ([]model.GatePass, error) {
	if err := auth.RequireRole(session, model.RoleStudent); err != nil {
		return nil, err
	}
	gatePasses, err := s.repo.ListByStudent(ctx, session.UserID)
	if err != nil {
		return nil, fmt.Errorf("list student gate passes: %w", err)
	}
	return gatePasses, nil
}

// FacultyView lists requests awaiting a decision.
func (s *dashboardService) FacultyView(ctx context.Context, session *auth.Session) ([]model.GatePass, error) {
	if err := auth.RequireRole(session, model.RoleFaculty); err != nil {
		return nil, err
	}
	gatePasses, err := s.repo.ListPending(ctx)
	if err != nil {
		return nil, fmt.Errorf("list pending gate passes: %w", err)
	}
	return gatePasses, nil
}

// SecurityView lists resolved requests. The list is cached until the next decision.
func (s *dashboardService) SecurityView(ctx context.Context, session *auth.Session) ([]model.GatePass, error) {
	if err := auth.RequireRole(session, model.RoleSecurity); err != nil {
		return nil, err
	}

	// The key is read before the list so a decision made while we query retires it.
	key := resolvedViewKey(ctx, s.cache)
	if data, _ := s.cache.Get(ctx, key); data != nil {
		var cached []model.GatePass
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	gatePasses, err := s.repo.ListResolved(ctx)
	if err != nil {
		return nil, fmt.Errorf("list resolved gate passes: %w", err)
	}

	if payload, err := json.Marshal(gatePasses); err == nil {
		_ = s.cache.Set(ctx, key, payload, resolvedViewCacheTTL)
	}
	return gatePasses, nil
}

// resolvedViewKey names the cache entry for the current version of the security view.
func resolvedViewKey(ctx context.Context, c ViewCache) string {
	version := "0"
	if data, _ := c.Get(ctx, resolvedViewVersionKey); len(data) > 0 {
		version = string(data)
	}
	return resolvedViewCacheKey + ":v" + version
}

// invalidateResolvedView bumps the view version. Lists loaded before the bump are stored
// under the old key, which no reader asks for again.
func invalidateResolvedView(ctx context.Context, c ViewCache) {
	if _, err := c.Incr(ctx, resolvedViewVersionKey); err != nil {
		log.Printf("security view: bump version: %v", err)
		if err := c.Delete(ctx, resolvedViewKey(ctx, c)); err != nil {
			log.Printf("security view: drop cached list: %v", err)
		}
	}
}
