package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"gatepass/internal/auth"
	apperrors "gatepass/internal/errors"
)

// IdentityService issues, resolves and revokes sessions.
type IdentityService interface {
	Authenticate(ctx context.Context, username, password string) (*auth.Session, string, error)
	SessionFromClaims(ctx context.Context, claims *auth.Claims) (*auth.Session, error)
	ResolveToken(ctx context.Context, token string) (*auth.Session, error)
	Logout(ctx context.Context, token string) error
}

type identityService struct {
	credentials  CredentialService
	jwtService   *auth.JWTService
	sessionStore auth.SessionStoreInterface
}

// NewIdentityService creates a new identity service.
func NewIdentityService(credentials CredentialService, jwtService *auth.JWTService, sessionStore auth.SessionStoreInterface) IdentityService {
	return &identityService{
		credentials:  credentials,
		jwtService:   jwtService,
		sessionStore: sessionStore,
	}
}

// Authenticate verifies the credentials and signs a session token.
// Unknown users and wrong passwords both fail with ErrInvalidCredentials.
func (s *identityService) Authenticate(ctx context.Context, username, password string) (*auth.Session, string, error) {
	user, ok, err := s.credentials.Verify(ctx, username, password)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, "", apperrors.ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("verify credentials: %w", err)
	}
	if !ok {
		return nil, "", apperrors.ErrInvalidCredentials
	}

	token, claims, err := s.jwtService.GenerateSessionToken(user.ID, user.Username, user.Role)
	if err != nil {
		return nil, "", fmt.Errorf("generate session token: %w", err)
	}
	return auth.NewSession(claims), token, nil
}

// SessionFromClaims turns already validated claims into a session unless it was logged out.
func (s *identityService) SessionFromClaims(ctx context.Context, claims *auth.Claims) (*auth.Session, error) {
	if claims == nil || claims.Check() != nil {
		return nil, apperrors.ErrUnauthenticated
	}
	revoked, err := s.sessionStore.IsSessionRevoked(ctx, claims.ID)
	if err != nil {
		return nil, fmt.Errorf("check revocation: %w", err)
	}
	if revoked {
		return nil, apperrors.ErrUnauthenticated
	}
	return auth.NewSession(claims), nil
}

// ResolveToken validates a raw token and returns its session.
func (s *identityService) ResolveToken(ctx context.Context, token string) (*auth.Session, error) {
	if token == "" {
		return nil, apperrors.ErrUnauthenticated
	}
	claims, err := s.jwtService.ValidateToken(token)
	if err != nil {
		return nil, apperrors.ErrUnauthenticated
	}
	return s.SessionFromClaims(ctx, claims)
}

// Logout revokes the token for the rest of its lifetime.
// Empty, malformed, expired and already revoked tokens are ignored.
func (s *identityService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	claims, err := s.jwtService.ValidateToken(token)
	if err != nil {
		return nil
	}
	ttl := s.jwtService.TTL()
	if claims.ExpiresAt != nil {
		ttl = time.Until(claims.ExpiresAt.Time)
	}
	if err := s.sessionStore.RevokeSession(ctx, claims.ID, ttl); err != nil {
		log.Printf("logout: revoke session %s: %v", claims.ID, err)
		return fmt.Errorf("revoke session: %w", err)
	}
	return nil
}
