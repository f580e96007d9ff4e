package middleware

import (
	"strings"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"gatepass/internal/auth"
	apperrors "gatepass/internal/errors"
	"gatepass/internal/model"
	"gatepass/internal/service"
)

const (
	// SessionCookieName is the cookie that carries the session token.
	SessionCookieName = "gatepass_session"

	tokenContextKey   = "user"
	sessionContextKey = "session"
)

// JWT validates the session token from the cookie or an Authorization bearer header.
func JWT(jwtService *auth.JWTService) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey:    jwtService.SigningKey(),
		SigningMethod: jwt.SigningMethodHS256.Alg(),
		ContextKey:    tokenContextKey,
		TokenLookup:   "cookie:" + SessionCookieName + ",header:" + echo.HeaderAuthorization + ":Bearer ",
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(auth.Claims)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return apperrors.ToEchoError(apperrors.ErrUnauthenticated)
		},
	})
}

// Session turns the validated token into an auth.Session, rejecting logged out sessions.
// It must run after JWT.
func Session(identity service.IdentityService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := c.Get(tokenContextKey).(*jwt.Token)
			if !ok {
				return apperrors.ToEchoError(apperrors.ErrUnauthenticated)
			}
			claims, ok := token.Claims.(*auth.Claims)
			if !ok {
				return apperrors.ToEchoError(apperrors.ErrUnauthenticated)
			}

			session, err := identity.SessionFromClaims(c.Request().Context(), claims)
			if err != nil {
				return apperrors.ToEchoError(err)
			}
			c.Set(sessionContextKey, session)
			return next(c)
		}
	}
}

// RequireRole rejects sessions of any other role.
func RequireRole(role model.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if err := auth.RequireRole(SessionFrom(c), role); err != nil {
				return apperrors.ToEchoError(err)
			}
			return next(c)
		}
	}
}

// SessionFrom returns the request's session, or nil when Session did not run.
func SessionFrom(c echo.Context) *auth.Session {
	session, _ := c.Get(sessionContextKey).(*auth.Session)
	return session
}

// TokenFrom extracts the raw session token without validating it.
func TokenFrom(c echo.Context) string {
	if cookie, err := c.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if token, ok := strings.CutPrefix(header, "Bearer "); ok {
		return strings.TrimSpace(token)
	}
	return ""
}
