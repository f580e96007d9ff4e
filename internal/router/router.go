package router

import (
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"gatepass/docs"
	"gatepass/internal/auth"
	"gatepass/internal/config"
	"gatepass/internal/handler"
	sessionmw "gatepass/internal/middleware"
	"gatepass/internal/model"
	"gatepass/internal/service"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	jwtService *auth.JWTService,
	identity service.IdentityService,
	authHandler *handler.AuthHandler,
	gatePassHandler *handler.GatePassHandler,
	healthHandler *handler.HealthHandler,
) {
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(corsConfig(cfg.CORSOrigins)))

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = cfg.SwaggerHost
	}

	e.GET("/healthz", healthHandler.Health)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Public routes
	e.GET("/", authHandler.Home)
	e.POST("/register", authHandler.Register)
	e.POST("/login", authHandler.Login)
	e.GET("/logout", authHandler.Logout)

	// Role routes (require a live session of the given role)
	authenticated := []echo.MiddlewareFunc{sessionmw.JWT(jwtService), sessionmw.Session(identity)}
	withRole := func(role model.Role) []echo.MiddlewareFunc {
		return append(authenticated[:len(authenticated):len(authenticated)], sessionmw.RequireRole(role))
	}

	student := withRole(model.RoleStudent)
	e.GET("/student_dashboard", gatePassHandler.StudentDashboard, student...)
	e.POST("/request_gatepass", gatePassHandler.RequestGatePass, student...)

	faculty := withRole(model.RoleFaculty)
	e.GET("/faculty_dashboard", gatePassHandler.FacultyDashboard, faculty...)
	e.GET("/update_request/:id/:status", gatePassHandler.UpdateRequest, faculty...)

	e.GET("/security_dashboard", gatePassHandler.SecurityDashboard, withRole(model.RoleSecurity)...)
}

func corsConfig(origins []string) middleware.CORSConfig {
	cfg := middleware.DefaultCORSConfig
	cfg.AllowOrigins = origins
	// Browsers refuse credentials with a wildcard origin.
	cfg.AllowCredentials = !(len(origins) == 1 && origins[0] == "*")
	return cfg
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
