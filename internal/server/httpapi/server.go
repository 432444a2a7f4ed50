// Package httpapi exposes the auth core over a JSON HTTP API and enforces
// the authentication guard for operations that require a caller identity.
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/mkravets/biogate/internal/logging"
	"github.com/mkravets/biogate/internal/server/models"
)

// AuthCore is the service surface consumed by the handlers.
type AuthCore interface {
	Register(ctx context.Context, email, password, name string) (*models.AuthResult, error)
	Login(ctx context.Context, email, password string) (*models.AuthResult, error)
	BiometricLogin(ctx context.Context, key string) (*models.AuthResult, error)
	SetBiometric(ctx context.Context, userID string, keys models.BiometricKeys) (*models.AuthResult, error)
}

type Server struct {
	address   string
	core      AuthCore
	logger    logging.Logger
	jwtSecret []byte
}

func NewServer(address string, l logging.Logger, core AuthCore, secretKey string) *Server {
	return &Server{
		address:   address,
		logger:    l.With("module", "httpapi"),
		core:      core,
		jwtSecret: []byte(secretKey),
	}
}

// routes mounts all endpoints on e. Split out from Run so tests can drive
// handlers through httptest without binding a socket.
func (s *Server) routes(e *echo.Echo) {
	e.GET("/ping", s.ping)

	api := e.Group("/api")
	api.GET("/hello", s.sayHello)

	authGroup := api.Group("/auth")
	authGroup.POST("/register", s.register)
	authGroup.POST("/login", s.login)
	authGroup.POST("/biometric-login", s.biometricLogin)
	authGroup.POST("/biometric", s.setBiometric, s.jwtAuth())
}

func (s *Server) Run(ctx context.Context) error {

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	s.routes(e)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := e.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := e.Start(s.address); err != nil && err != http.ErrServerClosed {
		return err
	}

	return nil
}
