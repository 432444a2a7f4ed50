package httpapi

import (
	"errors"
	"net/http"
	"regexp"

	"github.com/labstack/echo/v4"

	"github.com/mkravets/biogate/internal/common"
	"github.com/mkravets/biogate/internal/server/models"
)

const minPasswordLen = 6

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type biometricLoginRequest struct {
	BiometricKey string `json:"biometric_key"`
}

func badRequest(c echo.Context, msg string) error {
	return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
}

func (s *Server) sayHello(c echo.Context) error {
	return c.String(http.StatusOK, "Hello World!")
}

func (s *Server) ping(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"status": "OK"})
}

func (s *Server) register(c echo.Context) error {
	req := new(registerRequest)
	if err := c.Bind(req); err != nil {
		return badRequest(c, "invalid request")
	}
	if req.Name == "" {
		return badRequest(c, "name is required")
	}
	if !emailRegex.MatchString(req.Email) {
		return badRequest(c, "invalid email format")
	}
	if len(req.Password) < minPasswordLen {
		return badRequest(c, "password must be at least 6 characters")
	}

	ctx := c.Request().Context()
	res, err := s.core.Register(ctx, req.Email, req.Password, req.Name)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return badRequest(c, "user already exists")
		}
		s.logger.Error(ctx, "register failed", "error", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
	}

	s.logger.Info(ctx, "registered", "email", res.User.Email)
	return c.JSON(http.StatusCreated, res)
}

func (s *Server) login(c echo.Context) error {
	req := new(loginRequest)
	if err := c.Bind(req); err != nil {
		return badRequest(c, "invalid request")
	}
	if !emailRegex.MatchString(req.Email) {
		return badRequest(c, "invalid email format")
	}
	if req.Password == "" {
		return badRequest(c, "password is required")
	}

	ctx := c.Request().Context()
	res, err := s.core.Login(ctx, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "invalid login credentials"})
		case errors.Is(err, common.ErrorUnauthorized):
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
		default:
			s.logger.Error(ctx, "login failed", "error", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
		}
	}

	return c.JSON(http.StatusOK, res)
}

func (s *Server) biometricLogin(c echo.Context) error {
	req := new(biometricLoginRequest)
	if err := c.Bind(req); err != nil {
		return badRequest(c, "invalid request")
	}
	if req.BiometricKey == "" {
		return badRequest(c, "biometric_key is required")
	}

	ctx := c.Request().Context()
	res, err := s.core.BiometricLogin(ctx, req.BiometricKey)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "biometric validation failed"})
		}
		s.logger.Error(ctx, "biometric login failed", "error", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
	}

	return c.JSON(http.StatusOK, res)
}

func (s *Server) setBiometric(c echo.Context) error {
	claims := getClaims(c)
	if claims == nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthenticated"})
	}

	keys := new(models.BiometricKeys)
	if err := c.Bind(keys); err != nil {
		return badRequest(c, "invalid request")
	}
	for _, k := range keys.Slots() {
		if k == "" {
			return badRequest(c, "all ten finger keys are required")
		}
	}

	ctx := c.Request().Context()
	res, err := s.core.SetBiometric(ctx, claims.Subject, *keys)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorConflict):
			return c.JSON(http.StatusConflict, echo.Map{"error": "one or more biometric keys are already in use"})
		default:
			s.logger.Error(ctx, "biometric enrollment failed", "error", err, "user_id", claims.Subject)
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create biometric record"})
		}
	}

	s.logger.Info(ctx, "biometric enrolled", "user_id", claims.Subject)
	return c.JSON(http.StatusCreated, res)
}
