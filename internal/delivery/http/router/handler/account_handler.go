// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"skycast/internal/delivery/http/response"
	"skycast/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// registerRequest is the JSON payload accepted by the registration endpoint.
type registerRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// loginRequest is the JSON payload accepted by the login endpoint. The
// identifier may be either a username or an email address.
type loginRequest struct {
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

// accountResponse is the public view of an account; the password hash
// never leaves the service.
type accountResponse struct {
	ID        uint64    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// AccountHandler holds dependencies for account-related handlers.
type AccountHandler struct {
	uc     usecase.AccountUsecase
	logger *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler, injected by Fx.
func NewAccountHandler(uc usecase.AccountUsecase, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{
		uc:     uc,
		logger: logger,
	}
}

// Register handles the account registration request.
func (h *AccountHandler) Register(c echo.Context) error {
	var input registerRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Missing registration fields")
	}

	output, err := h.uc.Register(c.Request().Context(), &usecase.RegisterInput{
		Username: input.Username,
		Email:    input.Email,
		Password: input.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, accountResponse{
		ID:        output.Account.ID,
		Username:  output.Account.Username,
		Email:     output.Account.Email,
		CreatedAt: output.Account.CreatedAt,
	}, "Account registered successfully")
}

// Login handles the login request.
func (h *AccountHandler) Login(c echo.Context) error {
	var input loginRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Missing login fields")
	}

	output, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		Identifier: input.Identifier,
		Password:   input.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, loginResponse{Token: output.Token}, "Login successful")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
