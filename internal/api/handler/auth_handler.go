package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/auth-profile-api/internal/api/response"
	"github.com/99minutos/auth-profile-api/internal/core/domain"
	"github.com/99minutos/auth-profile-api/internal/core/ports"
)

const msgEmailTaken = "The email has already been taken."

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register creates a new user account.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        name                   formData  string  true  "Display name"
// @Param        email                  formData  string  true  "Email address"
// @Param        password               formData  string  true  "Password, at least 8 characters"
// @Param        password_confirmation  formData  string  true  "Password confirmation"
// @Param        role_name              formData  string  true  "Role label"
// @Success      200  {object}  response.Envelope
// @Failure      400  {object}  response.Envelope
// @Failure      500  {object}  response.Envelope
// @Router       /register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	req.Email = domain.NormalizeEmail(req.Email)

	ve, err := validationErrors(c.Validate(&req))
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	if req.Email != "" {
		taken, err := h.authService.EmailTaken(ctx, req.Email)
		if err != nil {
			return err
		}
		if taken {
			ve.Add("email", msgEmailTaken)
		}
	}
	if !ve.Empty() {
		return ve
	}

	_, err = h.authService.Register(ctx, ports.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		RoleName: req.RoleName,
	})
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			// Lost a race with a concurrent registration of the same email.
			ve.Add("email", msgEmailTaken)
			return ve
		}
		return err
	}

	return response.OK(c, "User registered successfully.", nil)
}

// Login authenticates a user and returns a session token.
//
// @Summary      Login
// @Tags         auth
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        email     formData  string  true  "Email address"
// @Param        password  formData  string  true  "Password"
// @Success      200  {object}  response.Envelope{data=loginResponse}
// @Failure      400  {object}  response.Envelope
// @Failure      500  {object}  response.Envelope
// @Router       /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	projection, err := toUserResponse(user)
	if err != nil {
		return err
	}

	return response.OK(c, "User logged in successfully", loginResponse{userResponse: projection, Token: token})
}

// Logout invalidates the presented token.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Envelope
// @Failure      401  {object}  response.Envelope
// @Failure      500  {object}  response.Envelope
// @Router       /logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	session, ok := ctxSession(c)
	if !ok {
		return response.Fail(c, http.StatusUnauthorized, msgLoginFirst, nil)
	}

	if err := h.authService.Logout(c.Request().Context(), session); err != nil {
		return err
	}

	return response.OK(c, "User logged out successfully!", nil)
}
