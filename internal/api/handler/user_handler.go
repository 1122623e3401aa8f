package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/auth-profile-api/internal/api/response"
	"github.com/99minutos/auth-profile-api/internal/core/ports"
)

type UserHandler struct {
	userService ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// ProfileUpdate changes the display name and role label of the caller.
//
// @Summary      Update profile
// @Tags         user
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Security     BearerAuth
// @Param        name       formData  string  true  "Display name"
// @Param        role_name  formData  string  true  "Role label"
// @Success      200  {object}  response.Envelope
// @Failure      400  {object}  response.Envelope
// @Failure      401  {object}  response.Envelope
// @Failure      500  {object}  response.Envelope
// @Router       /profile-update [post]
func (h *UserHandler) ProfileUpdate(c echo.Context) error {
	user, ok := ctxUser(c)
	if !ok {
		return response.Fail(c, http.StatusUnauthorized, msgLoginFirst, nil)
	}

	var req profileUpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.userService.UpdateProfile(c.Request().Context(), user.ID, req.Name, req.RoleName); err != nil {
		return err
	}

	return response.OK(c, "Profile has been updated successfully.", nil)
}

// Me returns the authenticated user.
//
// @Summary      Current user
// @Tags         user
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Envelope{data=userResponse}
// @Failure      401  {object}  response.Envelope
// @Failure      500  {object}  response.Envelope
// @Router       /me [post]
func (h *UserHandler) Me(c echo.Context) error {
	user, ok := ctxUser(c)
	if !ok {
		return response.Fail(c, http.StatusUnauthorized, msgLoginFirst, nil)
	}

	projection, err := toUserResponse(user)
	if err != nil {
		return err
	}

	return response.OK(c, "User details fetched!", projection)
}
