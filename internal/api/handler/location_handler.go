package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/auth-profile-api/internal/api/response"
	"github.com/99minutos/auth-profile-api/internal/core/ports"
)

type LocationHandler struct {
	locationService ports.LocationService
}

func NewLocationHandler(locationService ports.LocationService) *LocationHandler {
	return &LocationHandler{locationService: locationService}
}

// Locate geolocates the given ip, or the caller's address when none is sent.
//
// @Summary      Geolocate an IP address
// @Tags         location
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        ip  formData  string  false  "Public IPv4 or IPv6 address"
// @Success      200  {object}  response.Envelope{data=domain.Location}
// @Failure      400  {object}  response.Envelope
// @Failure      500  {object}  response.Envelope
// @Router       /location [post]
func (h *LocationHandler) Locate(c echo.Context) error {
	var req locationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ip := req.IP
	if ip == "" {
		ip = c.RealIP()
	}

	loc, err := h.locationService.Locate(c.Request().Context(), ip)
	if err != nil {
		return err
	}

	return response.OK(c, "Location fetched!", loc)
}
