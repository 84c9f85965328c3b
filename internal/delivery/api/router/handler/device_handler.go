package handler

import (
	"log/slog"
	"net/http"

	"muslimapp/internal/delivery/api/response"
	"muslimapp/internal/domain/entity"
	domainerrors "muslimapp/internal/domain/errors"
	"muslimapp/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DeviceHandlerParams holds dependencies for DeviceHandler, injected by Fx.
type DeviceHandlerParams struct {
	fx.In

	DeviceUC usecase.DeviceUsecase
	Logger   *slog.Logger
}

// DeviceHandler serves the device registry routes.
type DeviceHandler struct {
	deviceUC usecase.DeviceUsecase
	logger   *slog.Logger
}

// NewDeviceHandler is the constructor for DeviceHandler
func NewDeviceHandler(params DeviceHandlerParams) *DeviceHandler {
	return &DeviceHandler{
		deviceUC: params.DeviceUC,
		logger:   params.Logger,
	}
}

// RegisterDevice handles POST /device/register
func (h *DeviceHandler) RegisterDevice(c echo.Context) error {
	var req usecase.RegisterDeviceInput
	if err := c.Bind(&req); err != nil {
		return domainerrors.NewValidationError("invalid device payload")
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	device, err := h.deviceUC.RegisterDevice(c.Request().Context(), &req)
	if err != nil {
		return err
	}

	return response.Created(c, device)
}

// UpdatePreferences handles PUT /device/:token/preferences
func (h *DeviceHandler) UpdatePreferences(c echo.Context) error {
	var patch entity.PreferencesPatch
	if err := c.Bind(&patch); err != nil {
		return domainerrors.NewValidationError("invalid preferences payload")
	}

	device, err := h.deviceUC.UpdatePreferences(c.Request().Context(), c.Param("token"), &patch)
	if err != nil {
		return err
	}

	return response.OK(c, device)
}

// GetDevice handles GET /device/:token
func (h *DeviceHandler) GetDevice(c echo.Context) error {
	device, err := h.deviceUC.GetDeviceByToken(c.Request().Context(), c.Param("token"))
	if err != nil {
		return err
	}

	return response.OK(c, device)
}

// UnregisterDevice handles DELETE /device/:token. Unknown tokens still answer 200.
func (h *DeviceHandler) UnregisterDevice(c echo.Context) error {
	if err := h.deviceUC.UnregisterDevice(c.Request().Context(), c.Param("token")); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Device unregistered"})
}
