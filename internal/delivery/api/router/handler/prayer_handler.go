package handler

import (
	"log/slog"
	"time"

	"muslimapp/internal/delivery/api/response"
	domainerrors "muslimapp/internal/domain/errors"
	"muslimapp/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PrayerHandlerParams holds dependencies for PrayerHandler, injected by Fx.
type PrayerHandlerParams struct {
	fx.In

	PrayerUC usecase.PrayerUsecase
	Logger   *slog.Logger
}

// PrayerHandler serves prayer times and the qibla direction.
type PrayerHandler struct {
	prayerUC usecase.PrayerUsecase
	now      func() time.Time
	logger   *slog.Logger
}

// NewPrayerHandler is the constructor for PrayerHandler
func NewPrayerHandler(params PrayerHandlerParams) *PrayerHandler {
	return &PrayerHandler{
		prayerUC: params.PrayerUC,
		now:      time.Now,
		logger:   params.Logger,
	}
}

// GetPrayerToday handles GET /prayer/today?lat=&lon=&tz=
func (h *PrayerHandler) GetPrayerToday(c echo.Context) error {
	lat, lon, err := bindCoordinates(c)
	if err != nil {
		return err
	}

	out, err := h.prayerUC.GetPrayerToday(c.Request().Context(), &usecase.PrayerTodayInput{
		Latitude:  lat,
		Longitude: lon,
		Timezone:  c.QueryParam("tz"),
		Now:       h.now(),
	})
	if err != nil {
		return err
	}

	return response.OK(c, out)
}

// GetQibla handles GET /qibla?lat=&lon=
func (h *PrayerHandler) GetQibla(c echo.Context) error {
	lat, lon, err := bindCoordinates(c)
	if err != nil {
		return err
	}

	out, err := h.prayerUC.GetQibla(c.Request().Context(), lat, lon)
	if err != nil {
		return err
	}

	return response.OK(c, out)
}

func bindCoordinates(c echo.Context) (lat, lon float64, err error) {
	err = echo.QueryParamsBinder(c).
		MustFloat64("lat", &lat).
		MustFloat64("lon", &lon).
		BindError()
	if err != nil {
		return 0, 0, domainerrors.NewValidationError("lat and lon query parameters must be numbers")
	}

	return lat, lon, nil
}
