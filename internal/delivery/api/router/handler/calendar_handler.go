package handler

import (
	"log/slog"
	"time"

	"muslimapp/config"
	"muslimapp/internal/delivery/api/response"
	"muslimapp/internal/domain/constants"
	"muslimapp/internal/domain/entity"
	domainerrors "muslimapp/internal/domain/errors"
	"muslimapp/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const maxUpcomingEventsLimit = 100

// CalendarHandlerParams holds dependencies for CalendarHandler, injected by Fx.
type CalendarHandlerParams struct {
	fx.In

	CalendarUC usecase.CalendarUsecase
	Config     *config.Config
	Logger     *slog.Logger
}

// CalendarHandler serves the Hijri converter and the Islamic event catalog.
type CalendarHandler struct {
	calendarUC      usecase.CalendarUsecase
	defaultTimezone string
	now             func() time.Time
	logger          *slog.Logger
}

// NewCalendarHandler is the constructor for CalendarHandler
func NewCalendarHandler(params CalendarHandlerParams) *CalendarHandler {
	return &CalendarHandler{
		calendarUC:      params.CalendarUC,
		defaultTimezone: params.Config.Registry.DefaultTimezone,
		now:             time.Now,
		logger:          params.Logger,
	}
}

// GetHijriDate handles GET /calendar/hijri?date=YYYY-MM-DD&tz=. Without a date the
// current civil date in tz is converted.
func (h *CalendarHandler) GetHijriDate(c echo.Context) error {
	loc, err := h.location(c.QueryParam("tz"))
	if err != nil {
		return err
	}

	day := h.now().In(loc)
	if raw := c.QueryParam("date"); raw != "" {
		day, err = time.ParseInLocation(entity.DateLayout, raw, loc)
		if err != nil {
			return domainerrors.NewValidationError("date must be formatted as YYYY-MM-DD")
		}
	}

	return response.OK(c, h.calendarUC.GetHijriDate(c.Request().Context(), day))
}

// ListEvents handles GET /events
func (h *CalendarHandler) ListEvents(c echo.Context) error {
	return response.OK(c, h.calendarUC.ListEvents(c.Request().Context()))
}

// UpcomingEvents handles GET /events/upcoming?limit=&tz=
func (h *CalendarHandler) UpcomingEvents(c echo.Context) error {
	limit := constants.DefaultUpcomingEventsLimit
	if err := echo.QueryParamsBinder(c).Int("limit", &limit).BindError(); err != nil {
		return domainerrors.NewValidationError("limit must be an integer")
	}
	if limit < 0 || limit > maxUpcomingEventsLimit {
		return domainerrors.NewValidationError("limit must be between 0 and %d", maxUpcomingEventsLimit)
	}

	loc, err := h.location(c.QueryParam("tz"))
	if err != nil {
		return err
	}

	return response.OK(c, h.calendarUC.UpcomingEvents(c.Request().Context(), h.now().In(loc), limit))
}

func (h *CalendarHandler) location(tz string) (*time.Location, error) {
	if tz == "" {
		tz = h.defaultTimezone
	}

	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, domainerrors.NewValidationError("unknown timezone %q", tz)
	}

	return loc, nil
}
