package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"muslimapp/config"
	apimiddleware "muslimapp/internal/delivery/api/middleware"
	"muslimapp/internal/delivery/api/response"
	"muslimapp/internal/delivery/api/router"
	"muslimapp/internal/delivery/api/router/handler"
	deliverycontext "muslimapp/internal/delivery/context"
	"muslimapp/internal/domain/entity"
	domainerrors "muslimapp/internal/domain/errors"
	mockUC "muslimapp/internal/mocks/usecase"
	"muslimapp/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testAPIKey = "secret-key"

type apiFixtures struct {
	deviceUC   *mockUC.MockDeviceUsecase
	prayerUC   *mockUC.MockPrayerUsecase
	calendarUC *mockUC.MockCalendarUsecase
	echo       *echo.Echo
}

type envelope struct {
	Data  json.RawMessage     `json:"data"`
	Error *response.ErrorInfo `json:"error"`
	Meta  response.MetaInfo   `json:"meta"`
}

func createTestAPI(t *testing.T, apiKeys ...string) *apiFixtures {
	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "100KB"
	cfg.HTTP.APIKeys = apiKeys
	cfg.Registry.DefaultTimezone = "Asia/Jakarta"

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	f := &apiFixtures{
		deviceUC:   mockUC.NewMockDeviceUsecase(t),
		prayerUC:   mockUC.NewMockPrayerUsecase(t),
		calendarUC: mockUC.NewMockCalendarUsecase(t),
		echo:       echo.New(),
	}

	configureEcho(f.echo, cfg, logger)
	router.NewRouter(router.RouterParams{
		DeviceHandler: handler.NewDeviceHandler(handler.DeviceHandlerParams{DeviceUC: f.deviceUC, Logger: logger}),
		PrayerHandler: handler.NewPrayerHandler(handler.PrayerHandlerParams{PrayerUC: f.prayerUC, Logger: logger}),
		CalendarHandler: handler.NewCalendarHandler(handler.CalendarHandlerParams{
			CalendarUC: f.calendarUC,
			Config:     cfg,
			Logger:     logger,
		}),
		APIKeyMiddleware: apimiddleware.NewAPIKeyMiddleware(cfg),
	}).RegisterRoutes(f.echo)

	return f
}

func (f *apiFixtures) do(t *testing.T, method, target, body string, headers map[string]string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)

	var env envelope
	if strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}

	return rec, env
}

func testDevice(token string) *entity.Device {
	return &entity.Device{
		ID:          uuid.New(),
		Token:       token,
		Platform:    entity.PlatformAndroid,
		Timezone:    "Asia/Jakarta",
		Preferences: entity.DefaultPreferences(),
	}
}

func TestAPI_HealthIsOpen(t *testing.T) {
	f := createTestAPI(t, testAPIKey)

	rec, _ := f.do(t, http.MethodGet, "/health", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestAPI_APIKey(t *testing.T) {
	tests := []struct {
		name       string
		headers    map[string]string
		wantStatus int
	}{
		{name: "missing key", wantStatus: http.StatusUnauthorized},
		{name: "wrong key", headers: map[string]string{"x-api-key": "nope"}, wantStatus: http.StatusUnauthorized},
		{name: "valid key", headers: map[string]string{"x-api-key": testAPIKey}, wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := createTestAPI(t, "other-key", testAPIKey)
			if tt.wantStatus == http.StatusOK {
				f.calendarUC.EXPECT().ListEvents(mock.Anything).Return([]entity.IslamicEvent{})
			}

			rec, env := f.do(t, http.MethodGet, "/events", "", tt.headers)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusUnauthorized {
				require.NotNil(t, env.Error)
				assert.Equal(t, "UNAUTHORIZED", env.Error.Code)
				assert.Nil(t, env.Error.Details)
			}
		})
	}
}

func TestAPI_NoKeysConfiguredLeavesRoutesOpen(t *testing.T) {
	f := createTestAPI(t)
	f.calendarUC.EXPECT().ListEvents(mock.Anything).Return([]entity.IslamicEvent{{ID: "eid-al-fitr"}})

	rec, env := f.do(t, http.MethodGet, "/events", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(env.Data), "eid-al-fitr")
}

func TestAPI_RegisterDevice(t *testing.T) {
	f := createTestAPI(t)
	f.deviceUC.EXPECT().
		RegisterDevice(mock.Anything, mock.MatchedBy(func(in *usecase.RegisterDeviceInput) bool {
			return in.Token == "tok-1" && in.Platform == entity.PlatformAndroid &&
				in.Latitude != nil && *in.Latitude == -6.2 && in.Timezone == "Asia/Jakarta"
		})).
		Return(testDevice("tok-1"), nil)

	rec, env := f.do(t, http.MethodPost, "/device/register",
		`{"token":"tok-1","device_id":"pixel","platform":"android","latitude":-6.2,"longitude":106.8,"timezone":"Asia/Jakarta"}`, nil)

	assert.Equal(t, http.StatusCreated, rec.Code)
	var device entity.Device
	require.NoError(t, json.Unmarshal(env.Data, &device))
	assert.Equal(t, "tok-1", device.Token)
	assert.NotEmpty(t, env.Meta.RequestID)
}

func TestAPI_RegisterDeviceValidation(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantField string
	}{
		{name: "missing token", body: `{"device_id":"pixel"}`, wantField: "token"},
		{name: "latitude without longitude", body: `{"token":"tok","latitude":1.5}`, wantField: "longitude"},
		{name: "unknown platform", body: `{"token":"tok","platform":"symbian"}`, wantField: "platform"},
		{name: "unknown timezone", body: `{"token":"tok","timezone":"Mars/Olympus"}`, wantField: "timezone"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := createTestAPI(t)

			rec, env := f.do(t, http.MethodPost, "/device/register", tt.body, nil)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			require.NotNil(t, env.Error)
			assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
			assert.Contains(t, env.Error.Details, tt.wantField)
		})
	}
}

func TestAPI_RegisterDeviceMalformedBody(t *testing.T) {
	f := createTestAPI(t)

	rec, env := f.do(t, http.MethodPost, "/device/register", `{"token":`, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
}

func TestAPI_UpdatePreferences(t *testing.T) {
	f := createTestAPI(t)
	f.deviceUC.EXPECT().
		UpdatePreferences(mock.Anything, "tok-1", mock.MatchedBy(func(p *entity.PreferencesPatch) bool {
			return p.NotifyBeforePrayer != nil && *p.NotifyBeforePrayer == 10 &&
				p.EnabledPrayers != nil && p.EnabledPrayers.Fajr != nil && !*p.EnabledPrayers.Fajr &&
				p.EnabledPrayers.Isha == nil && p.EnablePrayerNotifications == nil
		})).
		Return(testDevice("tok-1"), nil)

	rec, _ := f.do(t, http.MethodPut, "/device/tok-1/preferences",
		`{"notify_before_prayer":10,"enabled_prayers":{"fajr":false}}`, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAPI_UpdatePreferencesUnknownDevice(t *testing.T) {
	f := createTestAPI(t)
	f.deviceUC.EXPECT().
		UpdatePreferences(mock.Anything, "ghost", mock.Anything).
		Return(nil, domainerrors.ErrDeviceNotFound)

	rec, env := f.do(t, http.MethodPut, "/device/ghost/preferences", `{"enable_event_notifications":false}`, nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "DEVICE_NOT_FOUND", env.Error.Code)
}

func TestAPI_GetDevice(t *testing.T) {
	f := createTestAPI(t)
	f.deviceUC.EXPECT().GetDeviceByToken(mock.Anything, "tok-1").Return(testDevice("tok-1"), nil)
	f.deviceUC.EXPECT().GetDeviceByToken(mock.Anything, "ghost").
		Return(nil, errors.Wrap(domainerrors.ErrDeviceNotFound, "lookup"))

	rec, _ := f.do(t, http.MethodGet, "/device/tok-1", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, env := f.do(t, http.MethodGet, "/device/ghost", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "DEVICE_NOT_FOUND", env.Error.Code)
}

func TestAPI_UnregisterDeviceAlwaysSucceeds(t *testing.T) {
	f := createTestAPI(t)
	f.deviceUC.EXPECT().UnregisterDevice(mock.Anything, "ghost").Return(nil)

	rec, _ := f.do(t, http.MethodDelete, "/device/ghost", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAPI_PrayerToday(t *testing.T) {
	f := createTestAPI(t)
	f.prayerUC.EXPECT().
		GetPrayerToday(mock.Anything, mock.MatchedBy(func(in *usecase.PrayerTodayInput) bool {
			return in.Latitude == -6.2 && in.Longitude == 106.8 && in.Timezone == "Asia/Jakarta" && !in.Now.IsZero()
		})).
		Return(&usecase.PrayerTodayOutput{Next: entity.PrayerInstant{Name: entity.PrayerAsr, Clock: "15:10"}}, nil)

	rec, env := f.do(t, http.MethodGet, "/prayer/today?lat=-6.2&lon=106.8&tz=Asia/Jakarta", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(env.Data), `"asr"`)
}

func TestAPI_PrayerTodayErrors(t *testing.T) {
	t.Run("missing coordinates", func(t *testing.T) {
		f := createTestAPI(t)

		rec, env := f.do(t, http.MethodGet, "/prayer/today?lat=abc", "", nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	})

	t.Run("provider unavailable", func(t *testing.T) {
		f := createTestAPI(t)
		f.prayerUC.EXPECT().GetPrayerToday(mock.Anything, mock.Anything).
			Return(nil, domainerrors.ErrPrayerTimesUnavailable.WrapMessage("aladhan: 503"))

		rec, env := f.do(t, http.MethodGet, "/prayer/today?lat=1&lon=2", "", nil)

		assert.Equal(t, http.StatusBadGateway, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "PRAYER_TIMES_UNAVAILABLE", env.Error.Code)
	})

	t.Run("unexpected error hides details", func(t *testing.T) {
		f := createTestAPI(t)
		f.prayerUC.EXPECT().GetPrayerToday(mock.Anything, mock.Anything).
			Return(nil, errors.New("connection reset by peer"))

		rec, env := f.do(t, http.MethodGet, "/prayer/today?lat=1&lon=2", "", nil)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "INTERNAL_ERROR", env.Error.Code)
		assert.NotContains(t, rec.Body.String(), "connection reset")
	})
}

func TestAPI_Qibla(t *testing.T) {
	f := createTestAPI(t)
	f.prayerUC.EXPECT().GetQibla(mock.Anything, -6.2, 106.8).
		Return(&usecase.QiblaOutput{Latitude: -6.2, Longitude: 106.8, Bearing: 295.1, DistanceKm: 7920}, nil)

	rec, env := f.do(t, http.MethodGet, "/qibla?lat=-6.2&lon=106.8", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	var out usecase.QiblaOutput
	require.NoError(t, json.Unmarshal(env.Data, &out))
	assert.InDelta(t, 295.1, out.Bearing, 1e-9)
}

func TestAPI_HijriDate(t *testing.T) {
	f := createTestAPI(t)
	f.calendarUC.EXPECT().
		GetHijriDate(mock.Anything, mock.MatchedBy(func(day time.Time) bool {
			return day.Format(entity.DateLayout) == "2025-03-30" && day.Location().String() == "Asia/Jakarta"
		})).
		Return(&usecase.HijriDateOutput{Gregorian: "2025-03-30", MonthName: "Syawal"})

	rec, env := f.do(t, http.MethodGet, "/calendar/hijri?date=2025-03-30", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(env.Data), "Syawal")

	rec, env = f.do(t, http.MethodGet, "/calendar/hijri?date=30-03-2025", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
}

func TestAPI_UpcomingEvents(t *testing.T) {
	t.Run("default limit", func(t *testing.T) {
		f := createTestAPI(t)
		f.calendarUC.EXPECT().UpcomingEvents(mock.Anything, mock.Anything, 10).Return([]entity.UpcomingEvent{})

		rec, _ := f.do(t, http.MethodGet, "/events/upcoming", "", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("explicit limit and timezone", func(t *testing.T) {
		f := createTestAPI(t)
		f.calendarUC.EXPECT().
			UpcomingEvents(mock.Anything, mock.MatchedBy(func(now time.Time) bool {
				return now.Location().String() == "Asia/Makassar"
			}), 3).
			Return([]entity.UpcomingEvent{})

		rec, _ := f.do(t, http.MethodGet, "/events/upcoming?limit=3&tz=Asia/Makassar", "", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	for _, query := range []string{"limit=abc", "limit=-1", "limit=1000", "tz=Nowhere/City"} {
		t.Run("rejects "+query, func(t *testing.T) {
			f := createTestAPI(t)

			rec, _ := f.do(t, http.MethodGet, "/events/upcoming?"+query, "", nil)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestAPI_RequestIDIsEchoed(t *testing.T) {
	f := createTestAPI(t)
	f.calendarUC.EXPECT().ListEvents(mock.Anything).Return([]entity.IslamicEvent{})

	rec, env := f.do(t, http.MethodGet, "/events", "", map[string]string{deliverycontext.HeaderXRequestID: "req-42"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "req-42", env.Meta.RequestID)
	assert.Equal(t, "req-42", rec.Header().Get(deliverycontext.HeaderXRequestID))
}
