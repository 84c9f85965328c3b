package impl

import (
	"context"
	"testing"
	"time"

	"muslimapp/internal/domain/entity"
	domainerrors "muslimapp/internal/domain/errors"
	mockSvc "muslimapp/internal/mocks/service"
	"muslimapp/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type prayerServiceFixtures struct {
	service  usecase.PrayerUsecase
	provider *mockSvc.MockPrayerTimeProvider
}

func createTestPrayerService(t *testing.T) prayerServiceFixtures {
	provider := mockSvc.NewMockPrayerTimeProvider(t)

	return prayerServiceFixtures{
		service: NewPrayerService(PrayerServiceParams{
			Provider: provider,
			Config:   newTestConfig(),
			Logger:   newDiscardLogger(),
		}),
		provider: provider,
	}
}

func jakartaTimes(fajr string) *entity.PrayerTimes {
	return &entity.PrayerTimes{Fajr: fajr, Dhuhr: "11:55", Asr: "15:15", Maghrib: "17:55", Isha: "19:05"}
}

func TestPrayerService_GetPrayerToday_BetweenPrayers(t *testing.T) {
	fx := createTestPrayerService(t)
	loc := mustLoadLocation("Asia/Jakarta")
	now := time.Date(2025, time.March, 10, 12, 30, 0, 0, loc)

	fx.provider.EXPECT().
		ComputePrayerTimes(mock.Anything, -6.2, 106.8, mock.AnythingOfType("time.Time"), "Asia/Jakarta").
		Return(jakartaTimes("04:35"), nil).
		Once()

	out, err := fx.service.GetPrayerToday(context.Background(), &usecase.PrayerTodayInput{
		Latitude: -6.2, Longitude: 106.8, Timezone: "Asia/Jakarta", Now: now,
	})
	require.NoError(t, err)

	assert.Equal(t, "2025-03-10", out.Schedule.Date)
	assert.Len(t, out.Schedule.Prayers, 5)
	assert.Equal(t, entity.PrayerDhuhr, out.Current.Name)
	assert.Equal(t, entity.PrayerAsr, out.Next.Name)
	assert.Equal(t, 1446, out.Hijri.Year)
}

func TestPrayerService_GetPrayerToday_AfterIshaUsesTomorrowsFajr(t *testing.T) {
	fx := createTestPrayerService(t)
	loc := mustLoadLocation("Asia/Jakarta")
	now := time.Date(2025, time.March, 10, 21, 0, 0, 0, loc)

	fx.provider.EXPECT().
		ComputePrayerTimes(mock.Anything, -6.2, 106.8, mock.MatchedBy(func(d time.Time) bool { return d.Day() == 10 }), "Asia/Jakarta").
		Return(jakartaTimes("04:35"), nil)
	fx.provider.EXPECT().
		ComputePrayerTimes(mock.Anything, -6.2, 106.8, mock.MatchedBy(func(d time.Time) bool { return d.Day() == 11 }), "Asia/Jakarta").
		Return(jakartaTimes("04:36"), nil)

	out, err := fx.service.GetPrayerToday(context.Background(), &usecase.PrayerTodayInput{
		Latitude: -6.2, Longitude: 106.8, Timezone: "Asia/Jakarta", Now: now,
	})
	require.NoError(t, err)

	assert.Equal(t, entity.PrayerIsha, out.Current.Name)
	assert.Equal(t, entity.PrayerFajr, out.Next.Name)
	assert.Equal(t, time.Date(2025, time.March, 11, 4, 36, 0, 0, loc), out.Next.At)
}

func TestPrayerService_GetPrayerToday_TomorrowFailureFallsBack(t *testing.T) {
	fx := createTestPrayerService(t)
	loc := mustLoadLocation("Asia/Jakarta")
	now := time.Date(2025, time.March, 10, 21, 0, 0, 0, loc)

	fx.provider.EXPECT().
		ComputePrayerTimes(mock.Anything, -6.2, 106.8, mock.MatchedBy(func(d time.Time) bool { return d.Day() == 10 }), "Asia/Jakarta").
		Return(jakartaTimes("04:35"), nil)
	fx.provider.EXPECT().
		ComputePrayerTimes(mock.Anything, -6.2, 106.8, mock.MatchedBy(func(d time.Time) bool { return d.Day() == 11 }), "Asia/Jakarta").
		Return(nil, domainerrors.ErrPrayerTimesUnavailable)

	out, err := fx.service.GetPrayerToday(context.Background(), &usecase.PrayerTodayInput{
		Latitude: -6.2, Longitude: 106.8, Timezone: "Asia/Jakarta", Now: now,
	})
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.March, 11, 4, 35, 0, 0, loc), out.Next.At)
}

func TestPrayerService_GetPrayerToday_Errors(t *testing.T) {
	t.Run("invalid location", func(t *testing.T) {
		fx := createTestPrayerService(t)

		_, err := fx.service.GetPrayerToday(context.Background(), &usecase.PrayerTodayInput{Latitude: 100, Longitude: 0})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidLocation)
	})

	t.Run("unknown timezone", func(t *testing.T) {
		fx := createTestPrayerService(t)

		_, err := fx.service.GetPrayerToday(context.Background(), &usecase.PrayerTodayInput{Timezone: "Nowhere/City"})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("provider failure", func(t *testing.T) {
		fx := createTestPrayerService(t)
		fx.provider.EXPECT().
			ComputePrayerTimes(mock.Anything, 0.0, 0.0, mock.Anything, "Asia/Jakarta").
			Return(nil, domainerrors.ErrPrayerTimesUnavailable.WrapMessage("status 500"))

		_, err := fx.service.GetPrayerToday(context.Background(), &usecase.PrayerTodayInput{})
		assert.ErrorIs(t, err, domainerrors.ErrPrayerTimesUnavailable)
	})

	t.Run("malformed clock", func(t *testing.T) {
		fx := createTestPrayerService(t)
		fx.provider.EXPECT().
			ComputePrayerTimes(mock.Anything, 0.0, 0.0, mock.Anything, "Asia/Jakarta").
			Return(jakartaTimes("25:99"), nil)

		_, err := fx.service.GetPrayerToday(context.Background(), &usecase.PrayerTodayInput{})
		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrPrayerTimesUnavailable))
	})
}

func TestPrayerService_GetQibla(t *testing.T) {
	fx := createTestPrayerService(t)

	out, err := fx.service.GetQibla(context.Background(), -6.2, 106.8)
	require.NoError(t, err)
	assert.InDelta(t, 295, out.Bearing, 1)
	assert.InDelta(t, 7900, out.DistanceKm, 150)

	_, err = fx.service.GetQibla(context.Background(), 0, 200)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidLocation)
}
