package impl

import (
	"context"
	"testing"
	"time"

	"muslimapp/internal/domain/calendar"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestCalendarService() *calendarService {
	return NewCalendarService(CalendarServiceParams{
		Catalog: calendar.DefaultCatalog(),
		Logger:  newDiscardLogger(),
	}).(*calendarService)
}

func TestCalendarService_GetHijriDate(t *testing.T) {
	service := createTestCalendarService()
	eid := time.Date(2025, time.March, 30, 9, 0, 0, 0, mustLoadLocation("Asia/Jakarta"))

	out := service.GetHijriDate(context.Background(), eid)

	assert.Equal(t, "2025-03-30", out.Gregorian)
	assert.Equal(t, 1, out.Hijri.Day)
	assert.Equal(t, 9, out.Hijri.Month)
	assert.Equal(t, 1446, out.Hijri.Year)
	assert.Equal(t, "Syawal", out.MonthName)
	require.Len(t, out.Events, 1)
	assert.Equal(t, "eid-al-fitr", out.Events[0].ID)
}

func TestCalendarService_GetHijriDate_NoEvents(t *testing.T) {
	service := createTestCalendarService()

	out := service.GetHijriDate(context.Background(), time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC))

	assert.NotNil(t, out.Events)
	assert.Empty(t, out.Events)
}

func TestCalendarService_UpcomingEvents_EstimatesCivilDates(t *testing.T) {
	service := createTestCalendarService()
	now := time.Date(2025, time.March, 30, 9, 0, 0, 0, time.UTC)

	upcoming := service.UpcomingEvents(context.Background(), now, 3)
	require.Len(t, upcoming, 3)

	assert.Equal(t, "eid-al-fitr", upcoming[0].ID)
	assert.Equal(t, "2025-03-30", upcoming[0].EstimatedGregorian)

	previous := now.Format("2006-01-02")
	for _, event := range upcoming[1:] {
		require.NotEmpty(t, event.EstimatedGregorian, event.ID)
		assert.Greater(t, event.EstimatedGregorian, previous, event.ID)
		previous = event.EstimatedGregorian
	}
}

func TestCalendarService_UpcomingEvents_ZeroLimit(t *testing.T) {
	service := createTestCalendarService()

	assert.Empty(t, service.UpcomingEvents(context.Background(), time.Now(), 0))
}

func TestCalendarService_ListEvents(t *testing.T) {
	service := createTestCalendarService()

	events := service.ListEvents(context.Background())
	assert.Len(t, events, calendar.DefaultCatalog().Len())
}
