package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTimes() *PrayerTimes {
	return &PrayerTimes{
		Date:    "2024-03-11",
		Fajr:    "04:30",
		Dhuhr:   "11:58",
		Asr:     "15:12",
		Maghrib: "18:03",
		Isha:    "19:14",
	}
}

func TestNewPrayerSchedule(t *testing.T) {
	loc := time.FixedZone("WIB", 7*3600)
	day := time.Date(2024, time.March, 11, 0, 0, 0, 0, loc)

	schedule, err := NewPrayerSchedule(testTimes(), day, loc)
	require.NoError(t, err)

	require.Len(t, schedule.Prayers, 5)
	assert.Equal(t, "2024-03-11", schedule.Date)
	fajr, ok := schedule.Find(PrayerFajr)
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, time.March, 11, 4, 30, 0, 0, loc), fajr.At)

	_, err = NewPrayerSchedule(&PrayerTimes{Fajr: "nope"}, day, loc)
	assert.Error(t, err)
}

func TestPrayerSchedule_CurrentAndNext_IsCircular(t *testing.T) {
	loc := time.FixedZone("WIB", 7*3600)
	today, err := NewPrayerSchedule(testTimes(), time.Date(2024, time.March, 11, 0, 0, 0, 0, loc), loc)
	require.NoError(t, err)
	tomorrowTimes := testTimes()
	tomorrowTimes.Fajr = "04:31"
	tomorrow, err := NewPrayerSchedule(tomorrowTimes, time.Date(2024, time.March, 12, 0, 0, 0, 0, loc), loc)
	require.NoError(t, err)

	t.Run("before fajr", func(t *testing.T) {
		current, next := today.CurrentAndNext(time.Date(2024, time.March, 11, 3, 0, 0, 0, loc), tomorrow)

		assert.Equal(t, PrayerIsha, current.Name)
		assert.Equal(t, time.Date(2024, time.March, 10, 19, 14, 0, 0, loc), current.At)
		assert.Equal(t, PrayerFajr, next.Name)
		assert.Equal(t, 11, next.At.Day())
	})

	t.Run("between prayers", func(t *testing.T) {
		current, next := today.CurrentAndNext(time.Date(2024, time.March, 11, 12, 0, 0, 0, loc), tomorrow)

		assert.Equal(t, PrayerDhuhr, current.Name)
		assert.Equal(t, PrayerAsr, next.Name)
	})

	t.Run("after isha uses tomorrow", func(t *testing.T) {
		current, next := today.CurrentAndNext(time.Date(2024, time.March, 11, 21, 0, 0, 0, loc), tomorrow)

		assert.Equal(t, PrayerIsha, current.Name)
		assert.Equal(t, PrayerFajr, next.Name)
		assert.Equal(t, "04:31", next.Clock)
	})

	t.Run("after isha without tomorrow", func(t *testing.T) {
		_, next := today.CurrentAndNext(time.Date(2024, time.March, 11, 21, 0, 0, 0, loc), nil)

		assert.Equal(t, time.Date(2024, time.March, 12, 4, 30, 0, 0, loc), next.At)
	})
}

func TestDeliveryRecord_Blocks(t *testing.T) {
	now := time.Date(2024, time.March, 11, 4, 25, 0, 0, time.UTC)
	cutoff := now.Add(-2 * time.Minute)

	assert.True(t, (&DeliveryRecord{Outcome: OutcomeSent}).Blocks(cutoff))
	assert.True(t, (&DeliveryRecord{Outcome: OutcomeSkippedStale}).Blocks(cutoff))
	assert.True(t, (&DeliveryRecord{Outcome: OutcomeCancelled}).Blocks(cutoff))
	assert.False(t, (&DeliveryRecord{Outcome: OutcomeFailed}).Blocks(cutoff))
	assert.True(t, (&DeliveryRecord{Outcome: OutcomePending, UpdatedAt: now}).Blocks(cutoff))
	assert.False(t, (&DeliveryRecord{Outcome: OutcomePending, UpdatedAt: now.Add(-5 * time.Minute)}).Blocks(cutoff))
}
