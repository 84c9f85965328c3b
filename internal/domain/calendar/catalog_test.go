package calendar

import (
	"testing"

	"muslimapp/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func upcomingIDs(events []entity.UpcomingEvent) []string {
	ids := make([]string, 0, len(events))
	for _, e := range events {
		ids = append(ids, e.ID)
	}

	return ids
}

func TestDefaultCatalog_IsSorted(t *testing.T) {
	catalog := DefaultCatalog()
	events := catalog.All()

	require.Equal(t, 11, catalog.Len())
	for i := 1; i < len(events); i++ {
		prev := entity.HijriDate{Month: events[i-1].HijriMonth, Day: events[i-1].HijriDay}
		cur := entity.HijriDate{Month: events[i].HijriMonth, Day: events[i].HijriDay}
		assert.False(t, cur.Before(prev), "catalog not sorted at %s", events[i].ID)
	}
}

func TestCatalog_EventsOnHijriDate(t *testing.T) {
	catalog := DefaultCatalog()

	eid := catalog.EventsOnHijriDate(entity.HijriDate{Day: 1, Month: 9, Year: 1446})
	require.Len(t, eid, 1)
	assert.Equal(t, "eid-al-fitr", eid[0].ID)

	assert.Empty(t, catalog.EventsOnHijriDate(entity.HijriDate{Day: 2, Month: 9, Year: 1446}))
}

func TestCatalog_UpcomingEvents(t *testing.T) {
	catalog := DefaultCatalog()
	current := entity.HijriDate{Day: 20, Month: 5, Year: 1445}

	t.Run("wraps into next year", func(t *testing.T) {
		got := catalog.UpcomingEvents(current, 10)

		require.Len(t, got, 10)
		assert.Equal(t, []string{
			"isra-miraj", "nisfu-syaban", "ramadan-start", "nuzulul-quran", "laylat-al-qadr",
			"eid-al-fitr", "day-of-arafah", "eid-al-adha", "islamic-new-year", "ashura",
		}, upcomingIDs(got))
		assert.Equal(t, 1445, got[0].Year)
		assert.Equal(t, 1445, got[7].Year)
		assert.Equal(t, 1446, got[8].Year)
	})

	t.Run("includes an event on the current day", func(t *testing.T) {
		got := catalog.UpcomingEvents(entity.HijriDate{Day: 10, Month: 0, Year: 1446}, 1)

		require.Len(t, got, 1)
		assert.Equal(t, "ashura", got[0].ID)
		assert.Equal(t, 1446, got[0].Year)
	})

	t.Run("limit above catalog size rescans once", func(t *testing.T) {
		got := catalog.UpcomingEvents(current, 30)

		// 8 entries left this year plus one full pass for next year.
		require.Len(t, got, 19)
		assert.Equal(t, "isra-miraj", got[0].ID)
		assert.Equal(t, 1445, got[0].Year)
		assert.Equal(t, "isra-miraj", got[11].ID)
		assert.Equal(t, 1446, got[11].Year)
	})

	t.Run("non-positive limit", func(t *testing.T) {
		assert.Empty(t, catalog.UpcomingEvents(current, 0))
		assert.Empty(t, catalog.UpcomingEvents(current, -3))
	})
}

func TestParseCatalog(t *testing.T) {
	doc := []byte(`
events:
  - id: b
    hijriMonth: 9
    hijriDay: 1
    title: B
  - id: a
    hijriMonth: 0
    hijriDay: 1
    title: A
`)

	catalog, err := ParseCatalog(doc)
	require.NoError(t, err)
	assert.Equal(t, "a", catalog.All()[0].ID)

	_, err = ParseCatalog([]byte("events:\n  - id: x\n    hijriMonth: 12\n    hijriDay: 1\n"))
	assert.Error(t, err)

	_, err = ParseCatalog([]byte("events:\n  - id: x\n    hijriMonth: 1\n    hijriDay: 1\n  - id: x\n    hijriMonth: 2\n    hijriDay: 1\n"))
	assert.Error(t, err)
}
