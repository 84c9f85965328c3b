package calendar

import (
	"testing"
	"time"

	"muslimapp/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestToHijri_ReferenceDates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		date      time.Time
		want      entity.HijriDate
		monthName string
	}{
		{
			name:      "eighteenth century",
			date:      time.Date(1776, time.July, 4, 0, 0, 0, 0, time.UTC),
			want:      entity.HijriDate{Day: 18, Month: 4, Year: 1190},
			monthName: "Jumadil Awal",
		},
		{
			name:      "nineteenth century boundary",
			date:      time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC),
			want:      entity.HijriDate{Day: 29, Month: 7, Year: 1317},
			monthName: "Syaban",
		},
		{
			name:      "millennium",
			date:      time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC),
			want:      entity.HijriDate{Day: 25, Month: 8, Year: 1420},
			monthName: "Ramadan",
		},
		{
			name:      "new year 2024",
			date:      time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
			want:      entity.HijriDate{Day: 20, Month: 5, Year: 1445},
			monthName: "Jumadil Akhir",
		},
		{
			name:      "first of syawal 1446",
			date:      time.Date(2025, time.March, 30, 0, 0, 0, 0, time.UTC),
			want:      entity.HijriDate{Day: 1, Month: 9, Year: 1446},
			monthName: "Syawal",
		},
		{
			name:      "twenty second century",
			date:      time.Date(2100, time.January, 1, 0, 0, 0, 0, time.UTC),
			want:      entity.HijriDate{Day: 20, Month: 9, Year: 1523},
			monthName: "Syawal",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ToHijri(tt.date)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.monthName, IslamicMonthName(got.Month))
		})
	}
}

func TestToHijri_UsesCivilDateOfLocation(t *testing.T) {
	jakarta, err := time.LoadLocation("Asia/Jakarta")
	if err != nil {
		t.Skipf("timezone data unavailable: %v", err)
	}

	// 2024-01-01 01:00 in Jakarta is still 2023-12-31 in UTC.
	local := time.Date(2024, time.January, 1, 1, 0, 0, 0, jakarta)

	assert.Equal(t, entity.HijriDate{Day: 20, Month: 5, Year: 1445}, ToHijri(local))
	assert.Equal(t, entity.HijriDate{Day: 19, Month: 5, Year: 1445}, ToHijri(local.UTC()))
}

func TestToHijri_DeterministicOverRange(t *testing.T) {
	t.Parallel()

	start := time.Date(1583, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2200, time.January, 1, 0, 0, 0, 0, time.UTC)

	for day := start; day.Before(end); day = day.AddDate(0, 0, 17) {
		first := ToHijri(day)
		second := ToHijri(day)
		if first != second {
			t.Fatalf("ToHijri(%s) not deterministic: %v vs %v", day.Format(entity.DateLayout), first, second)
		}
		if first.Month < 0 || first.Month > 11 {
			t.Fatalf("ToHijri(%s) month %d out of range", day.Format(entity.DateLayout), first.Month)
		}
		if IslamicMonthName(first.Month) == "" {
			t.Fatalf("ToHijri(%s) has no month name", day.Format(entity.DateLayout))
		}
		if first.Day < 1 || first.Day > 30 {
			t.Fatalf("ToHijri(%s) day %d out of range", day.Format(entity.DateLayout), first.Day)
		}
	}
}

func TestIslamicMonthName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Muharram", IslamicMonthName(0))
	assert.Equal(t, "Dzulhijjah", IslamicMonthName(11))
	assert.Empty(t, IslamicMonthName(-1))
	assert.Empty(t, IslamicMonthName(12))
}

func TestFormat(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "9 Rabiul Awal 1448 H", Format(entity.HijriDate{Day: 9, Month: 2, Year: 1448}))
	assert.Equal(t, "9/13/1448", Format(entity.HijriDate{Day: 9, Month: 12, Year: 1448}))
}
