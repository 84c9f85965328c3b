package main

import (
	"bytes"
	"context"
	"testing"

	"muslimapp/internal/domain/calendar"
	"muslimapp/internal/usecase"
	"muslimapp/internal/usecase/impl"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func embeddedCalendar(context.Context) (usecase.CalendarUsecase, error) {
	return impl.NewCalendarService(impl.CalendarServiceParams{Catalog: calendar.DefaultCatalog(), Logger: logger}), nil
}

func execute(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())

	return out.String(), err
}

func TestHijriCmd(t *testing.T) {
	out, err := execute(t, hijriCmd(embeddedCalendar), "2025-03-30", "--tz", "Asia/Jakarta")

	require.NoError(t, err)
	assert.Contains(t, out, "2025-03-30  1 Syawal 1446 H")
	assert.Contains(t, out, "eid-al-fitr")
}

func TestHijriCmd_RejectsBadInput(t *testing.T) {
	_, err := execute(t, hijriCmd(embeddedCalendar), "30/03/2025")
	assert.Error(t, err)

	_, err = execute(t, hijriCmd(embeddedCalendar), "--tz", "Nowhere/City")
	assert.Error(t, err)
}

func TestQiblaCmd(t *testing.T) {
	out, err := execute(t, qiblaCmd(), "-6.2", "106.8")

	require.NoError(t, err)
	assert.Contains(t, out, "bearing  295.")

	_, err = execute(t, qiblaCmd(), "91", "0")
	assert.Error(t, err)
}

func TestEventsUpcomingCmd(t *testing.T) {
	out, err := execute(t, eventsCmd(embeddedCalendar), "upcoming", "--limit", "2", "--tz", "Asia/Jakarta")

	require.NoError(t, err)
	// Header plus two events.
	assert.Equal(t, 3, bytes.Count([]byte(out), []byte("\n")))
}
