package impl

import (
	"io"
	"log/slog"
	"time"

	"muslimapp/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Registry.DefaultTimezone = "Asia/Jakarta"
	cfg.Scheduler = config.SchedulerConfig{
		TickInterval:      time.Minute,
		Staleness:         30 * time.Minute,
		CatchUpWindow:     2 * time.Hour,
		Retention:         48 * time.Hour,
		Workers:           4,
		PageSize:          2,
		EventReminderTime: "07:00",
	}
	cfg.Dispatch = config.DispatchConfig{
		Mode:            config.DispatchModeInProcess,
		Workers:         2,
		QueueSize:       16,
		NotifierTimeout: time.Second,
		ClaimLease:      2 * time.Minute,
		RatePerSecond:   1000,
		Burst:           100,
	}

	return cfg
}

func mustLoadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(err)
	}

	return loc
}

func boolPtr(v bool) *bool { return &v }

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }
