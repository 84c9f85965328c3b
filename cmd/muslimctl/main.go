// Command muslimctl is the operator CLI of the prayer notification engine.
//
// Usage:
//
//	muslimctl hijri 2025-03-30 --tz Asia/Jakarta
//	muslimctl qibla -6.2 106.8
//	muslimctl events list
//	muslimctl events upcoming --limit 5
//	muslimctl ledger prune
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"text/tabwriter"
	"time"
	_ "time/tzdata"

	"muslimapp/config"
	"muslimapp/internal/domain/calendar"
	"muslimapp/internal/domain/entity"
	"muslimapp/internal/domain/lifecycle"
	"muslimapp/internal/domain/qibla"
	"muslimapp/internal/domain/repository"
	"muslimapp/internal/infra/catalog"
	logs "muslimapp/internal/infra/log"
	"muslimapp/internal/infra/persistence"
	"muslimapp/internal/usecase"
	"muslimapp/internal/usecase/impl"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

var logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

func main() {
	root := &cobra.Command{
		Use:           "muslimctl",
		Short:         "Prayer notification engine CLI",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	var catalogBucket, catalogKey string
	root.PersistentFlags().StringVar(&catalogBucket, "catalog-bucket", "", "Bucket URL of an event catalog override (file:///path, gs://bucket)")
	root.PersistentFlags().StringVar(&catalogKey, "catalog-key", "islamic_events.yaml", "Object key of the catalog override")

	loadCalendar := func(ctx context.Context) (usecase.CalendarUsecase, error) {
		cat := calendar.DefaultCatalog()
		if catalogBucket != "" {
			loaded, err := catalog.LoadFromBucket(ctx, catalogBucket, catalogKey)
			if err != nil {
				return nil, err
			}
			cat = loaded
		}

		return impl.NewCalendarService(impl.CalendarServiceParams{Catalog: cat, Logger: logger}), nil
	}

	root.AddCommand(hijriCmd(loadCalendar))
	root.AddCommand(qiblaCmd())
	root.AddCommand(eventsCmd(loadCalendar))
	root.AddCommand(ledgerCmd())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}

type calendarLoader func(ctx context.Context) (usecase.CalendarUsecase, error)

func loadLocation(tz string) (*time.Location, error) {
	if tz == "" {
		return time.Local, nil
	}

	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, errors.Wrapf(err, "unknown timezone %q", tz)
	}

	return loc, nil
}

// --------------------------------------------------------------------------
// hijri command
// --------------------------------------------------------------------------

func hijriCmd(load calendarLoader) *cobra.Command {
	var tz string
	cmd := &cobra.Command{
		Use:   "hijri [YYYY-MM-DD]",
		Short: "Convert a civil date (default today) to the Hijri calendar",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			loc, err := loadLocation(tz)
			if err != nil {
				return err
			}

			day := time.Now().In(loc)
			if len(args) == 1 {
				day, err = time.ParseInLocation(entity.DateLayout, args[0], loc)
				if err != nil {
					return errors.Wrap(err, "date must be formatted as YYYY-MM-DD")
				}
			}

			calendarUC, err := load(cmd.Context())
			if err != nil {
				return err
			}

			out := calendarUC.GetHijriDate(cmd.Context(), day)
			fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", out.Gregorian, out.Formatted)
			for _, ev := range out.Events {
				fmt.Fprintf(cmd.OutOrStdout(), "  %s: %s\n", ev.ID, ev.Title)
			}

			return nil
		},
	}
	cmd.Flags().StringVar(&tz, "tz", "", "IANA timezone of the civil date (default local)")

	return cmd
}

// --------------------------------------------------------------------------
// qibla command
// --------------------------------------------------------------------------

func qiblaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "qibla <lat> <lon>",
		Short: "Print the qibla bearing and the distance to the Kaaba",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			lat, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return errors.Wrap(err, "latitude")
			}
			lon, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return errors.Wrap(err, "longitude")
			}
			if err := qibla.Validate(lat, lon); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "bearing  %.2f°\ndistance %.0f km\n",
				qibla.Bearing(lat, lon), qibla.Distance(lat, lon)/1000)

			return nil
		},
	}
}

// --------------------------------------------------------------------------
// events command
// --------------------------------------------------------------------------

func eventsCmd(load calendarLoader) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "events",
		Short: "Inspect the Islamic event catalog",
	}
	cmd.AddCommand(eventsListCmd(load))
	cmd.AddCommand(eventsUpcomingCmd(load))

	return cmd
}

func eventsListCmd(load calendarLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every catalog entry",
		RunE: func(cmd *cobra.Command, args []string) error {
			calendarUC, err := load(cmd.Context())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tHIJRI\tTITLE")
			for _, ev := range calendarUC.ListEvents(cmd.Context()) {
				fmt.Fprintf(w, "%s\t%d %s\t%s\n", ev.ID, ev.HijriDay, calendar.IslamicMonthName(ev.HijriMonth), ev.Title)
			}

			return w.Flush()
		},
	}
}

func eventsUpcomingCmd(load calendarLoader) *cobra.Command {
	var limit int
	var tz string
	cmd := &cobra.Command{
		Use:   "upcoming",
		Short: "List the next catalog events with estimated civil dates",
		RunE: func(cmd *cobra.Command, args []string) error {
			loc, err := loadLocation(tz)
			if err != nil {
				return err
			}

			calendarUC, err := load(cmd.Context())
			if err != nil {
				return err
			}

			printUpcoming(cmd.OutOrStdout(), calendarUC.UpcomingEvents(cmd.Context(), time.Now().In(loc), limit))

			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 10, "Maximum number of events")
	cmd.Flags().StringVar(&tz, "tz", "", "IANA timezone used to pick today (default local)")

	return cmd
}

func printUpcoming(out io.Writer, events []entity.UpcomingEvent) {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tHIJRI\tID\tTITLE")
	for _, ev := range events {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", ev.EstimatedGregorian, calendar.Format(ev.HijriDate()), ev.ID, ev.Title)
	}
	_ = w.Flush()
}

// --------------------------------------------------------------------------
// ledger command
// --------------------------------------------------------------------------

func ledgerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ledger",
		Short: "Maintain the delivery ledger",
	}
	cmd.AddCommand(ledgerPruneCmd())

	return cmd
}

func ledgerPruneCmd() *cobra.Command {
	var retention time.Duration
	cmd := &cobra.Command{
		Use:   "prune",
		Short: "Delete delivery records older than the retention window",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeliveryRepo(cmd.Context(), func(ctx context.Context, cfg *config.Config, repo repository.DeliveryRepository) error {
				if retention <= 0 {
					retention = cfg.Scheduler.Retention
				}

				before := entity.RetentionCutoff(time.Now(), retention)
				deleted, err := repo.PruneRecords(ctx, before)
				if err != nil {
					return errors.Wrap(err, "failed to prune delivery records")
				}

				fmt.Fprintf(cmd.OutOrStdout(), "deleted %d records dated before %s\n", deleted, before)

				return nil
			})
		},
	}
	cmd.Flags().DurationVar(&retention, "retention", 0, "Override scheduler.retention")

	return cmd
}

// withDeliveryRepo starts just enough of the application to reach the configured store.
func withDeliveryRepo(ctx context.Context, fn func(context.Context, *config.Config, repository.DeliveryRepository) error) error {
	cfg, err := config.New()
	if err != nil {
		return err
	}

	var repo repository.DeliveryRepository
	app := fx.New(
		fx.NopLogger,
		fx.Supply(cfg),
		fx.Provide(logs.New),
		persistence.Module(cfg),
		fx.Populate(&repo),
	)

	startCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()
	if err := app.Start(startCtx); err != nil {
		return errors.Wrap(err, "failed to start")
	}
	defer func() {
		stopCtx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
		defer cancel()
		if err := app.Stop(stopCtx); err != nil {
			logger.Warn("Failed to stop cleanly", slog.Any("error", err))
		}
	}()

	return fn(ctx, cfg, repo)
}
