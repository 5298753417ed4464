package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/schedsync/sheetcal/internal/calendar"
	"github.com/schedsync/sheetcal/internal/config"
	"github.com/schedsync/sheetcal/internal/google"
	"github.com/schedsync/sheetcal/internal/logging"
	"github.com/schedsync/sheetcal/internal/sheets"
	"github.com/schedsync/sheetcal/internal/snapshot"
	"github.com/schedsync/sheetcal/internal/syncer"
)

func newSyncCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Run a single synchronization pass",
		Long: `Run one synchronization pass: fetch the schedule rows, diff them against
the stored snapshot and apply the resulting changes to the calendar. Exits
non-zero if the pass fails; a failed pass leaves the snapshot untouched so the
next run picks up where this one left off.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configFile)
			if err != nil {
				return err
			}

			logger := logging.New(cfg.LogLevel)
			app, err := buildApp(cmd.Context(), cfg, logger)
			if err != nil {
				return err
			}
			defer app.Close()

			return app.Syncer.RunOnce(cmd.Context())
		},
	}
}

// app bundles the wired-up collaborators a command needs.
type app struct {
	Syncer *syncer.Syncer
	Store  *snapshot.Store
}

// Close releases held resources.
func (a *app) Close() {
	if a.Store != nil {
		if err := a.Store.Close(); err != nil {
			slog.Warn("closing snapshot store", logging.Err(err))
		}
	}
}

// buildApp constructs the authenticated clients, the snapshot store and the
// syncer from the loaded configuration.
func buildApp(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*app, error) {
	sheetsHTTP, err := google.NewClient(ctx, cfg.CredentialsFile, cfg.Subject, google.ScopeSpreadsheetsReadonly)
	if err != nil {
		return nil, fmt.Errorf("authenticating for sheets: %w", err)
	}
	calendarHTTP, err := google.NewClient(ctx, cfg.CredentialsFile, cfg.Subject, google.ScopeCalendar)
	if err != nil {
		return nil, fmt.Errorf("authenticating for calendar: %w", err)
	}

	rows, err := sheets.NewClient(ctx, sheetsHTTP, cfg.SpreadsheetID, cfg.RowLimit)
	if err != nil {
		return nil, fmt.Errorf("creating sheets client: %w", err)
	}
	cal, err := calendar.NewClient(ctx, calendarHTTP, cfg.CalendarID, cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("creating calendar client: %w", err)
	}

	store, err := snapshot.Open(cfg.Database, logger)
	if err != nil {
		return nil, err
	}

	return &app{
		Syncer: syncer.New(rows, cal, store, logger, cfg.Pacing()),
		Store:  store,
	}, nil
}
