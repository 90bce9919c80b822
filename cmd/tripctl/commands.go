package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"

	"github.com/mmynk/tripledger/internal/config"
	"github.com/mmynk/tripledger/internal/models"
	"github.com/mmynk/tripledger/internal/report"
	"github.com/mmynk/tripledger/internal/storage"
	"github.com/mmynk/tripledger/internal/storage/sqlite"
)

var commands = []subcommands.Command{
	&tripsCmd{},
	&reportCmd{},
	&settleCmd{},
}

// dbFlags are shared by every command.
type dbFlags struct {
	dbPath string
}

func (d *dbFlags) register(f *flag.FlagSet) {
	f.StringVar(&d.dbPath, "db", "", "SQLite database file. Defaults to DB_PATH.")
}

func (d *dbFlags) open(cfg *config.Config) (*sqlite.SQLiteStore, error) {
	dbPath := d.dbPath
	if dbPath == "" {
		dbPath = cfg.DBPath
	}
	if _, err := os.Stat(dbPath); err != nil {
		return nil, fmt.Errorf("database %q: %w", dbPath, err)
	}
	return sqlite.New(dbPath)
}

// tripsCmd holds the flags for the 'trips' subcommand.
type tripsCmd struct {
	dbFlags
	status string
}

func (*tripsCmd) Name() string     { return "trips" }
func (*tripsCmd) Synopsis() string { return "list the trips in the ledger" }
func (*tripsCmd) Usage() string {
	return `tripctl trips [-db <file>] [-status ONGOING|COMPLETED]

  Lists every trip, newest first.
`
}

func (c *tripsCmd) SetFlags(f *flag.FlagSet) {
	c.dbFlags.register(f)
	f.StringVar(&c.status, "status", "", "Only list trips with this status.")
}

func (c *tripsCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var status models.TripStatus
	if c.status != "" {
		var err error
		if status, err = models.ParseTripStatus(c.status); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	cfg := config.Load()
	renderer, err := report.NewRenderer(cfg.Currency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	store, err := c.open(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	defer store.Close()

	trips, err := store.ListTrips(ctx, "", status)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing trips: %v\n", err)
		return subcommands.ExitFailure
	}

	var b strings.Builder
	writeTripTable(&b, trips, renderer)
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}

func writeTripTable(w io.Writer, trips []models.TripSummary, renderer *report.Renderer) {
	if len(trips) == 0 {
		fmt.Fprintln(w, "_No trips yet._")
		return
	}
	fmt.Fprintln(w, "| ID | Name | Status | Ends | Total |")
	fmt.Fprintln(w, "|:---|:---|:---|:---|---:|")
	for _, t := range trips {
		end := "-"
		if d := t.EffectiveEndDate(); !d.IsZero() {
			end = d.Format("02 Jan 2006")
		}
		fmt.Fprintf(w, "| %s | %s | %s | %s | %s |\n", t.ID, t.Name, t.Status, end, renderer.Money(t.TotalExpense))
	}
}

// reportCmd holds the flags for the 'report' subcommand.
type reportCmd struct {
	dbFlags
	tripID string
	raw    bool
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "display a trip's settlement report" }
func (*reportCmd) Usage() string {
	return `tripctl report -trip <id> [-db <file>] [-raw]

  Displays the trip overview, day-wise and individual spending, balances and
  the transfers that settle the trip.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	c.dbFlags.register(f)
	f.StringVar(&c.tripID, "trip", "", "Trip ID (required).")
	f.BoolVar(&c.raw, "raw", false, "Print Markdown without terminal styling.")
}

func (c *reportCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.tripID == "" {
		fmt.Fprintln(os.Stderr, "Error: -trip is required")
		return subcommands.ExitUsageError
	}

	cfg := config.Load()
	rep, renderer, status := loadReport(ctx, cfg, &c.dbFlags, c.tripID)
	if status != subcommands.ExitSuccess {
		return status
	}

	md, err := renderer.Markdown(rep)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error rendering report: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.raw {
		fmt.Print(md)
	} else {
		printMarkdown(md)
	}
	return subcommands.ExitSuccess
}

// settleCmd holds the flags for the 'settle' subcommand.
type settleCmd struct {
	dbFlags
	tripID string
}

func (*settleCmd) Name() string     { return "settle" }
func (*settleCmd) Synopsis() string { return "print the transfers that settle a trip" }
func (*settleCmd) Usage() string {
	return `tripctl settle -trip <id> [-db <file>]

  Prints one line per transfer: who pays whom and how much.
`
}

func (c *settleCmd) SetFlags(f *flag.FlagSet) {
	c.dbFlags.register(f)
	f.StringVar(&c.tripID, "trip", "", "Trip ID (required).")
}

func (c *settleCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.tripID == "" {
		fmt.Fprintln(os.Stderr, "Error: -trip is required")
		return subcommands.ExitUsageError
	}

	cfg := config.Load()
	rep, renderer, status := loadReport(ctx, cfg, &c.dbFlags, c.tripID)
	if status != subcommands.ExitSuccess {
		return status
	}

	writeTransfers(os.Stdout, rep, renderer)
	return subcommands.ExitSuccess
}

func writeTransfers(w io.Writer, rep *report.Report, renderer *report.Renderer) {
	switch {
	case rep.NoParticipants:
		fmt.Fprintln(w, "No participants.")
	case len(rep.Transfers) == 0:
		fmt.Fprintln(w, "Everyone is settled.")
	}
	for _, t := range rep.Transfers {
		fmt.Fprintf(w, "%s pays %s %s\n", t.From, t.To, renderer.Money(t.Amount))
	}
}

func loadReport(ctx context.Context, cfg *config.Config, db *dbFlags, tripID string) (*report.Report, *report.Renderer, subcommands.ExitStatus) {
	renderer, err := report.NewRenderer(cfg.Currency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return nil, nil, subcommands.ExitUsageError
	}
	loc, err := cfg.Location()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return nil, nil, subcommands.ExitUsageError
	}

	store, err := db.open(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening ledger: %v\n", err)
		return nil, nil, subcommands.ExitFailure
	}
	defer store.Close()

	rep, err := report.Load(ctx, store, tripID, loc)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			fmt.Fprintf(os.Stderr, "Trip %q not found\n", tripID)
		} else {
			fmt.Fprintf(os.Stderr, "Error loading trip: %v\n", err)
		}
		return nil, nil, subcommands.ExitFailure
	}
	return rep, renderer, subcommands.ExitSuccess
}

// printMarkdown renders md for the terminal, falling back to plain text.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
