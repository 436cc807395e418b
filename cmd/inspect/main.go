package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strconv"
	"strings"

	"chat-registry/domain"
	"chat-registry/repositories"

	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/kelseyhightower/envconfig"
	"github.com/mama165/sdk-go/logs"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
)

type Config struct {
	BadgerFilepath string `envconfig:"BADGER_FILEPATH" default:"./data/registry"`
	LogLevel       string `envconfig:"LOG_LEVEL" default:"ERROR"`
	// INSPECT_COLOURS toggles the coloured section headers
	Colours bool `envconfig:"INSPECT_COLOURS" default:"true"`
}

func main() {
	if err := run(os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run prints the last saved snapshot without touching it.
func run(out io.Writer) error {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(cfg.LogLevel)

	db, err := badger.Open(badger.DefaultOptions(cfg.BadgerFilepath).
		WithReadOnly(true).
		WithLoggingLevel(badger.ERROR))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer func() { _ = db.Close() }()

	snapshot, err := repositories.NewSnapshotRepository(db, log).Load()
	if err != nil {
		return err
	}
	render(out, snapshot, cfg.Colours, log)
	return nil
}

func render(out io.Writer, snapshot domain.Snapshot, colours bool, log *slog.Logger) {
	header := func(title string) {
		if colours {
			title = color.New(color.BgBlack, color.FgGreen).Render(title)
		}
		fmt.Fprintln(out, title)
	}

	header(fmt.Sprintf("Users (%d)", len(snapshot.Users)))
	users := newTable(out, "Username", "Wallet address")
	for _, wallet := range slices.Sorted(slices.Values(lo.Keys(snapshot.Users))) {
		users.Append([]string{snapshot.Users[wallet].Username, wallet})
	}
	users.Render()

	fmt.Fprintln(out)
	header(fmt.Sprintf("Rooms (%d)", len(snapshot.Rooms)))
	rooms := newTable(out, "Name", "Type", "Creator", "Members", "Messages", "Protected")
	for _, name := range slices.Sorted(slices.Values(lo.Keys(snapshot.Rooms))) {
		room := snapshot.Rooms[name]
		rooms.Append([]string{
			room.Name,
			room.Type.String(),
			room.Creator,
			strings.Join(room.Users, ", "),
			strconv.Itoa(len(room.Messages)),
			strconv.FormatBool(room.PasswordHash != ""),
		})
	}
	rooms.Render()
	log.Debug("Snapshot rendered", "users", len(snapshot.Users), "rooms", len(snapshot.Rooms))
}

func newTable(out io.Writer, headers ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(out)
	table.SetHeader(headers)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	return table
}
