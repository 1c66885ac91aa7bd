package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/mkhurana/reset/internal/cli"
	"github.com/mkhurana/reset/internal/cli/notify"
	"github.com/mkhurana/reset/internal/cli/system"
	"github.com/mkhurana/reset/internal/constants"
	"github.com/mkhurana/reset/internal/errors"
	"github.com/mkhurana/reset/internal/logger"
	"github.com/mkhurana/reset/internal/protocol"
	"github.com/mkhurana/reset/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Database file path or PostgreSQL connection string. For PostgreSQL, credentials must NOT be embedded in the connection string." type:"string" default:"${config_path}"`
	Debug   bool   `help:"Enable debug logging."`

	Init     system.InitCmd   `cmd:"" help:"Initialize reset storage."`
	Doctor   system.DoctorCmd `cmd:"" help:"Run health checks and diagnostics."`
	Tui      system.TuiCmd    `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Today    cli.TodayCmd     `cmd:"" help:"Show the day's checklist."`
	Check    cli.CheckCmd     `cmd:"" help:"Toggle a checklist item."`
	Metrics  cli.MetricsCmd   `cmd:"" help:"Record or show daily metrics."`
	History  cli.HistoryCmd   `cmd:"" help:"Show completion history."`
	Streak   cli.StreakCmd    `cmd:"" help:"Show the current streak."`
	Coach    cli.CoachCmd     `cmd:"" help:"Show deterministic advice for the day."`
	Clear    cli.ClearCmd     `cmd:"" help:"Delete all checks and metrics for a day."`
	Settings cli.SettingsCmd  `cmd:"" help:"Read or write application settings."`
	Notify   notify.NotifyCmd `cmd:"" help:"Manage the daily Telegram reminder."`
}

func main() {
	// Missing .env is the normal case; only an explicit file matters.
	_ = godotenv.Load()

	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Daily reset protocol tracker"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version":     constants.Version,
			"config_path": defaultConfigPath(),
		},
	)

	var store storage.Provider
	if storage.IsPostgresConnString(CLI.Config) {
		if storage.HasEmbeddedCredentials(CLI.Config) {
			fmt.Fprintf(os.Stderr, "❌ Error: PostgreSQL connection strings with embedded credentials are NOT allowed.\n")
			fmt.Fprintf(os.Stderr, "       Use environment variables or a .pgpass file instead.\n")
			os.Exit(1)
		}
		store = storage.NewPostgresStore(CLI.Config)
	} else {
		store = storage.NewSQLiteStore(CLI.Config)
	}

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(store.GetConfigPath()),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
	}

	appCtx := &cli.Context{
		Store: store,
		Proto: protocol.Default(),
	}

	if ctx.Selected() != nil && ctx.Selected().Name != "init" {
		if err := store.Load(); err != nil {
			errors.Fatal(err)
		}
	}

	if err := ctx.Run(appCtx); err != nil {
		errors.Fatal(err)
	}
}

// defaultConfigPath resolves the per-user database location, falling back to
// a relative path when the home directory cannot be determined.
func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".config", constants.AppName, constants.AppName+".db")
	}
	return filepath.Join(home, ".config", constants.AppName, constants.AppName+".db")
}
