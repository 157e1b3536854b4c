package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"bld/internal/storage/sqlite"
	"bld/internal/util"
)

type app struct {
	dbPath   string
	logLevel string
	logger   *slog.Logger
}

func main() {
	// A missing .env is normal outside development.
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:          "bld",
		Short:        "BLD Systems project dashboard",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a.logger = newLogger(a.logLevel)
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&a.dbPath, "db", util.EnvOrDefault("BLD_DB_PATH", "data/bld.db"), "Path to sqlite database file")
	cmd.PersistentFlags().StringVar(&a.logLevel, "log-level", util.EnvOrDefault("BLD_LOG_LEVEL", "info"), "Log level (debug, info, warn, error)")

	cmd.AddCommand(newServeCmd(a), newUserCmd(a))
	return cmd
}

func (a *app) openStore() (*sqlite.Store, error) {
	return sqlite.Open(a.dbPath, a.logger)
}

func newLogger(level string) *slog.Logger {
	var l slog.Level
	switch strings.ToLower(level) {
	case "debug":
		l = slog.LevelDebug
	case "warn", "warning":
		l = slog.LevelWarn
	case "error":
		l = slog.LevelError
	default:
		l = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: l}))
}
