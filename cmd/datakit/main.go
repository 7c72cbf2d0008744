// Command datakit bundles the toolkit's dataframe utilities behind a
// small CLI: k-anonymizing CSV files, reporting column layouts and
// annotating phase vocabulary, with spreadsheet/SQLite/CSV output.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/datakit-go/datakit/pkg/config"
	"github.com/datakit-go/datakit/pkg/logger"
)

type envConfig struct {
	LogLevel  string `env:"DATAKIT_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"DATAKIT_LOG_FORMAT" envDefault:"text"`
}

func main() {
	os.Exit(run())
}

func run() int {
	var cfg envConfig
	if err := config.Load(&cfg); err != nil {
		fmt.Fprintln(os.Stderr, "datakit:", err)
		return 1
	}

	log := logger.New(
		logger.WithFormat(logger.Format(cfg.LogFormat)),
		logger.WithLevel(parseLevel(cfg.LogLevel)),
	)

	root := &cobra.Command{
		Use:           "datakit",
		Short:         "Dataframe utilities for analyst workflows",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		newAnonymizeCmd(log),
		newReportCmd(),
		newPhasesCmd(log),
	)

	if err := root.Execute(); err != nil {
		log.Error("command failed", logger.Error(err))
		return 1
	}
	return 0
}

func parseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
