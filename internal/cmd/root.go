package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

const defaultConfigPath = "./config.yml"

func Root() *cobra.Command {
	root := &cobra.Command{
		Use:   "tictactoe",
		Short: "Tic-tac-toe engine with a perfect-play bot",
		Args:  cobra.NoArgs,

		SilenceErrors: true,
		SilenceUsage:  true,
	}

	root.PersistentFlags().StringP("config", "c", defaultConfigPath, "Path to the config file")

	root.AddCommand(Serve())
	root.AddCommand(SelfPlay())

	return root
}

// newLogger - json logger at the configured level; unknown levels fall back to info.
func newLogger(logLevel string) *slog.Logger {
	var level slog.Level

	switch logLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}
