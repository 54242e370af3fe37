package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	app "github.com/rocketscienceinc/mastermind/internal"
	"github.com/rocketscienceinc/mastermind/internal/config"
	"github.com/rocketscienceinc/mastermind/internal/entity"
)

var (
	configPath string
	colors     int
)

var rootCmd = &cobra.Command{
	Use:   "mastermind",
	Short: "Play Mastermind in the terminal",
	Long: `mastermind hides a code of four colors and scores your guesses.

W counts colors in the wrong spot, B counts colors in the right spot.
Fewer guesses and more colors are worth more points.

	mastermind --colors 8
`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		conf, err := config.Load(configPath)
		if err != nil {
			return err
		}

		if cmd.Flags().Changed("colors") {
			conf.Colors = colors
		}

		logger := initLogger(conf)

		return app.RunApp(cmd.Context(), logger, conf, cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// initialize logger. Logs go to stderr so they stay off the board.
func initLogger(conf *config.Config) *slog.Logger {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelWarn
	}

	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func init() {
	rootCmd.Flags().StringVar(&configPath, "config", "config.yml", "Path to the YAML config file")
	rootCmd.Flags().IntVarP(&colors, "colors", "c", entity.DefaultColors, "Number of colors, between 3 and 8")
}
