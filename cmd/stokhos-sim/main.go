// Command stokhos-sim simulates Heston stochastic-volatility price paths
// with the stokhos engine, reports terminal statistics, and can render the
// simulated paths as a PNG fan chart.
package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	logLevel string
	logger   zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "stokhos-sim",
	Short: "Simulate Heston stochastic-volatility price paths",
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		level, err := zerolog.ParseLevel(strings.ToLower(logLevel))
		if err != nil {
			level = zerolog.InfoLevel
		}

		logger = zerolog.New(zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		}).Level(level).With().Timestamp().Logger()
	},
}

func main() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (trace, debug, info, warn, error)")
	rootCmd.AddCommand(runCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
