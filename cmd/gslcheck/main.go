// SPDX-License-Identifier: MIT

// Command gslcheck inspects the linked GSL backend: it lists the error
// taxonomy, the enum transcoding tables and the physical constants, and runs
// a self-test profile against the backend.
//
//	go run -tags gsl ./cmd/gslcheck selftest --profile selftest.yaml
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	_ "github.com/katalvlaran/lvgsl"
)

var (
	logLevel string
	format   string
)

var rootCmd = &cobra.Command{
	Use:   "gslcheck",
	Short: "Inspect and self-test the GSL backend",
	Long:  `gslcheck prints the tables lvgsl shares with GSL and checks that the linked backend answers correctly.`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		var lvl slog.Level
		if err := lvl.UnmarshalText([]byte(logLevel)); err != nil {
			return fmt.Errorf("invalid --log-level %q: %w", logLevel, err)
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: lvl})))
		if format != "text" && format != "yaml" {
			return fmt.Errorf("invalid --format %q: want text or yaml", format)
		}

		return nil
	},
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&format, "format", "text", "output format (text, yaml)")

	rootCmd.AddCommand(codesCmd)
	rootCmd.AddCommand(enumsCmd)
	rootCmd.AddCommand(constsCmd)
	rootCmd.AddCommand(selftestCmd)
	rootCmd.AddCommand(versionCmd)
}
