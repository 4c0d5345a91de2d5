// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvgsl/native"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the module and backend versions",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		mod := "(devel)"
		if bi, ok := debug.ReadBuildInfo(); ok && bi.Main.Version != "" {
			mod = bi.Main.Version
		}
		lib := native.Default()
		gsl := lib.Version
		if gsl == "" {
			gsl = "none"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "lvgsl %s\nbackend %s\ngsl %s\n", mod, lib.Name, gsl)
	},
}
