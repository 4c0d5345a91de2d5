// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvgsl/enums"
	"github.com/katalvlaran/lvgsl/gslerr"
	"github.com/katalvlaran/lvgsl/physconst"
)

type codeRow struct {
	Name    string `yaml:"name"`
	Code    int32  `yaml:"code"`
	Message string `yaml:"message"`
}

var codesCmd = &cobra.Command{
	Use:   "codes",
	Short: "List the named GSL error codes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		var rows []codeRow
		for _, e := range gslerr.Named() {
			rows = append(rows, codeRow{Name: e.Name(), Code: e.Code(), Message: e.Message()})
		}

		return emit(cmd.OutOrStdout(), rows, func(tw io.Writer) {
			for _, r := range rows {
				fmt.Fprintf(tw, "%d\t%s\t%s\n", r.Code, r.Name, r.Message)
			}
		})
	},
}

var enumsCmd = &cobra.Command{
	Use:   "enums",
	Short: "List the enum families and their native codes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cat := enums.Catalog()

		return emit(cmd.OutOrStdout(), cat, func(tw io.Writer) {
			for _, f := range cat {
				for _, m := range f.Members {
					fmt.Fprintf(tw, "%s\t%s\t%d\n", f.Name, m.Name, m.Native)
				}
			}
		})
	},
}

var constsCmd = &cobra.Command{
	Use:   "consts",
	Short: "List the indexed physical constants in MKSA and CGSM units",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		all := physconst.All()

		return emit(cmd.OutOrStdout(), all, func(tw io.Writer) {
			for _, c := range all {
				cgsm := "-"
				if c.HasCGSM() {
					cgsm = fmt.Sprintf("%g", c.CGSM)
				}
				fmt.Fprintf(tw, "%s\t%g\t%s\n", c.Name, c.MKSA, cgsm)
			}
		})
	},
}

// emit writes v as yaml, or runs text against an aligned table writer.
func emit(w io.Writer, v any, text func(io.Writer)) error {
	if format == "yaml" {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}

		return enc.Close()
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	text(tw)

	return tw.Flush()
}
