package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is overridden at build time with
// -ldflags "-X main.version=1.2.3".
var version = "0.1.0"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "unitcalc version %s\n", version)
			return nil
		},
	}
}
