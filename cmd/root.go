// Package cmd implements the libxo-demo CLI commands.
package cmd

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root libxo-demo command with all subcommands
// registered.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "libxo-demo",
		Short:         "libxo-demo - structured-output (libxo-style) demo CLI",
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		RunE:          rootRunE,
	}
	root.AddCommand(NewEmitCmd())
	return root
}

func rootRunE(cmd *cobra.Command, _ []string) error {
	return cmd.Help()
}
