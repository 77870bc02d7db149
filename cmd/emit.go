package cmd

import (
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"
)

var scenarioRunners = map[string]func(io.Writer) error{
	"s1": runS1,
	"s2": runS2,
	"s3": runS3,
	"s4": runS4,
	"s5": runS5,
	"s6": runS6,
}

// NewEmitCmd creates the "emit" subcommand, which drives the libxo package
// through the scenarios from the library's test corpus so a user can see
// each style's output directly.
func NewEmitCmd() *cobra.Command {
	var scenario string
	cmd := &cobra.Command{
		Use:   "emit",
		Short: "Run one or all of the built-in emit scenarios (s1-s6)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			if scenario == "all" {
				names := make([]string, 0, len(scenarioRunners))
				for name := range scenarioRunners {
					names = append(names, name)
				}
				sort.Strings(names)
				for _, name := range names {
					fmt.Fprintf(out, "--- %s ---\n", name)
					if err := scenarioRunners[name](out); err != nil {
						return fmt.Errorf("%s: %w", name, err)
					}
					fmt.Fprintln(out)
				}
				return nil
			}
			run, ok := scenarioRunners[scenario]
			if !ok {
				return fmt.Errorf("unknown scenario %q (want one of s1..s6, or all)", scenario)
			}
			return run(out)
		},
	}
	cmd.Flags().StringVar(&scenario, "scenario", "all", "scenario to run: s1, s2, s3, s4, s5, s6, or all")
	return cmd
}
