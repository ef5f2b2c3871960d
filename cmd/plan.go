package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// planCmd represents the plan command.
var planCmd = newPlanCmd()

func newPlanCmd() *cobra.Command {
	flags := &selectionFlags{}

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Show which tasks would be selected without generating anything",
		Long: `Resolve the tasks relevant to the current change and print them with
their suite and the number of selected tests ("all" for whole-task runs).
Nothing is written to disk.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			args, err := flags.runArgs(ctx)
			if err != nil {
				return err
			}

			selector, err := newSelector()
			if err != nil {
				return fmt.Errorf("configure selector: %w", err)
			}

			selection, err := selector.Plan(ctx, args)
			if err != nil {
				return err
			}

			return newUI(cmd).DisplaySelection(ctx, selection)
		},
	}

	flags.register(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(planCmd)
}
