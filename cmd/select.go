package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"selectest.dev/pkg/selectest/internal/adapter"
	"selectest.dev/pkg/selectest/internal/domain"
	m "selectest.dev/pkg/selectest/internal/model"
)

const selectLongDescription = `Select the tests and tasks relevant to the current change and write
the generated suite files and the task manifest (selected_tests_config.json)
to the output directory.

Changed files are read from git (diff against --revision plus untracked
files) unless they are listed explicitly with --changed-file.`

// selectionFlags are the per-invocation inputs shared by select and plan.
type selectionFlags struct {
	buildVariant  string
	expansionFile string
	revision      string
	changedFiles  []string
}

func (f *selectionFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.buildVariant, buildVariantFlagName, "b", "", "build variant to select tasks for")
	cmd.Flags().StringVarP(&f.expansionFile, expansionFileFlagName, "e", "", "expansion file of the invoking task")
	cmd.Flags().StringVar(&f.revision, revisionFlagName, adapter.DefaultRevision, "git revision to diff the working tree against")
	cmd.Flags().StringArrayVarP(&f.changedFiles, changedFileFlagName, "f", nil, "changed file (can be repeated); skips git detection")

	cobra.CheckErr(cmd.MarkFlagRequired(buildVariantFlagName))
	cobra.CheckErr(cmd.MarkFlagRequired(expansionFileFlagName))
}

func (f *selectionFlags) runArgs(ctx context.Context) (domain.RunArgs, error) {
	changed, err := resolveChangedFiles(ctx, f.revision, f.changedFiles)
	if err != nil {
		return domain.RunArgs{}, err
	}

	return domain.RunArgs{
		ChangedFiles:  changed,
		BuildVariant:  f.buildVariant,
		ExpansionFile: m.Path(f.expansionFile),
	}, nil
}

func resolveChangedFiles(ctx context.Context, revision string, explicit []string) (m.ChangedFiles, error) {
	if len(explicit) > 0 {
		return m.NewChangedFiles(explicit...), nil
	}

	detector := changedFileDetector
	if detector == nil {
		detector = adapter.NewGitChangedFileDetector(viper.GetString(repoRootKey))
	}

	changed, err := detector.ChangedFiles(ctx, revision)
	if err != nil {
		return nil, fmt.Errorf("detect changed files: %w", err)
	}

	return changed, nil
}

// selectCmd represents the select command.
var selectCmd = newSelectCmd()

func newSelectCmd() *cobra.Command {
	flags := &selectionFlags{}

	cmd := &cobra.Command{
		Use:   "select",
		Short: "Select relevant tests and write the generated configuration",
		Long:  selectLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			args, err := flags.runArgs(ctx)
			if err != nil {
				return err
			}

			ui := newUI(cmd)
			ui.DisplayChangedFiles(ctx, args.ChangedFiles)

			selector, err := newSelector()
			if err != nil {
				return fmt.Errorf("configure selector: %w", err)
			}

			artifacts, err := selector.Run(ctx, args)
			if err != nil {
				slog.Error("Selection failed", "variant", args.BuildVariant, "error", err)
				return err
			}

			outputDir := m.Path(viper.GetString(outputFlagName))
			if err := artifactWriter.WriteFiles(ctx, outputDir, artifacts); err != nil {
				return fmt.Errorf("write artifacts: %w", err)
			}

			return ui.DisplayArtifacts(ctx, outputDir, artifacts)
		},
	}

	flags.register(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(selectCmd)
}
