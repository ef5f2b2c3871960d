// Package cmd provides the root command and CLI setup for selectest.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"selectest.dev/pkg/selectest/internal/adapter"
	"selectest.dev/pkg/selectest/internal/controller"
)

// changedFileDetector overrides git detection when set.
var changedFileDetector adapter.ChangedFileDetector
var artifactWriter adapter.ArtifactWriter

// newSelector builds the selector from the resolved configuration.
// Commands call it after flags are parsed.
var newSelector = buildSelector

// newUI picks the output adapter for a command.
var newUI = func(cmd *cobra.Command) controller.UI {
	return controller.NewUI(cmd, controller.IsTTY(os.Stdout))
}

var (
	outputDirFlag           string
	verboseFlag             bool
	evergreenFileFlag       string
	selectedTestsConfigFlag string
	repoRootFlag            string
)

func init() {
	artifactWriter = adapter.NewLocalArtifactWriter()
}

const rootLongDescription = `Selectest picks the CI tests and tasks relevant to a code change.

It asks the relevance service which test files and tasks have historically
failed together with the changed files, resolves them against the project
configuration and writes generated resmoke suites plus a task manifest
that a CI "generate tasks" step can consume.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "selectest",
		Short:         "Select the tests and tasks relevant to a change",
		Long:          rootLongDescription,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVarP(
			&outputDirFlag, outputFlagName, "o",
			viper.GetString(outputFlagName),
			"directory the generated suites and task manifest are written to",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(outputFlagName), outputFlagName)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)

	cmd.PersistentFlags().StringVar(&evergreenFileFlag, evergreenFileFlagName, viper.GetString(evergreenFileKey), "project configuration file")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(evergreenFileFlagName), evergreenFileKey)

	cmd.PersistentFlags().StringVar(&selectedTestsConfigFlag, selectedTestsConfigFlagName, viper.GetString(selectedTestsConfigKey), "relevance service configuration file")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(selectedTestsConfigFlagName), selectedTestsConfigKey)

	cmd.PersistentFlags().StringVar(&repoRootFlag, repoRootFlagName, viper.GetString(repoRootKey), "repository root used to resolve suites and changed files")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(repoRootFlagName), repoRootKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
