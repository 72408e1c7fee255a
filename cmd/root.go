package cmd

import (
	"os"

	"github.com/djcass44/go-utils/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var command = &cobra.Command{
	Use:          "lpmadison",
	Short:        "query the binary publishing history of a Launchpad archive",
	SilenceUsage: true,
	Args:         cobra.NoArgs,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logLevel, _ := cmd.Flags().GetInt(flagLogLevel)

		zc := zap.NewProductionConfig()
		zc.Level = zap.NewAtomicLevelAt(zapcore.Level(logLevel * -1))

		_, ctx := logging.NewZap(cmd.Context(), zc)
		cmd.SetContext(ctx)
	},
	RunE: query,
}

const (
	flagLogLevel     = "log-level"
	flagConfig       = "config"
	flagInstance     = "instance"
	flagAPIVersion   = "api-version"
	flagDistribution = "distribution"
)

// buildVersion is kept out of cobra.Command.Version
// as the query command already owns the --version flag.
var buildVersion string

func init() {
	command.PersistentFlags().Int(flagLogLevel, 0, "log level. Higher is more")
	command.PersistentFlags().String(flagConfig, "", "path to a configuration file")
	command.PersistentFlags().String(flagInstance, "", "launchpad instance (production, staging, qastaging) or service root url")
	command.PersistentFlags().String(flagAPIVersion, "", "launchpad web service version (beta, 1.0, devel)")
	command.PersistentFlags().String(flagDistribution, "", "distribution to search (defaults to ubuntu)")

	_ = command.MarkPersistentFlagFilename(flagConfig, ".yaml", ".yml", ".json")
	command.AddCommand(versionCmd)
}

func Execute(version string) {
	buildVersion = version
	if err := command.Execute(); err != nil {
		os.Exit(1)
	}
}
