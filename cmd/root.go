package cmd

import (
	"fmt"
	"github.com/djcass44/go-utils/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"os"
)

var command = &cobra.Command{
	Use:          "debviz",
	Short:        "visualise the dependencies of a debian package",
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logLevel, _ := cmd.Flags().GetInt(flagLogLevel)

		zc := zap.NewProductionConfig()
		zc.Level = zap.NewAtomicLevelAt(zapcore.Level(logLevel * -1))

		_, ctx := logging.NewZap(cmd.Context(), zc)
		cmd.SetContext(ctx)
	},
	RunE: visualize,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "print the version",
	Run: func(cmd *cobra.Command, _ []string) {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), buildVersion)
	},
}

const flagLogLevel = "v"

var buildVersion = "dev"

func init() {
	command.PersistentFlags().Int(flagLogLevel, 0, "log level. Higher is more")
	addVisualizeFlags(command)
	command.AddCommand(versionCmd)
}

// Execute runs the root command. The version is exposed through the
// version subcommand since --version selects the package version.
func Execute(version string) {
	buildVersion = version
	if err := command.Execute(); err != nil {
		os.Exit(1)
	}
}
