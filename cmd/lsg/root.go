package main

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/lsgraph/internal/logging"
)

const (
	envPrefix      = "lsg"
	configFilename = "lsg"
)

// newRootCommand wires every subcommand under a root that loads the
// configuration and the logger before any of them runs.
func newRootCommand() *cobra.Command {
	v := viper.New()
	root := &cobra.Command{
		Use:           "lsg",
		Short:         "Store and analyze large directed graphs",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := loadConfig(v, cmd); err != nil {
				return err
			}
			var paths []string
			if f := v.GetString("log-file"); f != "" {
				paths = []string{f}
			}
			ctx, err := logging.Init(cmd.Context(),
				logging.WithLogLevel(v.GetString("log-level")),
				logging.WithLogFormat(v.GetString("log-format")),
				logging.WithOutputPaths(paths))
			if err != nil {
				return err
			}
			cmd.SetContext(ctx)
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.String("config", "", "Path to a YAML configuration file (default ./lsg.yaml if present)")
	pf.String("log-level", "info", "Log level: debug, info, warn, error")
	pf.String("log-format", logging.LogFormatConsole, "Log format: json or console")
	pf.String("log-file", "", "Write logs to this file instead of stderr")

	root.AddCommand(
		newBuildCommand(),
		newStatsCommand(),
		newDegreesCommand(),
		newDumpCommand(),
		newExtractSCCCommand(),
		newWCCCommand(),
		newAugmentCommand(),
		newTransposeCommand(),
		newNormalizeCommand(),
		newSymmetrizeCommand(),
		newIDFCommand(),
		newInvariantCommand(),
		newPageRankCommand(),
		newRelatedCommand(),
		newPathCommand(),
		newText2VecCommand(),
	)

	return root
}

// loadConfig layers the optional YAML file, LSG_* environment variables and
// command-line flags into v, flags winning.
func loadConfig(v *viper.Viper, cmd *cobra.Command) error {
	v.SetConfigType("yaml")
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configFilename)
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return err
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return bindFlags(v, cmd.PersistentFlags(), cmd.Flags())
}

func bindFlags(v *viper.Viper, sets ...*pflag.FlagSet) error {
	for _, fs := range sets {
		if err := v.BindPFlags(fs); err != nil {
			return err
		}
	}

	return nil
}
