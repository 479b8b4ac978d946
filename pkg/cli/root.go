package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/pkg/errors"
	"github.com/replicatedhq/treeship/pkg/constants"
	"github.com/replicatedhq/treeship/pkg/flatdir"
	"github.com/replicatedhq/treeship/pkg/version"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Execute runs cmd and exits non-zero if it fails before a Treeship could report the error.
// This is called by main.main().
func Execute(cmd *cobra.Command) {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// withCommonFlags adds the flags both tools share and wires config loading into cmd
func withCommonFlags(cmd *cobra.Command, v *viper.Viper) *cobra.Command {
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	cmd.Args = cobra.NoArgs

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		version.Init()
		_ = v.BindPFlags(cmd.Flags())
		_ = v.BindPFlags(cmd.PersistentFlags())
		return initConfig(v, v.GetString("config"))
	}

	cmd.PersistentFlags().String("config", "", "config file (yaml, json or toml) to read flag values from")
	cmd.PersistentFlags().String("log-level", "off", "Log level: debug, info, warn, error or off")
	cmd.PersistentFlags().String("log-format", "logfmt", "Log format: logfmt or json")
	cmd.PersistentFlags().Bool("no-color", false, "Disable colored output")
	cmd.PersistentFlags().Bool("force-color", false, "Color output even when stdout is not a terminal")
	cmd.PersistentFlags().String(constants.DebugLogFlag, "", "Also write debug logs to this file, whatever the log level")
	cmd.PersistentFlags().Bool(constants.NoOSExitFlag, false, "Return instead of exiting the process on failure")
	_ = cmd.PersistentFlags().MarkHidden("force-color")
	_ = cmd.PersistentFlags().MarkHidden(constants.NoOSExitFlag)

	defaults := flatdir.DefaultPolicy()
	cmd.Flags().String(constants.ManifestFlag, "", "Path to the manifest json. Defaults to the newest saved manifest in the source dir")
	cmd.Flags().String(constants.SourceDirFlag, constants.DefaultSourceDir, "Flat directory holding the downloaded files")
	cmd.Flags().StringSlice(constants.ExcludePrefixFlag, defaults.Prefixes, "Leave source files starting with this prefix out of the comparison. The first prefix is also used to find the manifest")
	cmd.Flags().StringSlice(constants.ExcludeNameFlag, defaults.Names, "Leave source files with exactly this name out of the comparison")

	return cmd
}

// initConfig reads in config file and ENV variables if set.
func initConfig(v *viper.Viper, cfgFile string) error {
	v.SetEnvPrefix("TREESHIP")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv() // read in environment variables that match

	if cfgFile == "" {
		return nil
	}
	v.SetConfigFile(cfgFile)
	if err := v.ReadInConfig(); err != nil {
		return errors.Wrapf(err, "read config file %s", cfgFile)
	}
	return nil
}

// signalContext is cancelled on SIGINT or SIGTERM so an interrupted walk stops between nodes
func signalContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())
	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case <-signalChan:
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(signalChan)
	}()
	return ctx, cancel
}
