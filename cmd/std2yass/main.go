// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the std2yass CLI, which converts SOMA
// figure files into the layered grid format read by the yass solver.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/pdiddy/std2yass/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

const (
	// configName is the config file base name and the directory name under
	// the user config dir.
	configName = "std2yass"
	envPrefix  = "STD2YASS"
)

// newRootCmd builds the command tree. The root command converts a single
// SOMA figure and is the parent of inspect and version. Each tree owns its
// own viper instance.
func newRootCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "std2yass [infile [outfile]]",
		Short: "Convert SOMA figure files to yass layer format",
		Long: `std2yass reads one figure in the slash-delimited SOMA text format and
writes it as blank-line-separated layers of '.' and 'o' cells, the format
read by the yass solver.

Lines that are blank, contain ';', or contain "/SOMA" are ignored. Input
defaults to stdin and output to stdout; "-" selects them explicitly.

Settings come from flags, then STD2YASS_* environment variables, then the
config file.`,
		Args:         cobra.MaximumNArgs(2),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := loadConfig(cmd, v); err != nil {
				return err
			}
			setupLogging(cmd, v)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, args, conversionConfig(v))
		},
	}

	flags := cmd.PersistentFlags()
	flags.String("config", "", "config file (default: ./std2yass.yaml or <user config dir>/std2yass/std2yass.yaml)")
	flags.String("empty-symbols", types.DefaultEmptySymbols, "input characters that mark an empty cell")
	flags.Bool("verbose", false, "log debug details to stderr")
	cmd.Flags().Bool("header", false, `prepend a "<width> <depth> <height> * -" line`)

	mustBind(v, "empty_symbols", flags.Lookup("empty-symbols"))
	mustBind(v, "verbose", flags.Lookup("verbose"))
	mustBind(v, "header", cmd.Flags().Lookup("header"))

	cmd.AddCommand(newInspectCmd(v))
	cmd.AddCommand(newVersionCmd())
	return cmd
}

// loadConfig reads the --config file, or std2yass.yaml from the working
// directory or the user config dir. A missing file is only an error when it
// was named explicitly.
func loadConfig(cmd *cobra.Command, v *viper.Viper) error {
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, configName))
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	var notFound viper.ConfigFileNotFoundError
	switch err := v.ReadInConfig(); {
	case err == nil:
		fmt.Fprintln(cmd.ErrOrStderr(), "Using config file:", v.ConfigFileUsed())
	case errors.As(err, &notFound):
	default:
		return fmt.Errorf("reading config: %w", err)
	}
	return nil
}

// setupLogging installs the default slog logger. Debug records are only
// emitted with --verbose.
func setupLogging(cmd *cobra.Command, v *viper.Viper) {
	level := slog.LevelInfo
	if v.GetBool("verbose") {
		level = slog.LevelDebug
	}
	h := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(h))
}

// conversionConfig resolves conversion settings. Precedence is flag, then
// environment, then config file, then flag default.
func conversionConfig(v *viper.Viper) types.ConversionConfig {
	return types.ConversionConfig{
		EmptySymbols: v.GetString("empty_symbols"),
		Header:       v.GetBool("header"),
	}
}

func mustBind(v *viper.Viper, key string, flag *pflag.Flag) {
	if err := v.BindPFlag(key, flag); err != nil {
		panic(fmt.Sprintf("binding flag %s: %v", key, err))
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
