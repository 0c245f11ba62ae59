// Package cmd implements the CLI commands for stdmirror using Cobra.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/gaurav-prasanna/stdmirror/core/catalog"
	"github.com/gaurav-prasanna/stdmirror/core/config"
	"github.com/gaurav-prasanna/stdmirror/internal/logger"
)

const (
	configName = "stdmirror"
	envPrefix  = "STDMIRROR"
)

// STDMIRROR_LOG_LEVEL maps to log.level.
var envKeyReplacer = strings.NewReplacer(".", "_")

// Populated by PersistentPreRunE before any subcommand runs.
var (
	cfg config.Config
	log logger.Logger = logger.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "stdmirror",
	Short: "Mirror the 1C development standards as Markdown",
	Long: `stdmirror downloads the 1C:Enterprise development standards published at
v8std.ru and stores each one as a Markdown file named std-<id>.md, ready to be
served offline by the standards lookup server.

Usage:
  stdmirror fetch [ids...] [flags]
  stdmirror convert [file|-]
  stdmirror catalog
  stdmirror index`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default: ./stdmirror.yaml or ~/.config/stdmirror/stdmirror.yaml)")
	pf.String("log_level", "", "log level: debug, info, warn, error (default warn)")
	pf.String("output_dir", "", "directory for mirrored files (default content)")
	pf.String("base_url", "", "standard page URL template, %d is the id (default "+catalog.DefaultURLTemplate+")")
	pf.String("catalog", "", "YAML catalog replacing the built-in standards list")
	pf.String("engine", "", "conversion engine: pattern or library (default pattern)")
	pf.String("code_language", "", "language hint on fenced code blocks (default bsl)")

	bindFlag("log.level", pf.Lookup("log_level"))
	bindFlag("output_dir", pf.Lookup("output_dir"))
	bindFlag("base_url", pf.Lookup("base_url"))
	bindFlag("catalog", pf.Lookup("catalog"))
	bindFlag("engine", pf.Lookup("engine"))
	bindFlag("code_language", pf.Lookup("code_language"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(configName)
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", configName))
		}
	}

	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(envKeyReplacer)
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// setup decodes the merged configuration and builds the logger.
func setup(cmd *cobra.Command, _ []string) error {
	if cfgFile, _ := cmd.Flags().GetString("config"); cfgFile != "" && viper.ConfigFileUsed() == "" {
		return fmt.Errorf("config file %s could not be read", cfgFile)
	}

	c, err := config.Load(viper.GetViper())
	if err != nil {
		return err
	}
	cfg = c

	l, err := logger.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	log = l.With(logger.String("command", cmd.Name()))
	log.Debug("configuration loaded",
		logger.String("output_dir", cfg.OutputDir),
		logger.String("base_url", cfg.BaseURL),
		logger.String("engine", cfg.Engine),
		logger.String("format", cfg.Format),
	)
	return nil
}

// loadCatalog returns the configured catalog, or the built-in one.
func loadCatalog() (*catalog.Catalog, error) {
	if cfg.Catalog == "" {
		return catalog.Default(), nil
	}
	c, err := catalog.Load(cfg.Catalog)
	if err != nil {
		return nil, err
	}
	log.Info("using catalog file", logger.String("path", cfg.Catalog))
	return c, nil
}

// bindFlag ties a config key to a flag; an unchanged flag leaves the
// config file, environment and defaults in charge.
func bindFlag(key string, f *pflag.Flag) {
	if err := viper.BindPFlag(key, f); err != nil {
		panic(err)
	}
}

// Execute runs the root command. An interrupt cancels the running command
// between standards.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	_ = log.Sync()
	if err != nil {
		fmt.Fprintln(os.Stderr, "✗", err)
		os.Exit(1)
	}
}
