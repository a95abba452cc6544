// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package cmd provides the command-line interface for the evidencija CLI.
// It implements the update and query clients for the device assignment API
// plus token management commands, using the Cobra CLI framework.
package cmd

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"evidencija/cli/internal/config"
	"evidencija/cli/internal/logging"

	"github.com/joho/godotenv"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	showVersion bool
	configPath  string
	verbose     bool
	baseURL     string
	timeout     time.Duration

	// cfg and logger are populated by the root PersistentPreRunE.
	cfg    = config.Default()
	logger = zap.NewNop()
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:           "evidencija",
	Short:         "Command-line client for the device assignment records API",
	Long:          `evidencija updates and queries device assignment records through the evidencija REST API.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if showVersion {
			printVersion(cmd.OutOrStdout())
			return nil
		}
		return cmd.Help()
	},
}

// reportedError marks an error whose details were already shown to the user.
type reportedError struct{ err error }

func (e reportedError) Error() string { return e.err.Error() }
func (e reportedError) Unwrap() error { return e.err }

// Execute runs the CLI application and exits 1 on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		var reported reportedError
		if !stderrors.As(err, &reported) {
			pterm.Error.WithWriter(os.Stderr).Println(logging.PresentError(rootCmd.Name(), err))
		}
		_ = logger.Sync()
		os.Exit(1)
	}
	_ = logger.Sync()
}

// setup loads .env, the config file, environment and flag overrides, then
// builds the diagnostic logger.
func setup(cmd *cobra.Command) error {
	if err := godotenv.Load(); err != nil && !stderrors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}

	var err error
	if configPath != "" {
		cfg, err = config.LoadFile(configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return err
	}
	if err := cfg.ApplyEnv(getenv); err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("base-url") {
		cfg.BaseURL = baseURL
	}
	if flags.Changed("timeout") {
		cfg.Timeout = timeout
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger = logging.NewLogger(os.Stderr, cfg.LogLevel, verbose)
	logger.Debug("configuration loaded",
		zap.String("update_url", cfg.UpdateURL()),
		zap.String("query_url", cfg.QueryURL()),
		zap.Duration("timeout", cfg.Timeout),
	)
	return nil
}

func init() {
	rootCmd.Flags().BoolVar(&showVersion, "version", false, "Show CLI version information")

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "Path to config file (default $XDG_CONFIG_HOME/evidencija/config.yml)")
	pf.BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging to stderr")
	pf.StringVar(&baseURL, "base-url", "", "API base URL")
	pf.DurationVar(&timeout, "timeout", 0, "Request timeout, e.g. 30s (0 means no timeout)")
}
