package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"doclint/internal/config"
	lerrors "doclint/internal/errors"
	"doclint/internal/slogutil"
	"doclint/internal/version"
)

var (
	// verbosity counts -v flags
	verbosity int
	quiet     bool
	// rootDir is where .doclint/ is looked up (default: working directory)
	rootDir string
)

var rootCmd = &cobra.Command{
	Use:   "doclint",
	Short: "doclint - documentation comment linter",
	Long: `doclint parses source files with tree-sitter, extracts documentation
comments (/** ... */) and renders their @tags (@param, @example, @returns)
as table fragments.`,
	Version:       version.Info(),
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.SetVersionTemplate(version.Full() + "\n")
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase log verbosity (-v info, -vv debug)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all logs")
	rootCmd.PersistentFlags().StringVar(&rootDir, "root", "", "Project root holding .doclint/ (default: current directory)")
}

// projectRoot resolves --root, falling back to the working directory.
func projectRoot() (string, error) {
	if rootDir != "" {
		return rootDir, nil
	}
	return os.Getwd()
}

// loadConfig loads and validates the project configuration.
func loadConfig() (*config.Config, error) {
	root, err := projectRoot()
	if err != nil {
		return nil, err
	}

	cfg, err := config.LoadConfig(root)
	if err != nil {
		return nil, lerrors.New(lerrors.ConfigInvalid, "failed to load config", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, lerrors.New(lerrors.ConfigInvalid, "invalid config", err)
	}
	return cfg, nil
}

// newCLILogger builds the stderr logger. Flags override logging.level.
func newCLILogger(cmd *cobra.Command, cfg *config.Config) (*slog.Logger, func()) {
	factory := slogutil.NewLoggerFactory(cfg, cmd.ErrOrStderr())
	if verbosity > 0 || quiet {
		factory.SetCLILevel(slogutil.LevelFromVerbosity(verbosity, quiet))
	}
	logger := factory.CLILogger()
	return logger, func() {
		if err := factory.Close(); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Warning: failed to close log file: %v\n", err)
		}
	}
}
