package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"doclint/internal/config"
)

var (
	initTOML  bool
	initForce bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default .doclint configuration",
	Long: `Write .doclint/config.json (or config.toml with --toml) holding the
default settings. An existing configuration is kept unless --force is given.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVar(&initTOML, "toml", false, "Write config.toml instead of config.json")
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing configuration")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	root, err := projectRoot()
	if err != nil {
		return err
	}

	if config.Exists(root) && !initForce {
		return fmt.Errorf("configuration already exists in %s (use --force to overwrite)", config.Dir(root))
	}

	format := config.FileJSON
	if initTOML {
		format = config.FileTOML
	}

	path, err := config.DefaultConfig().Save(root, format)
	if err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}
