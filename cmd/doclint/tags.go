package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"doclint/internal/formatters"
)

var tagsFormat string

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "List the enabled tag formatters",
	Args:  cobra.NoArgs,
	RunE:  runTags,
}

func init() {
	tagsCmd.Flags().StringVar(&tagsFormat, "format", "human", "Output format (human, json, yaml)")
	rootCmd.AddCommand(tagsCmd)
}

// TagsResponseCLI lists enabled formatters
type TagsResponseCLI struct {
	Tags []string `json:"tags" yaml:"tags"`
}

func runTags(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	enabled, err := cfg.EnabledTags()
	if err != nil {
		return err
	}
	registry := formatters.NewDefaultRegistry(cfg.Language).Restrict(enabled)

	resp := &TagsResponseCLI{Tags: []string{}}
	for _, t := range registry.Tags() {
		resp.Tags = append(resp.Tags, string(t))
	}

	output, err := FormatResponse(resp, OutputFormat(tagsFormat))
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), output)
	return nil
}
