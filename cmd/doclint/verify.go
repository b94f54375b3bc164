package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"doclint/internal/config"
	"doclint/internal/formatters"
	"doclint/internal/sourceparse"
	"doclint/internal/verifier"
)

var (
	verifyFormat string
	verifyLang   string
)

// errVerifyFailed makes the process exit non-zero after the report was printed.
var errVerifyFailed = errors.New("verification reported errors")

var verifyCmd = &cobra.Command{
	Use:   "verify <file|->",
	Short: "Render the doclets of a source file",
	Long: `Parse a source file, extract its documentation comments and render
every @tag that has a formatter.

The language is detected from the file extension unless --lang is given;
input read from stdin ("-") uses the configured default language.

Examples:
  doclint verify src/user.js
  doclint verify --format=json lib/api.ts
  cat Widget.java | doclint verify --lang=java -`,
	Args: cobra.ExactArgs(1),
	RunE: runVerify,
}

func init() {
	verifyCmd.Flags().StringVar(&verifyFormat, "format", "", "Output format (human, json, yaml); default from config")
	verifyCmd.Flags().StringVar(&verifyLang, "lang", "", "Source language (javascript, typescript, tsx, java)")
	rootCmd.AddCommand(verifyCmd)
}

// VerifyResponseCLI is the structured verify output
type VerifyResponseCLI struct {
	RunID      string             `json:"runId" yaml:"runId"`
	File       string             `json:"file" yaml:"file"`
	Language   string             `json:"language" yaml:"language"`
	Messages   []verifier.Message `json:"messages" yaml:"messages"`
	Output     string             `json:"output" yaml:"output"`
	DurationMs int64              `json:"durationMs" yaml:"durationMs"`
}

func runVerify(cmd *cobra.Command, args []string) error {
	start := time.Now()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, closeLogs := newCLILogger(cmd, cfg)
	defer closeLogs()

	path := args[0]
	source, err := readSource(cmd.InOrStdin(), path)
	if err != nil {
		return err
	}

	lang, err := resolveLanguage(cfg, path)
	if err != nil {
		return err
	}

	format := OutputFormat(cfg.Output.Format)
	if verifyFormat != "" {
		format = OutputFormat(verifyFormat)
	}

	enabled, err := cfg.EnabledTags()
	if err != nil {
		return err
	}
	registry := formatters.NewDefaultRegistry(string(lang)).Restrict(enabled)

	runID := uuid.New().String()
	v := verifier.New(verifier.Options{
		Language: lang,
		Registry: registry,
		Logger:   logger.With("run", runID, "file", path),
	})
	report := v.Run(context.Background(), source)

	resp := &VerifyResponseCLI{
		RunID:      runID,
		File:       path,
		Language:   string(lang),
		Messages:   report.Messages,
		Output:     report.String(),
		DurationMs: time.Since(start).Milliseconds(),
	}
	if resp.Messages == nil {
		resp.Messages = []verifier.Message{}
	}

	output, err := FormatResponse(resp, format)
	if err != nil {
		return err
	}
	if output != "" {
		fmt.Fprintln(cmd.OutOrStdout(), output)
	}

	logger.Info("Verify completed",
		"file", path,
		"language", string(lang),
		"messages", len(report.Messages),
		"duration", time.Since(start),
	)

	if report.HasError() {
		return errVerifyFailed
	}
	return nil
}

// readSource reads a file, or stdin when path is "-".
func readSource(stdin io.Reader, path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), nil
}

// resolveLanguage applies the precedence --lang > file extension > config language.
func resolveLanguage(cfg *config.Config, path string) (sourceparse.Language, error) {
	if verifyLang != "" {
		return sourceparse.ParseLanguage(verifyLang)
	}
	if path != "-" {
		if lang, ok := sourceparse.LanguageFromExtension(filepath.Ext(path)); ok {
			return lang, nil
		}
	}
	return sourceparse.ParseLanguage(cfg.Language)
}
