package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"doclint/internal/config"
	"doclint/internal/sourceparse"
)

// resetFlags clears command globals left over from a previous Execute.
func resetFlags(t *testing.T) {
	t.Helper()
	verbosity, quiet, rootDir = 0, false, ""
	verifyFormat, verifyLang = "", ""
	tagsFormat = "human"
	initTOML, initForce = false, false
}

// execute runs the root command with args inside root and returns stdout.
func execute(t *testing.T, root string, stdin string, args ...string) (string, error) {
	t.Helper()
	resetFlags(t)

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(append([]string{"--root", root}, args...))
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetIn(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return stdout.String(), err
}

func TestInitCommand(t *testing.T) {
	root := t.TempDir()

	out, err := execute(t, root, "", "init")
	if err != nil {
		t.Fatalf("init failed: %v", err)
	}
	path := config.Path(root, config.FileJSON)
	if !strings.Contains(out, path) {
		t.Errorf("output %q should name %s", out, path)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config not written: %v", err)
	}

	if _, err := execute(t, root, "", "init"); err == nil {
		t.Error("second init without --force should fail")
	}
	if _, err := execute(t, root, "", "init", "--force", "--toml"); err != nil {
		t.Fatalf("init --force --toml failed: %v", err)
	}
	if _, err := os.Stat(config.Path(root, config.FileTOML)); err != nil {
		t.Errorf("toml config not written: %v", err)
	}
}

func TestTagsCommand(t *testing.T) {
	root := t.TempDir()

	out, err := execute(t, root, "", "tags")
	if err != nil {
		t.Fatalf("tags failed: %v", err)
	}
	for _, want := range []string{"(4)", "@example", "@param", "@return", "@returns"} {
		if !strings.Contains(out, want) {
			t.Errorf("tags output missing %q:\n%s", want, out)
		}
	}
}

func TestTagsCommand_RespectsConfig(t *testing.T) {
	root := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.Tags.Enabled = []string{"param"}
	if _, err := cfg.Save(root, config.FileJSON); err != nil {
		t.Fatalf("save: %v", err)
	}

	out, err := execute(t, root, "", "tags", "--format", "json")
	if err != nil {
		t.Fatalf("tags failed: %v", err)
	}
	if !strings.Contains(out, `"param"`) || strings.Contains(out, `"example"`) {
		t.Errorf("expected only param enabled, got:\n%s", out)
	}
}

func TestInvalidConfigIsReported(t *testing.T) {
	root := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.Output.Format = "xml"
	if _, err := cfg.Save(root, config.FileJSON); err != nil {
		t.Fatalf("save: %v", err)
	}

	_, err := execute(t, root, "", "tags")
	if err == nil {
		t.Fatal("expected config error")
	}
	if !strings.Contains(err.Error(), "CONFIG_INVALID") {
		t.Errorf("error should carry CONFIG_INVALID, got: %v", err)
	}
}

func TestReadSource(t *testing.T) {
	got, err := readSource(strings.NewReader("/** @param {a} b c */"), "-")
	if err != nil {
		t.Fatalf("stdin: %v", err)
	}
	if got != "/** @param {a} b c */" {
		t.Errorf("stdin content = %q", got)
	}

	path := filepath.Join(t.TempDir(), "a.js")
	if err := os.WriteFile(path, []byte("var a;"), 0644); err != nil {
		t.Fatal(err)
	}
	got, err = readSource(nil, path)
	if err != nil || got != "var a;" {
		t.Errorf("file content = %q, err = %v", got, err)
	}

	if _, err := readSource(nil, filepath.Join(t.TempDir(), "missing.js")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestResolveLanguage(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Language = "java"

	tests := []struct {
		name    string
		flag    string
		path    string
		want    sourceparse.Language
		wantErr bool
	}{
		{"flag wins", "ts", "a.js", sourceparse.LangTypeScript, false},
		{"extension", "", "a.tsx", sourceparse.LangTSX, false},
		{"stdin uses config", "", "-", sourceparse.LangJava, false},
		{"unknown extension uses config", "", "README.md", sourceparse.LangJava, false},
		{"bad flag", "cobol", "a.js", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags(t)
			verifyLang = tt.flag
			got, err := resolveLanguage(cfg, tt.path)
			if tt.wantErr {
				if !errors.Is(err, sourceparse.ErrUnsupportedLanguage) {
					t.Errorf("expected ErrUnsupportedLanguage, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("resolveLanguage = %q, want %q", got, tt.want)
			}
		})
	}
}
