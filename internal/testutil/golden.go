package testutil

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"doclint/internal/sourceparse"
)

var (
	// updateGolden controls whether golden files should be updated.
	// Use: go test ./... -run TestGolden -update
	updateGolden = flag.Bool("update", false, "update golden files")

	// goldenLang filters which fixture languages to test.
	// Use: go test ./... -run TestGolden -goldenLang=js,java
	goldenLang = flag.String("goldenLang", "", "filter languages (comma-separated: js,ts,tsx,java)")
)

// ShouldUpdate returns true if golden files should be updated.
func ShouldUpdate() bool {
	return *updateGolden
}

// ShouldTestLang returns true if the given language should be tested.
func ShouldTestLang(lang sourceparse.Language) bool {
	return langSelected(*goldenLang, lang)
}

// langSelected accepts aliases ("js", "ts") as well as canonical names.
func langSelected(filter string, lang sourceparse.Language) bool {
	if filter == "" {
		return true
	}
	for _, l := range strings.Split(filter, ",") {
		parsed, err := sourceparse.ParseLanguage(strings.TrimSpace(l))
		if err == nil && parsed == lang {
			return true
		}
	}
	return false
}

// CompareGolden compares got against the golden file, failing with a diff on mismatch.
// If -update flag is set, updates the golden file instead of comparing.
func CompareGolden(t *testing.T, goldenPath string, got string) {
	t.Helper()

	if !strings.HasSuffix(got, "\n") {
		got += "\n"
	}

	if *updateGolden {
		UpdateGolden(t, goldenPath, got)
		t.Logf("Updated golden: %s", goldenPath)
		return
	}

	expected, err := os.ReadFile(goldenPath)
	if err != nil {
		if os.IsNotExist(err) {
			t.Fatalf("Golden file missing: %s\n\nGot:\n%s\n\nRun with -update to create:\n  go test ./... -run %s -update",
				goldenPath, got, t.Name())
		}
		t.Fatalf("Failed to read golden file: %v", err)
	}

	if !bytes.Equal([]byte(got), expected) {
		diff := unifiedDiff(string(expected), got, goldenPath)
		t.Fatalf("Golden mismatch for %s:\n%s\n\nRun with -update to refresh:\n  go test ./... -run %s -update",
			filepath.Base(goldenPath), diff, t.Name())
	}
}

// UpdateGolden writes data to the golden file.
func UpdateGolden(t *testing.T, goldenPath string, data string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(goldenPath), 0o755); err != nil {
		t.Fatalf("Failed to create golden directory: %v", err)
	}
	if err := os.WriteFile(goldenPath, []byte(data), 0o644); err != nil {
		t.Fatalf("Failed to write golden file: %v", err)
	}
}

// unifiedDiff produces a line-by-line diff with up to three lines of leading context.
// Trailing whitespace is made visible since doclet output keeps it.
func unifiedDiff(expected, got, path string) string {
	var buf bytes.Buffer

	expectedLines := strings.Split(expected, "\n")
	gotLines := strings.Split(got, "\n")

	fmt.Fprintf(&buf, "--- %s (expected)\n", path)
	fmt.Fprintf(&buf, "+++ %s (got)\n", path)

	n := max(len(expectedLines), len(gotLines))
	lastContext := -1
	for i := 0; i < n; i++ {
		var expLine, gotLine string
		expOK, gotOK := i < len(expectedLines), i < len(gotLines)
		if expOK {
			expLine = expectedLines[i]
		}
		if gotOK {
			gotLine = gotLines[i]
		}
		if expOK && gotOK && expLine == gotLine {
			continue
		}

		for j := max(lastContext+1, i-3); j < i; j++ {
			fmt.Fprintf(&buf, " %s\n", visible(expectedLines[j]))
		}
		if expOK {
			fmt.Fprintf(&buf, "-%s\n", visible(expLine))
		}
		if gotOK {
			fmt.Fprintf(&buf, "+%s\n", visible(gotLine))
		}
		lastContext = i
	}

	return buf.String()
}

func visible(line string) string {
	trimmed := strings.TrimRight(line, " \t")
	if len(trimmed) == len(line) {
		return line
	}
	return trimmed + strings.Repeat("·", len(line)-len(trimmed))
}
