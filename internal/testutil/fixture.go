// Package testutil provides testing utilities for golden tests.
package testutil

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"doclint/internal/sourceparse"
)

// GoldenExt is appended to a fixture file name to form its golden file name.
const GoldenExt = ".golden"

// Fixture is one source file under a testdata directory.
type Fixture struct {
	// Name is the file name, e.g. "users.js".
	Name string

	// Language is detected from the file extension.
	Language sourceparse.Language

	// SourcePath is the path to the source file.
	SourcePath string

	// GoldenPath is the path to the expected output, SourcePath + ".golden".
	GoldenPath string
}

// Source reads the fixture source, failing the test on error.
func (f *Fixture) Source(t *testing.T) string {
	t.Helper()

	data, err := os.ReadFile(f.SourcePath)
	if err != nil {
		t.Fatalf("Failed to read fixture %s: %v", f.SourcePath, err)
	}
	return string(data)
}

// LoadFixtures returns every file in dir whose extension maps to a supported
// language, sorted by name. Golden files and unknown extensions are skipped.
func LoadFixtures(t *testing.T, dir string) []*Fixture {
	t.Helper()

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("Failed to read fixture directory %s: %v", dir, err)
	}

	var fixtures []*Fixture
	for _, e := range entries {
		if e.IsDir() || strings.HasSuffix(e.Name(), GoldenExt) {
			continue
		}
		lang, ok := sourceparse.LanguageFromExtension(filepath.Ext(e.Name()))
		if !ok {
			continue
		}
		path := filepath.Join(dir, e.Name())
		fixtures = append(fixtures, &Fixture{
			Name:       e.Name(),
			Language:   lang,
			SourcePath: path,
			GoldenPath: path + GoldenExt,
		})
	}

	sort.Slice(fixtures, func(i, j int) bool { return fixtures[i].Name < fixtures[j].Name })
	return fixtures
}

// ForEachFixture runs fn as a subtest for each fixture in dir.
// Respects the -goldenLang flag.
func ForEachFixture(t *testing.T, dir string, fn func(t *testing.T, fixture *Fixture)) {
	t.Helper()

	fixtures := LoadFixtures(t, dir)
	if len(fixtures) == 0 {
		t.Skip("No fixtures available")
	}

	for _, f := range fixtures {
		if !ShouldTestLang(f.Language) {
			continue
		}
		t.Run(f.Name, func(t *testing.T) {
			fn(t, f)
		})
	}
}
