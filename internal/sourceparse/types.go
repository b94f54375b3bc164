// Package sourceparse extracts comments from source files via tree-sitter.
package sourceparse

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNoCGO is returned when comment extraction is unavailable due to missing CGO.
	ErrNoCGO = errors.New("comment extraction requires CGO (tree-sitter)")

	// ErrUnsupportedLanguage is wrapped by every unknown-language failure.
	ErrUnsupportedLanguage = errors.New("unsupported language")
)

// Language represents a supported programming language.
type Language string

const (
	LangJavaScript Language = "javascript"
	LangTypeScript Language = "typescript"
	LangTSX        Language = "tsx"
	LangJava       Language = "java"
)

// Languages returns every supported language in a stable order.
func Languages() []Language {
	return []Language{LangJavaScript, LangTypeScript, LangTSX, LangJava}
}

// ParseLanguage converts a user supplied name ("js", "TypeScript", ...) to a Language.
func ParseLanguage(s string) (Language, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "javascript", "js", "jsx", "node":
		return LangJavaScript, nil
	case "typescript", "ts":
		return LangTypeScript, nil
	case "tsx":
		return LangTSX, nil
	case "java":
		return LangJava, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedLanguage, s)
	}
}

// LanguageFromExtension returns the Language for a file extension.
func LanguageFromExtension(ext string) (Language, bool) {
	switch strings.ToLower(ext) {
	case ".js", ".mjs", ".cjs":
		return LangJavaScript, true
	case ".jsx":
		return LangJavaScript, true // JSX uses JS parser
	case ".ts", ".mts", ".cts":
		return LangTypeScript, true
	case ".tsx":
		return LangTSX, true
	case ".java":
		return LangJava, true
	default:
		return "", false
	}
}

// CommentKind classifies a comment by its delimiters.
type CommentKind string

const (
	// KindBlock is a /* ... */ comment.
	KindBlock CommentKind = "block"
	// KindLine is a // comment.
	KindLine CommentKind = "line"
)

// Comment is a single comment found in a source file.
type Comment struct {
	Kind CommentKind `json:"kind"`

	// Text is the comment body without its delimiters. For "/** a */" it is "* a ".
	Text string `json:"text"`

	// Line and Column are 1-indexed.
	Line   int `json:"line"`
	Column int `json:"column"`
}

// SyntaxError reports that the parser could not produce a clean tree.
type SyntaxError struct {
	Line   int
	Column int
	Near   string
}

func (e *SyntaxError) Error() string {
	if e.Near != "" {
		return fmt.Sprintf("syntax error at line %d, column %d near %q", e.Line, e.Column, e.Near)
	}
	return fmt.Sprintf("syntax error at line %d, column %d", e.Line, e.Column)
}

// classifyComment splits raw comment source into its kind and body.
// Unknown shapes (hashbangs, HTML comments) report ok=false.
func classifyComment(raw string) (CommentKind, string, bool) {
	switch {
	case strings.HasPrefix(raw, "/*"):
		body := strings.TrimPrefix(raw, "/*")
		body = strings.TrimSuffix(body, "*/")
		return KindBlock, body, true
	case strings.HasPrefix(raw, "//"):
		return KindLine, strings.TrimPrefix(raw, "//"), true
	default:
		return "", "", false
	}
}
