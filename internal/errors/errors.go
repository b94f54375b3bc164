package errors

import (
	"fmt"
)

// ErrorCode represents stable error codes for all failure modes
type ErrorCode string

const (
	// ParseError indicates the parser rejected the source text
	ParseError ErrorCode = "PARSE_ERROR"
	// UnsupportedLanguage indicates no grammar exists for the requested language
	UnsupportedLanguage ErrorCode = "UNSUPPORTED_LANGUAGE"
	// ParserUnavailable indicates the binary was built without tree-sitter
	ParserUnavailable ErrorCode = "PARSER_UNAVAILABLE"
	// ConfigInvalid indicates the configuration failed validation
	ConfigInvalid ErrorCode = "CONFIG_INVALID"
	// InternalError indicates unexpected error
	InternalError ErrorCode = "INTERNAL_ERROR"
)

// FixActionType represents the type of fix action
type FixActionType string

const (
	// RunCommand suggests running a command
	RunCommand FixActionType = "run-command"
	// OpenDocs suggests opening documentation
	OpenDocs FixActionType = "open-docs"
)

// FixAction represents a suggested fix for an error
type FixAction struct {
	Type        FixActionType `json:"type" yaml:"type"`
	Command     string        `json:"command,omitempty" yaml:"command,omitempty"`
	Safe        bool          `json:"safe,omitempty" yaml:"safe,omitempty"`
	Description string        `json:"description,omitempty" yaml:"description,omitempty"`
	URL         string        `json:"url,omitempty" yaml:"url,omitempty"`
}

// LintError represents a doclint error with code, message, and suggestions
type LintError struct {
	Code           ErrorCode   `json:"code" yaml:"code"`
	Message        string      `json:"message" yaml:"message"`
	Details        interface{} `json:"details,omitempty" yaml:"details,omitempty"`
	SuggestedFixes []FixAction `json:"suggestedFixes,omitempty" yaml:"suggestedFixes,omitempty"`
	cause          error       // Underlying error (not exported to JSON)
}

// NewLintError creates a new LintError
func NewLintError(code ErrorCode, message string, cause error, suggestedFixes []FixAction) *LintError {
	return &LintError{
		Code:           code,
		Message:        message,
		cause:          cause,
		SuggestedFixes: suggestedFixes,
	}
}

// New creates a LintError carrying the predefined fixes for its code
func New(code ErrorCode, message string, cause error) *LintError {
	return NewLintError(code, message, cause, GetSuggestedFixes(code))
}

// Error implements the error interface
func (e *LintError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e *LintError) Unwrap() error {
	return e.cause
}

// WithDetails adds details to the error
func (e *LintError) WithDetails(details interface{}) *LintError {
	e.Details = details
	return e
}

// ErrorActions maps error codes to suggested fix actions
var ErrorActions = map[ErrorCode][]FixAction{
	ParserUnavailable: {
		{
			Type:        RunCommand,
			Command:     "CGO_ENABLED=1 go build ./cmd/doclint",
			Safe:        true,
			Description: "Rebuild with cgo so tree-sitter grammars are linked in",
		},
	},
	UnsupportedLanguage: {
		{
			Type:        RunCommand,
			Command:     "doclint verify --lang=javascript ${file}",
			Safe:        true,
			Description: "Force a supported language",
		},
	},
	ConfigInvalid: {
		{
			Type:        RunCommand,
			Command:     "doclint init --force",
			Safe:        false,
			Description: "Rewrite the configuration with defaults",
		},
	},
}

// GetSuggestedFixes returns suggested fixes for an error code
func GetSuggestedFixes(code ErrorCode) []FixAction {
	if fixes, ok := ErrorActions[code]; ok {
		return fixes
	}
	return nil
}
