//go:build !cgo

package sourceparse

import "context"

// Parser wraps tree-sitter parsing functionality.
// This is a stub implementation for non-CGO builds.
type Parser struct{}

// NewParser creates a new parser.
func NewParser() *Parser {
	return &Parser{}
}

// IsAvailable returns whether comment extraction is available.
// Returns false when CGO is disabled.
func IsAvailable() bool {
	return false
}

// ParseComments always fails with ErrNoCGO.
func (p *Parser) ParseComments(ctx context.Context, source []byte, lang Language) ([]Comment, error) {
	return nil, ErrNoCGO
}
