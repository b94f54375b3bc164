//go:build cgo

package sourceparse

import (
	"context"
	"fmt"
	"sync"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/java"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
	"github.com/smacker/go-tree-sitter/typescript/typescript"
)

// Parser wraps tree-sitter for comment extraction.
// A tree-sitter parser holds mutable state, so calls are serialized.
type Parser struct {
	mu     sync.Mutex
	parser *sitter.Parser
}

// NewParser creates a new tree-sitter parser.
func NewParser() *Parser {
	return &Parser{
		parser: sitter.NewParser(),
	}
}

// IsAvailable reports whether tree-sitter parsing is compiled in.
func IsAvailable() bool {
	return true
}

// ParseComments parses source and returns every comment in source order.
// A tree containing ERROR or MISSING nodes yields a *SyntaxError.
func (p *Parser) ParseComments(ctx context.Context, source []byte, lang Language) ([]Comment, error) {
	tsLang, err := getLanguage(lang)
	if err != nil {
		return nil, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.parser.SetLanguage(tsLang)
	tree, err := p.parser.ParseCtx(ctx, nil, source)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}
	if tree == nil {
		return nil, fmt.Errorf("parse error: no tree produced")
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		return nil, syntaxErrorAt(firstErrorNode(root), source)
	}

	return collectComments(root, source), nil
}

// getLanguage returns the tree-sitter Language for a given language identifier.
func getLanguage(lang Language) (*sitter.Language, error) {
	switch lang {
	case LangJavaScript:
		return javascript.GetLanguage(), nil
	case LangTypeScript:
		return typescript.GetLanguage(), nil
	case LangTSX:
		return tsx.GetLanguage(), nil
	case LangJava:
		return java.GetLanguage(), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedLanguage, lang)
	}
}

// commentNodeTypes lists the node types grammars use for comments.
// JS/TS emit "comment" for both forms; Java splits them.
var commentNodeTypes = map[string]bool{
	"comment":       true,
	"line_comment":  true,
	"block_comment": true,
}

// collectComments walks the tree depth-first, which visits comments in source order.
func collectComments(root *sitter.Node, source []byte) []Comment {
	var comments []Comment

	var walk func(*sitter.Node)
	walk = func(node *sitter.Node) {
		if node == nil {
			return
		}

		if commentNodeTypes[node.Type()] {
			raw := string(source[node.StartByte():node.EndByte()])
			if kind, text, ok := classifyComment(raw); ok {
				pt := node.StartPoint()
				comments = append(comments, Comment{
					Kind:   kind,
					Text:   text,
					Line:   int(pt.Row) + 1,
					Column: int(pt.Column) + 1,
				})
			}
			return
		}

		for i := uint32(0); i < node.ChildCount(); i++ {
			walk(node.Child(int(i)))
		}
	}

	walk(root)
	return comments
}

// firstErrorNode returns the first ERROR or MISSING node in document order.
func firstErrorNode(root *sitter.Node) *sitter.Node {
	var found *sitter.Node

	var walk func(*sitter.Node)
	walk = func(node *sitter.Node) {
		if node == nil || found != nil {
			return
		}
		if node.Type() == "ERROR" || node.IsMissing() {
			found = node
			return
		}
		if !node.HasError() {
			return
		}
		for i := uint32(0); i < node.ChildCount(); i++ {
			walk(node.Child(int(i)))
		}
	}

	walk(root)
	if found == nil {
		return root
	}
	return found
}

func syntaxErrorAt(node *sitter.Node, source []byte) *SyntaxError {
	pt := node.StartPoint()
	near := string(source[node.StartByte():node.EndByte()])
	if len(near) > 20 {
		near = near[:20]
	}
	return &SyntaxError{
		Line:   int(pt.Row) + 1,
		Column: int(pt.Column) + 1,
		Near:   near,
	}
}
