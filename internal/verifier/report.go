package verifier

import (
	"strings"

	lerrors "doclint/internal/errors"
	"doclint/internal/sourceparse"
)

// MessageKind distinguishes plain log lines from error records.
type MessageKind string

const (
	MessageText  MessageKind = "text"
	MessageError MessageKind = "error"
)

// Message is one entry of the message log.
type Message struct {
	Kind MessageKind `json:"kind" yaml:"kind"`
	Text string      `json:"text" yaml:"text"`

	// Line is the 1-indexed source line of the comment the message came from.
	Line int `json:"line,omitempty" yaml:"line,omitempty"`

	Error *lerrors.LintError `json:"error,omitempty" yaml:"error,omitempty"`
}

// Report is the message log of one verification.
type Report struct {
	Language sourceparse.Language `json:"language" yaml:"language"`
	Messages []Message            `json:"messages" yaml:"messages"`
}

func (r *Report) addText(line int, text string) {
	r.Messages = append(r.Messages, Message{Kind: MessageText, Text: text, Line: line})
}

func (r *Report) addError(err *lerrors.LintError) {
	r.Messages = append(r.Messages, Message{Kind: MessageError, Text: err.Error(), Error: err})
}

// Lines returns the message texts in order.
func (r *Report) Lines() []string {
	lines := make([]string, len(r.Messages))
	for i, m := range r.Messages {
		lines[i] = m.Text
	}
	return lines
}

// String joins the message log with line breaks.
func (r *Report) String() string {
	return strings.Join(r.Lines(), "\n")
}

// HasError reports whether the log holds an error record.
func (r *Report) HasError() bool {
	for _, m := range r.Messages {
		if m.Kind == MessageError {
			return true
		}
	}
	return false
}
