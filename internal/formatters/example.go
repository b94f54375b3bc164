package formatters

import (
	"strings"
)

const exampleHeader = "|| example ||"

// ExampleFormatter renders @example segments as a fenced code block.
type ExampleFormatter struct {
	lang string
}

// NewExampleFormatter creates an ExampleFormatter fencing code as lang.
func NewExampleFormatter(lang string) *ExampleFormatter {
	return &ExampleFormatter{lang: lang}
}

// Format renders the example body. An empty body yields no output.
func (f *ExampleFormatter) Format(segment string) (string, bool) {
	body, ok := strings.CutPrefix(segment, "@"+string(TagExample))
	if !ok {
		return "", false
	}
	body = strings.TrimSpace(body)
	if body == "" {
		return "", false
	}

	var b strings.Builder
	b.WriteString(exampleHeader)
	b.WriteString("\n```")
	b.WriteString(f.lang)
	b.WriteString("\n")
	b.WriteString(body)
	b.WriteString("\n```")
	return b.String(), true
}
