package formatters

import (
	"regexp"
	"strings"
)

var returnPattern = regexp.MustCompile(`@returns?\W+\{(.*)\}\W*(.*)`)

const returnHeader = "|| type || description||"

// ReturnFormatter renders @return and @returns segments.
type ReturnFormatter struct {
	pattern *regexp.Regexp
}

// NewReturnFormatter creates a ReturnFormatter.
func NewReturnFormatter() *ReturnFormatter {
	return &ReturnFormatter{pattern: returnPattern}
}

// Format renders a header row and one data row.
func (f *ReturnFormatter) Format(segment string) (string, bool) {
	m := f.pattern.FindStringSubmatch(segment)
	if m == nil {
		return "", false
	}
	return returnHeader + "\n|" + m[1] + "|" + strings.TrimSpace(m[2]) + "|", true
}
