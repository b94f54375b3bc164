package formatters

import (
	"regexp"
	"strings"
)

// paramPattern captures type, name and description of a @param segment.
// Optional "[name]" and union types are not understood: brackets are
// swallowed by the separators and braces are taken verbatim.
var paramPattern = regexp.MustCompile(`@param\W+\{(.*)\}\W+(\w*)\W+(.*)`)

const paramHeader = "|| name || type || description||"

// ParamFormatter renders @param segments as a table fragment.
type ParamFormatter struct {
	pattern *regexp.Regexp
}

// NewParamFormatter creates a ParamFormatter.
func NewParamFormatter() *ParamFormatter {
	return &ParamFormatter{pattern: paramPattern}
}

// Param is a parsed @param segment.
type Param struct {
	Name        string
	Type        string
	Description string
}

// Parse extracts the fields of a @param segment.
func (f *ParamFormatter) Parse(segment string) (Param, bool) {
	m := f.pattern.FindStringSubmatch(segment)
	if m == nil {
		return Param{}, false
	}
	return Param{
		Type:        m[1],
		Name:        m[2],
		Description: strings.TrimSpace(m[3]),
	}, true
}

// Format renders a header row and one data row.
func (f *ParamFormatter) Format(segment string) (string, bool) {
	p, ok := f.Parse(segment)
	if !ok {
		return "", false
	}
	return paramHeader + "\n|" + p.Name + "|" + p.Type + "|" + p.Description + "|", true
}
