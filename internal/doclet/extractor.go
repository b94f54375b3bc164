// Package doclet turns documentation comment bodies into ordered @tag segments.
package doclet

import (
	"regexp"
	"strings"
	"unicode"
)

// OpeningMarker is the extra star a documentation comment opens with ("/**").
// The same character decorates every continuation line.
const OpeningMarker = "*"

// segmentPattern matches "@" + a lowercase tag name + everything up to the next "@".
var segmentPattern = regexp.MustCompile(`@([a-z]+)([^@]*)`)

// Segment is one "@tag text" unit of a doclet.
type Segment struct {
	// Tag is the bare tag name, e.g. "param".
	Tag string
	// Raw is the full segment text including the leading "@tag".
	Raw string
}

// Extractor cleans comment bodies and cuts them into tag segments.
type Extractor struct {
	marker  string
	pattern *regexp.Regexp
}

// NewExtractor creates an Extractor using the standard "*" marker.
func NewExtractor() *Extractor {
	return &Extractor{
		marker:  OpeningMarker,
		pattern: segmentPattern,
	}
}

// Parse returns the raw tag segments of a comment body in source order.
// It returns nil when the body is not a doclet or carries no tags.
func (e *Extractor) Parse(commentText string) []string {
	segments := e.Segments(commentText)
	if len(segments) == 0 {
		return nil
	}

	parts := make([]string, len(segments))
	for i, s := range segments {
		parts[i] = s.Raw
	}
	return parts
}

// Segments is Parse with the tag name of each segment split out.
func (e *Extractor) Segments(commentText string) []Segment {
	text, ok := e.Clean(commentText)
	if !ok {
		return nil
	}

	matches := e.pattern.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}

	segments := make([]Segment, 0, len(matches))
	for _, m := range matches {
		segments = append(segments, Segment{Tag: m[1], Raw: m[0]})
	}
	return segments
}

// IsDoclet reports whether a comment body opens with the doclet marker.
func (e *Extractor) IsDoclet(commentText string) bool {
	return strings.HasPrefix(commentText, e.marker)
}

// Clean strips doclet decoration and collapses the body to one line of text.
// ok is false when commentText is not a doclet.
func (e *Extractor) Clean(commentText string) (string, bool) {
	if !e.IsDoclet(commentText) {
		return "", false
	}

	text := strings.Replace(commentText, e.marker, "", 1)
	text = strings.TrimSpace(text)

	// Continuation lines look like "\n * text"; trimming the whitespace that
	// precedes each star drops the line breaks along with the decoration.
	pieces := strings.Split(text, e.marker)
	for i, p := range pieces {
		pieces[i] = strings.TrimRightFunc(p, unicode.IsSpace)
	}
	return strings.Join(pieces, ""), true
}

// TagName returns the bare tag name a segment starts with, or "" if it does not start with one.
func TagName(segment string) string {
	m := segmentPattern.FindStringSubmatchIndex(segment)
	if m == nil || m[0] != 0 {
		return ""
	}
	return segment[m[2]:m[3]]
}
