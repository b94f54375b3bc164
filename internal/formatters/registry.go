// Package formatters renders individual doclet tag segments into display text.
package formatters

import (
	"fmt"
	"sort"
)

// Tag identifies a doclet tag that has a formatter. The set is closed.
type Tag string

const (
	TagParam   Tag = "param"
	TagExample Tag = "example"
	TagReturn  Tag = "return"
	TagReturns Tag = "returns"
)

// KnownTags returns every tag a formatter exists for.
func KnownTags() []Tag {
	return []Tag{TagExample, TagParam, TagReturn, TagReturns}
}

// ParseTag validates a bare tag name against the closed set.
func ParseTag(name string) (Tag, error) {
	for _, t := range KnownTags() {
		if string(t) == name {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown tag: %q", name)
}

// Formatter renders one tag segment. ok is false when the segment produces no output.
type Formatter interface {
	Format(segment string) (out string, ok bool)
}

// Registry maps tags to their formatters.
type Registry struct {
	formatters map[Tag]Formatter
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		formatters: make(map[Tag]Formatter),
	}
}

// NewDefaultRegistry registers the built-in formatter of every known tag.
// exampleLang is the fence language used for @example blocks.
func NewDefaultRegistry(exampleLang string) *Registry {
	r := NewRegistry()
	returns := NewReturnFormatter()
	r.formatters[TagParam] = NewParamFormatter()
	r.formatters[TagExample] = NewExampleFormatter(exampleLang)
	r.formatters[TagReturn] = returns
	r.formatters[TagReturns] = returns
	return r
}

// Register binds a formatter to a tag, replacing any previous binding.
func (r *Registry) Register(tag Tag, f Formatter) error {
	if _, err := ParseTag(string(tag)); err != nil {
		return err
	}
	if f == nil {
		return fmt.Errorf("nil formatter for tag %q", tag)
	}
	r.formatters[tag] = f
	return nil
}

// Lookup returns the formatter for a bare tag name such as "param".
func (r *Registry) Lookup(name string) (Formatter, bool) {
	f, ok := r.formatters[Tag(name)]
	return f, ok
}

// Restrict returns a registry holding only the enabled tags.
func (r *Registry) Restrict(enabled []Tag) *Registry {
	out := NewRegistry()
	for _, t := range enabled {
		if f, ok := r.formatters[t]; ok {
			out.formatters[t] = f
		}
	}
	return out
}

// Tags lists registered tags in sorted order.
func (r *Registry) Tags() []Tag {
	tags := make([]Tag, 0, len(r.formatters))
	for t := range r.formatters {
		tags = append(tags, t)
	}
	sort.Slice(tags, func(i, j int) bool {
		return tags[i] < tags[j]
	})
	return tags
}

// Format dispatches a segment to the formatter of its tag.
func (r *Registry) Format(name, segment string) (string, bool) {
	f, ok := r.Lookup(name)
	if !ok {
		return "", false
	}
	return f.Format(segment)
}
