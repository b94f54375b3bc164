package doclet

import (
	"reflect"
	"testing"
)

func TestExtractor_Parse(t *testing.T) {
	tests := []struct {
		name    string
		comment string
		want    []string
	}{
		{
			name:    "single line doclet",
			comment: "* @param {string} name the user's name ",
			want:    []string{"@param {string} name the user's name"},
		},
		{
			name:    "multi line doclet",
			comment: "*\n * Adds numbers.\n * @param {number} a first\n * @param {number} b second\n ",
			want:    []string{"@param {number} a first ", "@param {number} b second"},
		},
		{
			name:    "mixed tags keep source order",
			comment: "*\n * @example add(1, 2)\n * @param {number} a first\n * @return {number} sum\n ",
			want:    []string{"@example add(1, 2) ", "@param {number} a first ", "@return {number} sum"},
		},
		{
			name:    "prose only",
			comment: "* just some prose ",
			want:    nil,
		},
		{
			name:    "plain block comment",
			comment: " @param {string} a not a doclet ",
			want:    nil,
		},
		{
			name:    "empty",
			comment: "",
			want:    nil,
		},
		{
			name:    "marker only",
			comment: "*",
			want:    nil,
		},
		{
			name:    "uppercase tag is not a tag",
			comment: "* @Param {string} a ",
			want:    nil,
		},
		{
			name:    "email address in prose becomes a segment",
			comment: "* write to me@example.com ",
			want:    []string{"@example.com"},
		},
		{
			name:    "stars inside text are decoration too",
			comment: "* @param {*} value anything ",
			want:    []string{"@param {} value anything"},
		},
	}

	e := NewExtractor()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.Parse(tt.comment)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse(%q) = %q, want %q", tt.comment, got, tt.want)
			}
		})
	}
}

func TestExtractor_Segments(t *testing.T) {
	e := NewExtractor()
	got := e.Segments("*\n * @param {string} a first\n * @example a()\n ")

	want := []Segment{
		{Tag: "param", Raw: "@param {string} a first "},
		{Tag: "example", Raw: "@example a()"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Segments = %+v, want %+v", got, want)
	}
}

func TestExtractor_Clean(t *testing.T) {
	e := NewExtractor()

	text, ok := e.Clean("*\n * Line one.\n * Line two.\n ")
	if !ok {
		t.Fatal("Clean should accept a doclet")
	}
	if want := " Line one. Line two."; text != want {
		t.Errorf("Clean = %q, want %q", text, want)
	}

	if _, ok := e.Clean(" not a doclet"); ok {
		t.Error("Clean should reject a comment without the opening marker")
	}
}

func TestExtractor_IsDoclet(t *testing.T) {
	e := NewExtractor()
	if !e.IsDoclet("* x") {
		t.Error(`IsDoclet("* x") = false, want true`)
	}
	if e.IsDoclet(" * x") {
		t.Error(`IsDoclet(" * x") = true, want false`)
	}
}

func TestTagName(t *testing.T) {
	tests := map[string]string{
		"@param {string} a": "param",
		"@example foo()":    "example",
		"@returns {x} y":    "returns",
		"param {string} a":  "",
		"x @param":          "",
		"@":                 "",
	}
	for in, want := range tests {
		if got := TagName(in); got != want {
			t.Errorf("TagName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestExtractor_ParseIsStable(t *testing.T) {
	e := NewExtractor()
	comment := "*\n * @param {string} a first\n * @param {string} b second\n "
	first := e.Parse(comment)
	second := e.Parse(comment)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Parse is not stable: %q vs %q", first, second)
	}
}
