// Package verifier runs doclet extraction and tag formatting over source text.
package verifier

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"doclint/internal/doclet"
	lerrors "doclint/internal/errors"
	"doclint/internal/formatters"
	"doclint/internal/slogutil"
	"doclint/internal/sourceparse"
)

// docletPartsHeader prefixes the raw segment listing of each doclet.
const docletPartsHeader = "Doclet Parts:"

// CommentParser extracts comments from source text.
// *sourceparse.Parser is the production implementation.
type CommentParser interface {
	ParseComments(ctx context.Context, source []byte, lang sourceparse.Language) ([]sourceparse.Comment, error)
}

// Options configures a Verifier. Zero values select defaults.
type Options struct {
	Language  sourceparse.Language
	Parser    CommentParser
	Registry  *formatters.Registry
	Extractor *doclet.Extractor
	Logger    *slog.Logger
}

// Verifier turns source text into a message log of doclet renderings.
type Verifier struct {
	lang      sourceparse.Language
	parser    CommentParser
	registry  *formatters.Registry
	extractor *doclet.Extractor
	logger    *slog.Logger
}

// New creates a Verifier.
func New(opts Options) *Verifier {
	v := &Verifier{
		lang:      opts.Language,
		parser:    opts.Parser,
		registry:  opts.Registry,
		extractor: opts.Extractor,
		logger:    opts.Logger,
	}
	if v.lang == "" {
		v.lang = sourceparse.LangJavaScript
	}
	if v.parser == nil {
		v.parser = sourceparse.NewParser()
	}
	if v.registry == nil {
		v.registry = formatters.NewDefaultRegistry(string(v.lang))
	}
	if v.extractor == nil {
		v.extractor = doclet.NewExtractor()
	}
	if v.logger == nil {
		v.logger = slogutil.NewDiscardLogger()
	}
	return v
}

// Language returns the language source text is parsed as.
func (v *Verifier) Language() sourceparse.Language {
	return v.lang
}

// Verify runs a verification and returns the joined message log.
func (v *Verifier) Verify(ctx context.Context, source string) string {
	return v.Run(ctx, source).String()
}

// Run parses source and builds a fresh message log.
// Failures are recorded in the log, never returned.
func (v *Verifier) Run(ctx context.Context, source string) *Report {
	report := &Report{Language: v.lang}

	comments, err := v.parser.ParseComments(ctx, []byte(source), v.lang)
	if err != nil {
		lintErr := classifyParseError(err)
		v.logger.Warn("Source rejected by parser",
			"language", string(v.lang),
			"code", string(lintErr.Code),
			"error", err.Error(),
		)
		report.addError(lintErr)
		return report
	}

	blocks := 0
	for _, c := range comments {
		if c.Kind != sourceparse.KindBlock {
			continue
		}
		blocks++
		v.processComment(report, c)
	}

	v.logger.Debug("Verification completed",
		"language", string(v.lang),
		"comments", len(comments),
		"blockComments", blocks,
		"messages", len(report.Messages),
	)
	return report
}

func (v *Verifier) processComment(report *Report, c sourceparse.Comment) {
	segments := v.extractor.Segments(c.Text)
	if len(segments) == 0 {
		return
	}

	raw := make([]string, len(segments))
	for i, s := range segments {
		raw[i] = s.Raw
	}
	report.addText(c.Line, docletPartsHeader+"\n"+strings.Join(raw, "\n"))

	for _, s := range segments {
		out, ok := v.registry.Format(s.Tag, s.Raw)
		if !ok {
			v.logger.Debug("No output for segment", "tag", s.Tag, "line", c.Line)
			continue
		}
		report.addText(c.Line, out)
	}
}

// classifyParseError maps parser failures onto stable error codes.
func classifyParseError(err error) *lerrors.LintError {
	var synErr *sourceparse.SyntaxError
	switch {
	case errors.As(err, &synErr):
		return lerrors.New(lerrors.ParseError, "parse error", err).WithDetails(map[string]int{
			"line":   synErr.Line,
			"column": synErr.Column,
		})
	case errors.Is(err, sourceparse.ErrNoCGO):
		return lerrors.New(lerrors.ParserUnavailable, "parser unavailable", err)
	case errors.Is(err, sourceparse.ErrUnsupportedLanguage):
		return lerrors.New(lerrors.UnsupportedLanguage, "unsupported language", err)
	default:
		return lerrors.New(lerrors.ParseError, "parse error", err)
	}
}
