// Package compiler drives an arithmetic source through tokenization and
// evaluation and reports the outcome as lines of diagnostic text.
package compiler

import (
	"fmt"
	"io"
	"strings"

	"github.com/dhamidi/arith/arith/parser"
)

// Examples are the sources run by RunExamples: one well-formed
// expression and one with an unclosed parenthesis.
var Examples = []string{
	"3 + 5 * (10 - 4)",
	"3 + 5 * (10 - 4;",
}

type LineKind int

const (
	LineTokens LineKind = iota
	LineLexerError
	LineParserError
	LineFatal
	LineSuccess
	LineFailure
)

type Line struct {
	Kind LineKind
	Text string
}

// Report is the outcome of one compilation.
type Report struct {
	File        string
	Source      string
	Tokens      []parser.Token
	Diagnostics []parser.Diagnostic
	Value       parser.Value
	Err         error
}

// OK reports whether the compilation produced a numeric result.
func (r *Report) OK() bool {
	return r.Err == nil && r.Value.Valid()
}

func (r *Report) diagnostics(stage parser.Stage) []parser.Diagnostic {
	var out []parser.Diagnostic
	for _, d := range r.Diagnostics {
		if d.Stage == stage {
			out = append(out, d)
		}
	}
	return out
}

func (r *Report) TokenListing() string {
	return TokenListing(r.Tokens)
}

// TokenListing renders tokens as a single "Tokens: [...]" line.
func TokenListing(tokens []parser.Token) string {
	parts := make([]string, len(tokens))
	for i, tok := range tokens {
		parts[i] = tok.String()
	}
	return "Tokens: [" + strings.Join(parts, ", ") + "]"
}

// Lines returns the report in output order: lexer errors, the token
// listing, parser errors, then either the fatal error or the outcome.
func (r *Report) Lines() []Line {
	var lines []Line
	for _, d := range r.diagnostics(parser.StageLexer) {
		lines = append(lines, Line{Kind: LineLexerError, Text: d.String()})
	}
	lines = append(lines, Line{Kind: LineTokens, Text: r.TokenListing()})
	for _, d := range r.diagnostics(parser.StageParser) {
		lines = append(lines, Line{Kind: LineParserError, Text: d.String()})
	}

	if fatal := r.diagnostics(parser.StageFatal); len(fatal) > 0 {
		for _, d := range fatal {
			lines = append(lines, Line{Kind: LineFatal, Text: d.String()})
		}
		return lines
	}
	if r.Value.Valid() {
		lines = append(lines, Line{Kind: LineSuccess, Text: "Compilation successful: " + r.Value.String()})
	} else {
		lines = append(lines, Line{Kind: LineFailure, Text: "Compilation failed: no value after error recovery"})
	}
	return lines
}

// Compile tokenizes and evaluates source. It never fails; problems are
// recorded in the report.
func Compile(source string, opts ...parser.Option) *Report {
	r := &Report{Source: source}

	tokens, lexDiags := parser.Tokenize([]byte(source), opts...)
	r.Tokens = tokens
	r.Diagnostics = append(r.Diagnostics, lexDiags...)

	value, parseDiags, err := parser.Evaluate(tokens, opts...)
	r.Diagnostics = append(r.Diagnostics, parseDiags...)
	r.Value = value
	r.Err = err
	return r
}

// CompileFile compiles the contents of a named file. Diagnostic positions
// carry the name.
func CompileFile(file, source string) *Report {
	r := Compile(source, parser.WithFile(file))
	r.File = file
	return r
}

// Run compiles source and writes the report lines to w.
func Run(w io.Writer, source string, opts ...parser.Option) (*Report, error) {
	r := Compile(source, opts...)
	if err := Write(w, r); err != nil {
		return r, err
	}
	return r, nil
}

func Write(w io.Writer, r *Report) error {
	for _, line := range r.Lines() {
		if _, err := fmt.Fprintln(w, line.Text); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
	}
	return nil
}

// RunExamples runs every source in Examples, in order.
func RunExamples(w io.Writer) ([]*Report, error) {
	var reports []*Report
	for _, src := range Examples {
		r, err := Run(w, src)
		reports = append(reports, r)
		if err != nil {
			return reports, err
		}
	}
	return reports, nil
}
