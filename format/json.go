package format

import (
	"encoding/json"
	"fmt"
	"io"
	"math"

	"github.com/dhamidi/arith/arith/compiler"
	"github.com/dhamidi/arith/arith/parser"
)

type JSONEncoder struct {
	w      io.Writer
	report *compiler.Report
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(r *compiler.Report) error {
	e.report = r
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	if _, err := e.w.Write(text); err != nil {
		return err
	}
	_, err = e.w.Write([]byte("\n"))
	return err
}

func (e *JSONEncoder) MarshalText() ([]byte, error) {
	if e.report == nil {
		return nil, fmt.Errorf("no report to encode")
	}
	return json.MarshalIndent(buildReportData(e.report), "", "  ")
}

type jsonReport struct {
	File        string           `json:"file,omitempty"`
	Source      string           `json:"source"`
	Tokens      []jsonToken      `json:"tokens"`
	Diagnostics []jsonDiagnostic `json:"diagnostics,omitempty"`
	Value       *float64         `json:"value,omitempty"`
	Display     string           `json:"display,omitempty"`
	OK          bool             `json:"ok"`
	Error       string           `json:"error,omitempty"`
}

type jsonToken struct {
	Kind   string `json:"kind"`
	Value  string `json:"value,omitempty"`
	Line   int    `json:"line"`
	Column int    `json:"column"`
}

type jsonDiagnostic struct {
	Stage   string `json:"stage"`
	Message string `json:"message"`
	Line    int    `json:"line"`
	Column  int    `json:"column"`
}

func buildReportData(r *compiler.Report) jsonReport {
	data := jsonReport{
		File:   r.File,
		Source: r.Source,
		Tokens: []jsonToken{},
		OK:     r.OK(),
	}
	for _, tok := range r.Tokens {
		jt := jsonToken{
			Kind:   tok.Kind.String(),
			Line:   tok.Span.Start.Line,
			Column: tok.Span.Start.Column,
		}
		if tok.Kind == parser.TokenNumber {
			jt.Value = tok.Value.String()
		}
		data.Tokens = append(data.Tokens, jt)
	}
	for _, d := range r.Diagnostics {
		data.Diagnostics = append(data.Diagnostics, jsonDiagnostic{
			Stage:   d.Stage.String(),
			Message: d.Message,
			Line:    d.Span.Start.Line,
			Column:  d.Span.Start.Column,
		})
	}
	if r.Value.Valid() {
		data.Display = r.Value.String()
		// JSON has no encoding for values beyond the float64 range.
		if v := r.Value.Float(); !math.IsInf(v, 0) {
			data.Value = &v
		}
	}
	if r.Err != nil {
		data.Error = r.Err.Error()
	}
	return data
}
