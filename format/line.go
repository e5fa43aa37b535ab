package format

import (
	"bytes"
	"fmt"
	"io"

	"github.com/dhamidi/arith/arith/compiler"
	"github.com/fatih/color"
)

// LineEncoder writes a report as the plain diagnostic lines produced by
// compiler.Run, optionally colored by line kind.
type LineEncoder struct {
	w       io.Writer
	report  *compiler.Report
	colored bool
	colors  map[compiler.LineKind]*color.Color
}

func NewLineEncoder(w io.Writer, colored bool) *LineEncoder {
	e := &LineEncoder{
		w:       w,
		colored: colored,
		colors: map[compiler.LineKind]*color.Color{
			compiler.LineTokens:      color.New(color.Faint),
			compiler.LineLexerError:  color.New(color.FgYellow),
			compiler.LineParserError: color.New(color.FgYellow),
			compiler.LineFatal:       color.New(color.FgRed, color.Bold),
			compiler.LineSuccess:     color.New(color.FgGreen),
			compiler.LineFailure:     color.New(color.FgRed),
		},
	}
	for _, c := range e.colors {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return e
}

func (e *LineEncoder) Encode(r *compiler.Report) error {
	e.report = r
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *LineEncoder) MarshalText() ([]byte, error) {
	if e.report == nil {
		return nil, fmt.Errorf("no report to encode")
	}
	var buf bytes.Buffer
	if e.report.File != "" {
		fmt.Fprintf(&buf, "== %s\n", e.report.File)
	}
	for _, line := range e.report.Lines() {
		buf.WriteString(e.colors[line.Kind].Sprint(line.Text))
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}
