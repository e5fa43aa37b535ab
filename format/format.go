package format

import (
	"encoding"
	"fmt"
	"io"

	"github.com/dhamidi/arith/arith/compiler"
)

type Encoder interface {
	encoding.TextMarshaler
	Encode(r *compiler.Report) error
}

// New returns the encoder registered under name ("text" or "json").
func New(name string, w io.Writer, colored bool) (Encoder, error) {
	switch name {
	case "text":
		return NewLineEncoder(w, colored), nil
	case "json":
		return NewJSONEncoder(w), nil
	}
	return nil, fmt.Errorf("unknown format: %s", name)
}
