package parser

type Stage int

const (
	StageLexer Stage = iota
	StageParser
	StageFatal
)

var stageNames = map[Stage]string{
	StageLexer:  "lexer",
	StageParser: "parser",
	StageFatal:  "fatal",
}

func (s Stage) String() string {
	if name, ok := stageNames[s]; ok {
		return name
	}
	return "unknown"
}

// Diagnostic is a problem found while tokenizing or evaluating.
type Diagnostic struct {
	Stage   Stage
	Message string
	Span    Span
}

// String renders the diagnostic as one line of human-readable output.
func (d Diagnostic) String() string {
	switch d.Stage {
	case StageLexer:
		return "Lexer error: " + d.Message
	case StageParser:
		return "Parser error: " + d.Message
	default:
		return "Parsing failed: " + d.Message
	}
}
