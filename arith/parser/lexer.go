package parser

import (
	"fmt"
	"math/big"
	"unicode"
	"unicode/utf8"
)

type Lexer struct {
	input  []byte
	file   string
	pos    int
	line   int
	column int
	diags  []Diagnostic
}

func NewLexer(input []byte, file string) *Lexer {
	return &Lexer{
		input:  input,
		file:   file,
		pos:    0,
		line:   1,
		column: 1,
	}
}

func (l *Lexer) Position() Position {
	return Position{
		File:   l.file,
		Offset: l.pos,
		Line:   l.line,
		Column: l.column,
	}
}

// Diagnostics returns the lexer errors reported so far.
func (l *Lexer) Diagnostics() []Diagnostic {
	return l.diags
}

func (l *Lexer) peek() (rune, int) {
	if l.pos >= len(l.input) {
		return utf8.RuneError, 0
	}
	return utf8.DecodeRune(l.input[l.pos:])
}

func (l *Lexer) advance() rune {
	ch, width := l.peek()
	if width == 0 {
		return utf8.RuneError
	}
	l.pos += width
	if ch == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	return ch
}

func (l *Lexer) error(msg string, span Span) {
	l.diags = append(l.diags, Diagnostic{Stage: StageLexer, Message: msg, Span: span})
}

// NextToken returns the next token in the input. ok is false once the
// input is exhausted. Whitespace is skipped and illegal characters are
// reported and skipped, so NextToken never stops early.
func (l *Lexer) NextToken() (Token, bool) {
	for {
		ch, width := l.peek()
		if width == 0 {
			return Token{}, false
		}
		start := l.Position()

		switch {
		case unicode.IsSpace(ch):
			l.advance()
		case isDigit(ch):
			return l.scanNumber(start), true
		default:
			if ch < utf8.RuneSelf {
				if kind, found := LookupPunctuation(byte(ch)); found {
					l.advance()
					return Token{Kind: kind, Span: Span{Start: start, End: l.Position()}}, true
				}
			}
			l.advance()
			l.error("Illegal character '"+illegalText(ch, width, l.input[start.Offset])+"'", Span{Start: start, End: l.Position()})
		}
	}
}

func (l *Lexer) scanNumber(start Position) Token {
	for {
		ch, width := l.peek()
		if width == 0 || !isDigit(ch) {
			break
		}
		l.advance()
	}
	end := l.Position()
	value, _ := new(big.Int).SetString(string(l.input[start.Offset:end.Offset]), 10)
	return Token{Kind: TokenNumber, Value: value, Span: Span{Start: start, End: end}}
}

// illegalText renders an illegal character for a diagnostic. A byte that
// is not valid UTF-8 is shown as a \x escape.
func illegalText(ch rune, width int, b byte) string {
	if ch == utf8.RuneError && width == 1 {
		return fmt.Sprintf("\\x%02x", b)
	}
	return string(ch)
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}
