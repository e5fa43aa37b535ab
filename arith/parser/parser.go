package parser

import (
	"errors"
	"fmt"
)

type Option func(*Parser)

func WithFile(path string) Option {
	return func(p *Parser) {
		p.file = path
	}
}

// FatalError aborts an evaluation. It carries the span of the operator
// that failed.
type FatalError struct {
	Span Span
	Err  error
}

func (e *FatalError) Error() string {
	return e.Err.Error()
}

func (e *FatalError) Unwrap() error {
	return e.Err
}

// Parser evaluates a token sequence by recursive descent:
//
//	expr   := term (('+' | '-') term)*
//	term   := factor (('*' | '/') factor)*
//	factor := NUMBER | '(' expr ')'
//
// Syntax errors are recorded as diagnostics and recovered from by
// skipping to the next ';' or ')'. Only fatal errors are returned.
type Parser struct {
	file   string
	tokens []Token
	pos    int
	diags  []Diagnostic
}

func NewParser(tokens []Token, opts ...Option) *Parser {
	p := &Parser{tokens: tokens}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Diagnostics returns the parser and fatal errors reported so far.
func (p *Parser) Diagnostics() []Diagnostic {
	return p.diags
}

// Parse evaluates one expression. Tokens left over afterwards are
// reported but do not discard the result. A FatalError yields no result.
func (p *Parser) Parse() (Value, error) {
	result, err := p.parseExpr()
	if err != nil {
		diag := Diagnostic{Stage: StageFatal, Message: err.Error()}
		var fatal *FatalError
		if errors.As(err, &fatal) {
			diag.Span = fatal.Span
		}
		p.diags = append(p.diags, diag)
		return Value{}, err
	}
	if tok, ok := p.peek(); ok {
		p.error(fmt.Sprintf("Unexpected token '%s'", tok.Quote()), tok.Span)
	}
	return result, nil
}

func (p *Parser) peek() (Token, bool) {
	if p.pos >= len(p.tokens) {
		return Token{}, false
	}
	return p.tokens[p.pos], true
}

func (p *Parser) advance() Token {
	tok, _ := p.peek()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return tok
}

func (p *Parser) check(kind TokenKind) bool {
	tok, ok := p.peek()
	return ok && tok.Kind == kind
}

func (p *Parser) match(kinds ...TokenKind) bool {
	for _, kind := range kinds {
		if p.check(kind) {
			return true
		}
	}
	return false
}

// endSpan locates end of input: just past the last token.
func (p *Parser) endSpan() Span {
	if len(p.tokens) == 0 {
		pos := Position{File: p.file, Line: 1, Column: 1}
		return Span{Start: pos, End: pos}
	}
	end := p.tokens[len(p.tokens)-1].Span.End
	return Span{Start: end, End: end}
}

func (p *Parser) currentSpan() Span {
	if tok, ok := p.peek(); ok {
		return tok.Span
	}
	return p.endSpan()
}

func (p *Parser) error(msg string, span Span) {
	p.diags = append(p.diags, Diagnostic{Stage: StageParser, Message: msg, Span: span})
}

// recoverTo skips tokens up to and including the next synchronizing token.
func (p *Parser) recoverTo(kinds ...TokenKind) {
	for {
		if _, ok := p.peek(); !ok {
			return
		}
		if p.match(kinds...) {
			p.advance()
			return
		}
		p.advance()
	}
}

func (p *Parser) recover() {
	p.recoverTo(TokenSemicolon, TokenRParen)
}

func (p *Parser) parseExpr() (Value, error) {
	result, err := p.parseTerm()
	if err != nil {
		return Value{}, err
	}
	for p.match(TokenPlus, TokenMinus) {
		op := p.advance()
		rhs, err := p.parseTerm()
		if err != nil {
			return Value{}, err
		}
		if result, err = result.Apply(op.Kind, rhs); err != nil {
			return Value{}, &FatalError{Span: op.Span, Err: err}
		}
	}
	return result, nil
}

func (p *Parser) parseTerm() (Value, error) {
	result, err := p.parseFactor()
	if err != nil {
		return Value{}, err
	}
	for p.match(TokenStar, TokenSlash) {
		op := p.advance()
		rhs, err := p.parseFactor()
		if err != nil {
			return Value{}, err
		}
		if result, err = result.Apply(op.Kind, rhs); err != nil {
			return Value{}, &FatalError{Span: op.Span, Err: err}
		}
	}
	return result, nil
}

func (p *Parser) parseFactor() (Value, error) {
	tok, ok := p.peek()
	if !ok {
		p.error("Unexpected token 'EOF'", p.endSpan())
		return Value{}, nil
	}

	switch tok.Kind {
	case TokenNumber:
		p.advance()
		return Int(tok.Value), nil
	case TokenLParen:
		p.advance()
		inner, err := p.parseExpr()
		if err != nil {
			return Value{}, err
		}
		if !p.check(TokenRParen) {
			p.error("Expected ')'", p.currentSpan())
			p.recover()
			return inner, nil
		}
		p.advance()
		return inner, nil
	default:
		p.error(fmt.Sprintf("Unexpected token '%s'", tok.Quote()), tok.Span)
		p.recover()
		return Value{}, nil
	}
}

// Tokenize runs the lexer over src to completion.
func Tokenize(src []byte, opts ...Option) ([]Token, []Diagnostic) {
	p := NewParser(nil, opts...)
	lexer := NewLexer(src, p.file)
	var tokens []Token
	for {
		tok, ok := lexer.NextToken()
		if !ok {
			break
		}
		tokens = append(tokens, tok)
	}
	return tokens, lexer.Diagnostics()
}

// Evaluate computes the value of tokens. The returned error is non-nil
// only for fatal failures; syntax errors are in the diagnostics.
func Evaluate(tokens []Token, opts ...Option) (Value, []Diagnostic, error) {
	p := NewParser(tokens, opts...)
	value, err := p.Parse()
	return value, p.Diagnostics(), err
}

// Parse tokenizes and evaluates src, returning lexer diagnostics followed
// by parser diagnostics.
func Parse(src []byte, opts ...Option) (Value, []Diagnostic, error) {
	tokens, lexDiags := Tokenize(src, opts...)
	value, parseDiags, err := Evaluate(tokens, opts...)
	return value, append(lexDiags, parseDiags...), err
}
