package parser

import "math/big"

type Position struct {
	File   string
	Offset int
	Line   int
	Column int
}

type Span struct {
	Start Position
	End   Position
}

type TokenKind int

const (
	TokenNumber TokenKind = iota
	TokenPlus
	TokenMinus
	TokenStar
	TokenSlash
	TokenLParen
	TokenRParen
	TokenSemicolon
)

var tokenKindNames = map[TokenKind]string{
	TokenNumber:    "NUMBER",
	TokenPlus:      "PLUS",
	TokenMinus:     "MINUS",
	TokenStar:      "STAR",
	TokenSlash:     "SLASH",
	TokenLParen:    "LPAREN",
	TokenRParen:    "RPAREN",
	TokenSemicolon: "SEMI",
}

var tokenKindSymbols = map[TokenKind]string{
	TokenPlus:      "+",
	TokenMinus:     "-",
	TokenStar:      "*",
	TokenSlash:     "/",
	TokenLParen:    "(",
	TokenRParen:    ")",
	TokenSemicolon: ";",
}

var punctuation = map[byte]TokenKind{
	'+': TokenPlus,
	'-': TokenMinus,
	'*': TokenStar,
	'/': TokenSlash,
	'(': TokenLParen,
	')': TokenRParen,
	';': TokenSemicolon,
}

func (k TokenKind) String() string {
	if name, ok := tokenKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Symbol returns the source character of a punctuation kind, or the kind
// name for NUMBER.
func (k TokenKind) Symbol() string {
	if sym, ok := tokenKindSymbols[k]; ok {
		return sym
	}
	return k.String()
}

// Token is one lexical unit. Value is set only for TokenNumber.
type Token struct {
	Kind  TokenKind
	Value *big.Int
	Span  Span
}

// String renders the token as it appears in a token listing:
// NUMBER:<value> for numbers, the kind name otherwise.
func (t Token) String() string {
	if t.Kind == TokenNumber {
		return t.Kind.String() + ":" + t.Value.String()
	}
	return t.Kind.String()
}

// Quote renders the token the way parser diagnostics refer to it.
func (t Token) Quote() string {
	if t.Kind == TokenNumber {
		return t.String()
	}
	return t.Kind.Symbol()
}

// LookupPunctuation reports the kind of a single-character token.
func LookupPunctuation(ch byte) (TokenKind, bool) {
	kind, ok := punctuation[ch]
	return kind, ok
}
