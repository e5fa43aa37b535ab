package parser

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func kinds(tokens []Token) []string {
	var out []string
	for _, tok := range tokens {
		out = append(out, tok.String())
	}
	return out
}

func messages(diags []Diagnostic) []string {
	var out []string
	for _, d := range diags {
		out = append(out, d.String())
	}
	return out
}

func TestLexerNewLexer(t *testing.T) {
	lexer := NewLexer([]byte("1 + 2"), "test.arith")
	pos := lexer.Position()

	if pos.File != "test.arith" {
		t.Errorf("File = %q, want %q", pos.File, "test.arith")
	}
	if pos.Line != 1 {
		t.Errorf("Line = %d, want %d", pos.Line, 1)
	}
	if pos.Column != 1 {
		t.Errorf("Column = %d, want %d", pos.Column, 1)
	}
	if pos.Offset != 0 {
		t.Errorf("Offset = %d, want %d", pos.Offset, 0)
	}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"", nil},
		{"   \t\n", nil},
		{"3 + 5 * (10 - 4)", []string{"NUMBER:3", "PLUS", "NUMBER:5", "STAR", "LPAREN", "NUMBER:10", "MINUS", "NUMBER:4", "RPAREN"}},
		{"+-*/();", []string{"PLUS", "MINUS", "STAR", "SLASH", "LPAREN", "RPAREN", "SEMI"}},
		{"007", []string{"NUMBER:7"}},
		{"12 34", []string{"NUMBER:12", "NUMBER:34"}},
		{"99999999999999999999 + 1", []string{"NUMBER:99999999999999999999", "PLUS", "NUMBER:1"}},
		{"000123456789012345678901234567890", []string{"NUMBER:123456789012345678901234567890"}},
		{"1 + 2", []string{"NUMBER:1", "PLUS", "NUMBER:2"}},
		{"3 + 5 * (10 - 4;", []string{"NUMBER:3", "PLUS", "NUMBER:5", "STAR", "LPAREN", "NUMBER:10", "MINUS", "NUMBER:4", "SEMI"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tokens, diags := Tokenize([]byte(tt.input))
			if len(diags) != 0 {
				t.Errorf("unexpected diagnostics: %v", messages(diags))
			}
			if diff := cmp.Diff(tt.want, kinds(tokens)); diff != "" {
				t.Errorf("tokens mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTokenizeIllegalCharacters(t *testing.T) {
	tests := []struct {
		input     string
		wantToks  []string
		wantDiags []string
	}{
		{
			"3 & 5",
			[]string{"NUMBER:3", "NUMBER:5"},
			[]string{"Lexer error: Illegal character '&'"},
		},
		{
			"a+b",
			[]string{"PLUS"},
			[]string{"Lexer error: Illegal character 'a'", "Lexer error: Illegal character 'b'"},
		},
		{
			"{1}",
			[]string{"NUMBER:1"},
			[]string{"Lexer error: Illegal character '{'", "Lexer error: Illegal character '}'"},
		},
		{
			"1.5",
			[]string{"NUMBER:1", "NUMBER:5"},
			[]string{"Lexer error: Illegal character '.'"},
		},
		{
			"2 × 3",
			[]string{"NUMBER:2", "NUMBER:3"},
			[]string{"Lexer error: Illegal character '×'"},
		},
		{
			"1 \xff 2",
			[]string{"NUMBER:1", "NUMBER:2"},
			[]string{`Lexer error: Illegal character '\xff'`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tokens, diags := Tokenize([]byte(tt.input))
			if diff := cmp.Diff(tt.wantToks, kinds(tokens)); diff != "" {
				t.Errorf("tokens mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.wantDiags, messages(diags)); diff != "" {
				t.Errorf("diagnostics mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLexerPositions(t *testing.T) {
	tokens, _ := Tokenize([]byte("1 +\n  (22)"), WithFile("pos.arith"))
	want := []struct {
		line, column, offset int
	}{
		{1, 1, 0},
		{1, 3, 2},
		{2, 3, 6},
		{2, 4, 7},
		{2, 6, 9},
	}
	if len(tokens) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(tokens), len(want))
	}
	for i, w := range want {
		start := tokens[i].Span.Start
		if start.Line != w.line || start.Column != w.column || start.Offset != w.offset {
			t.Errorf("token %d (%v): start = %d:%d@%d, want %d:%d@%d",
				i, tokens[i], start.Line, start.Column, start.Offset, w.line, w.column, w.offset)
		}
		if start.File != "pos.arith" {
			t.Errorf("token %d: File = %q, want %q", i, start.File, "pos.arith")
		}
	}
	if end := tokens[3].Span.End; end.Offset != 9 || end.Column != 6 {
		t.Errorf("NUMBER:22 end = col %d @%d, want col 6 @9", end.Column, end.Offset)
	}
}

func TestLexerIllegalCharacterSpan(t *testing.T) {
	_, diags := Tokenize([]byte("1 $ 2"))
	if len(diags) != 1 {
		t.Fatalf("got %d diagnostics, want 1", len(diags))
	}
	span := diags[0].Span
	if span.Start.Column != 3 || span.End.Column != 4 {
		t.Errorf("span = %d..%d, want 3..4", span.Start.Column, span.End.Column)
	}
	if diags[0].Stage != StageLexer {
		t.Errorf("Stage = %v, want %v", diags[0].Stage, StageLexer)
	}
}
