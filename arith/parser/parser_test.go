package parser

import (
	"errors"
	"math/big"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseValues(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"3 + 5 * (10 - 4)", "33"},
		{"10 / 4", "2.5"},
		{"0", "0"},
		{"42", "42"},
		{"007 + 1", "8"},
		{"8 - 10", "-2"},
		{"1 - 2 - 3", "-4"},
		{"100 / 10 / 5", "2"},
		{"2 * (3 + 4) * 5", "70"},
		{"((7))", "7"},
		{"1 + 2 * 3 - 4 / 2", "5"},
		{"(1 + 2) * (3 + 4)", "21"},
		{"1 / 3", "0.3333333333333333"},
		{"1 / 3 * 3", "1"},
		{"  12\n*\t2 ", "24"},
		{"9007199254740993", "9007199254740993"},
		{"9007199254740992 + 1", "9007199254740993"},
		{"99999999999999999999 + 1", "100000000000000000000"},
		{"123456789012345678901234567890 * 10", "1234567890123456789012345678900"},
		{"1 / 1024", "0.0009765625"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			value, diags, err := Parse([]byte(tt.input))
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if len(diags) != 0 {
				t.Errorf("unexpected diagnostics: %v", messages(diags))
			}
			if !value.Valid() {
				t.Fatalf("value is invalid")
			}
			if got := value.String(); got != tt.want {
				t.Errorf("value = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestParseRecovery(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantDiags []string
		wantValue string
	}{
		{
			name:      "empty parens",
			input:     "()",
			wantDiags: []string{"Parser error: Unexpected token ')'", "Parser error: Expected ')'"},
			wantValue: "<invalid>",
		},
		{
			name:      "unbalanced paren synchronizes on semicolon",
			input:     "3 + 5 * (10 - 4;",
			wantDiags: []string{"Parser error: Expected ')'"},
			wantValue: "33",
		},
		{
			name:      "illegal character leaves adjacent numbers",
			input:     "3 & 5",
			wantDiags: []string{"Lexer error: Illegal character '&'", "Parser error: Unexpected token 'NUMBER:5'"},
			wantValue: "3",
		},
		{
			name:      "empty input",
			input:     "",
			wantDiags: []string{"Parser error: Unexpected token 'EOF'"},
			wantValue: "<invalid>",
		},
		{
			name:      "dangling operator",
			input:     "1 +",
			wantDiags: []string{"Parser error: Unexpected token 'EOF'"},
			wantValue: "<invalid>",
		},
		{
			name:      "doubled operator",
			input:     "1 + + 2",
			wantDiags: []string{"Parser error: Unexpected token '+'"},
			wantValue: "<invalid>",
		},
		{
			name:      "trailing semicolon",
			input:     "1 + 2;",
			wantDiags: []string{"Parser error: Unexpected token ';'"},
			wantValue: "3",
		},
		{
			name:      "missing operand inside parens",
			input:     "(1 + ) * 2",
			wantDiags: []string{"Parser error: Unexpected token ')'", "Parser error: Expected ')'"},
			wantValue: "<invalid>",
		},
		{
			name:      "unclosed paren at end of input",
			input:     "2 * (3",
			wantDiags: []string{"Parser error: Expected ')'"},
			wantValue: "6",
		},
		{
			name:      "stray closing paren",
			input:     "4 ) 5",
			wantDiags: []string{"Parser error: Unexpected token ')'"},
			wantValue: "4",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, diags, err := Parse([]byte(tt.input))
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if diff := cmp.Diff(tt.wantDiags, messages(diags)); diff != "" {
				t.Errorf("diagnostics mismatch (-want +got):\n%s", diff)
			}
			if got := value.String(); got != tt.wantValue {
				t.Errorf("value = %q, want %q", got, tt.wantValue)
			}
		})
	}
}

func TestParseRecoveryConsumesSynchronizingToken(t *testing.T) {
	tokens, _ := Tokenize([]byte("1 + ; 2"))
	p := NewParser(tokens)
	if _, err := p.Parse(); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	// The ';' is skipped with the failed factor, so "2" is what trails.
	want := []string{"Parser error: Unexpected token ';'", "Parser error: Unexpected token 'NUMBER:2'"}
	if diff := cmp.Diff(want, messages(p.Diagnostics())); diff != "" {
		t.Errorf("diagnostics mismatch (-want +got):\n%s", diff)
	}
}

func TestParseDivisionByZero(t *testing.T) {
	for _, input := range []string{"4 / 0", "4 / (2 - 2)", "1 + 6 / (3 * 0) + 1"} {
		t.Run(input, func(t *testing.T) {
			value, diags, err := Parse([]byte(input))
			if !errors.Is(err, ErrDivisionByZero) {
				t.Fatalf("error = %v, want %v", err, ErrDivisionByZero)
			}
			if value.Valid() {
				t.Errorf("value = %v, want invalid", value)
			}
			if diff := cmp.Diff([]string{"Parsing failed: division by zero"}, messages(diags)); diff != "" {
				t.Errorf("diagnostics mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFatalErrorSpan(t *testing.T) {
	_, _, err := Parse([]byte("1 / 0"))
	var fatal *FatalError
	if !errors.As(err, &fatal) {
		t.Fatalf("error = %T, want *FatalError", err)
	}
	if fatal.Span.Start.Column != 3 {
		t.Errorf("Span.Start.Column = %d, want 3", fatal.Span.Start.Column)
	}
}

var bigIntComparer = cmp.Comparer(func(a, b *big.Int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Cmp(b) == 0
})

func TestParseIsRepeatable(t *testing.T) {
	inputs := []string{"3 + 5 * (10 - 4)", "3 + 5 * (10 - 4;", "3 & 5", "()"}
	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			toks1, _ := Tokenize([]byte(input))
			toks2, _ := Tokenize([]byte(input))
			if diff := cmp.Diff(toks1, toks2, bigIntComparer); diff != "" {
				t.Errorf("tokens differ between runs:\n%s", diff)
			}
			v1, d1, _ := Parse([]byte(input))
			v2, d2, _ := Parse([]byte(input))
			if v1.String() != v2.String() {
				t.Errorf("values differ: %v vs %v", v1, v2)
			}
			if diff := cmp.Diff(messages(d1), messages(d2)); diff != "" {
				t.Errorf("diagnostics differ between runs:\n%s", diff)
			}
		})
	}
}

func TestEvaluateEndSpan(t *testing.T) {
	_, diags, _ := Parse([]byte("12 +"), WithFile("end.arith"))
	if len(diags) != 1 {
		t.Fatalf("got %d diagnostics, want 1", len(diags))
	}
	start := diags[0].Span.Start
	if start.Offset != 4 || start.File != "end.arith" {
		t.Errorf("end span = %s@%d, want end.arith@4", start.File, start.Offset)
	}
}
