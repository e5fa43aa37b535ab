// Package parser tokenizes and evaluates arithmetic expressions.
//
// # Overview
//
// Evaluation is a two-stage pipeline. The Lexer turns source bytes into a
// complete token sequence, then the Parser walks that sequence by
// recursive descent and computes the numeric result directly. No syntax
// tree is built.
//
//	┌─────────────┐     ┌─────────────┐     ┌─────────────┐
//	│   Input     │────▶│   Lexer     │────▶│   Parser    │
//	│  (bytes)    │     │  (tokens)   │     │  (Value)    │
//	└─────────────┘     └─────────────┘     └─────────────┘
//
// # Grammar
//
//	expr   := term (('+' | '-') term)*
//	term   := factor (('*' | '/') factor)*
//	factor := NUMBER | '(' expr ')'
//
// All operators are left-associative. Literals may have any number of
// digits, and evaluation is exact over the rationals: 10 / 4 is 2.5.
//
// # Error Recovery
//
// Neither stage stops at the first problem:
//
//   - The lexer reports an illegal character and skips it.
//   - The parser reports a malformed factor and skips tokens up to and
//     including the next ';' or ')'.
//
// A factor lost to recovery evaluates to an invalid Value. Invalid values
// absorb every operator they meet, so the final result is invalid too.
// A missing ')' keeps the value of the parenthesized expression.
//
// Division by zero is fatal: Parse returns a *FatalError wrapping
// ErrDivisionByZero and no result.
//
// # Example Usage
//
//	value, diags, err := parser.Parse([]byte("3 + 5 * (10 - 4)"))
//	// value.String() == "33", diags == nil, err == nil
//
// # Thread Safety
//
// Lexer and Parser instances are not safe for concurrent use. The
// package-level functions share no state and may be called concurrently.
package parser
