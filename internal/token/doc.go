// Package token defines the token kinds and the fixed operator table for
// integer expressions.
// Invariants:
//   - Token.Text is a slice of the normalized expression (no copies).
//   - Token.Span matches Text exactly (Start..End).
//   - The operator table is constant data: precedence, associativity, and
//     arity never change after process start, so it is safe to share across
//     concurrent evaluations.
package token
