package sourcepawn

import "fmt"

// LexError is a category-2 failure (spec.md §7.2): the lexer could
// not produce a token stream at all, e.g. an unterminated string or
// block comment. It is not the same as a syntax error: a malformed
// but tokenizable program still parses, just with HasError set.
type LexError struct {
	Message string
	At      Point
}

func (e *LexError) Error() string {
	return fmt.Sprintf("%s @ %s", e.Message, e.At)
}
