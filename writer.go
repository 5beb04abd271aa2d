package sourcepawn

import (
	"bytes"
	"strings"

	fortiosets "fortio.org/sets"
)

// Writer accumulates the formatted output for a single Format call.
// It is created fresh per call and discarded afterward (spec.md §3's
// "Lifecycle"); nothing about it is safe to share across calls or
// goroutines.
type Writer struct {
	buf    bytes.Buffer
	source []byte

	indent       int
	indentString string

	// skip is decremented by the top-level/statement-list dispatchers
	// when a handler has greedily consumed a trailing sibling (e.g. an
	// inline comment attached to the same line as a declaration).
	skip int

	settings *Settings

	statementKinds  fortiosets.Set[string]
	expressionKinds fortiosets.Set[string]
	literalKinds    fortiosets.Set[string]
}

func newWriter(source []byte, settings *Settings) *Writer {
	return &Writer{
		source:       source,
		indentString: settings.IndentString,
		settings:     settings,

		statementKinds: fortiosets.New(
			"block", "variable_declaration_statement", "old_variable_declaration_statement",
			"for_loop", "while_loop", "do_while_loop", "break_statement", "continue_statement",
			"condition_statement", "switch_statement", "return_statement", "delete_statement",
			"expression_statement",
		),
		expressionKinds: fortiosets.New(
			"assignment_expression", "function_call", "array_indexed_access", "ternary_expression",
			"field_access", "scope_access", "binary_expression", "unary_expression", "update_expression",
			"sizeof_expression", "view_as", "old_type_cast", "symbol", "parenthesized_expression",
			"this", "new_instance",
		),
		literalKinds: fortiosets.New(
			"int_literal", "float_literal", "char_literal", "string_literal", "concatenated_string",
			"bool_literal", "array_literal", "null",
		),
	}
}

func (w *Writer) write(s string)      { w.buf.WriteString(s) }
func (w *Writer) writeByte(b byte)    { w.buf.WriteByte(b) }
func (w *Writer) writeIndent()        {
	for i := 0; i < w.indent; i++ {
		w.buf.WriteString(w.indentString)
	}
}

// breakl mirrors the original source's helper of the same name: emit
// a newline unconditionally. Used for brace placement, not for
// statement trailing whitespace (that's insertBreak).
func (w *Writer) breakl() { w.buf.WriteByte('\n') }

func (w *Writer) endsWith(suffix string) bool {
	b := w.buf.Bytes()
	if len(b) < len(suffix) {
		return false
	}
	return string(b[len(b)-len(suffix):]) == suffix
}

// popSuffix removes the last n bytes already written, used to retract
// a trailing ", " before closing a parenthesized argument list
// (spec.md §4.4's argument-list rule).
func (w *Writer) popSuffix(n int) {
	if w.buf.Len() < n {
		n = w.buf.Len()
	}
	w.buf.Truncate(w.buf.Len() - n)
}

func (w *Writer) isExpressionKind(kind string) bool {
	return w.expressionKinds.Has(kind) || w.literalKinds.Has(kind)
}

func (w *Writer) isStatementKind(kind string) bool {
	return w.statementKinds.Has(kind)
}

// insertBreak is the single source of truth for post-statement
// whitespace (spec.md §4.3/§9 "Trivia coupling"). Every statement and
// declaration handler calls it instead of writing raw "\n"s.
func (w *Writer) insertBreak(n *Node) {
	next := n.NextSibling()
	if next == nil {
		w.breakl()
		return
	}
	if next.Kind == "comment" && next.StartPoint.Row == n.EndPoint.Row {
		return
	}
	if blanks, ok := w.breaksBeforeFor(next.Kind); ok && n.Kind != "comment" &&
		!strings.HasPrefix(n.Kind, "preproc_") &&
		!(next.Kind == "methodmap" && next.PrevSiblingKind() == "alias_declaration") {
		w.breakl()
		for i := 0; i < blanks; i++ {
			w.breakl()
		}
		return
	}
	w.breakl()
	if next.StartPoint.Row-n.EndPoint.Row > 1 {
		w.breakl()
	}
}

// breaksBeforeFor reports the configured blank-line count that must
// precede a top-level construct of kind, per spec.md §8 scenario E:
// these settings are a floor, not a preservation of whatever gap the
// source happened to have.
func (w *Writer) breaksBeforeFor(kind string) (int, bool) {
	switch kind {
	case "function_declaration":
		return w.settings.BreaksBeforeFunctionDecl, true
	case "function_definition":
		return w.settings.BreaksBeforeFunctionDef, true
	case "enum":
		return w.settings.BreaksBeforeEnum, true
	case "enum_struct":
		return w.settings.BreaksBeforeEnumStruct, true
	case "methodmap":
		return w.settings.BreaksBeforeMethodmap, true
	default:
		return 0, false
	}
}
