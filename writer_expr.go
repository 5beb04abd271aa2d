package sourcepawn

import "fortio.org/log"

// writeExpression dispatches on kind with no precedence reformatting:
// parentheses present in the CST are always preserved (spec.md §4.4).
func (w *Writer) writeExpression(n *Node) {
	switch n.Kind {
	case "symbol", "null", "this", "int_literal", "float_literal", "char_literal",
		"string_literal", "bool_literal":
		w.write(n.RawText(w.source))

	case "binary_expression":
		w.writeExpression(n.Field("left"))
		w.write(" ")
		w.write(n.Field("operator").RawText(w.source))
		w.write(" ")
		w.writeExpression(n.Field("right"))

	case "assignment_expression":
		w.writeExpression(n.Field("left"))
		w.write(" ")
		w.write(n.Field("operator").RawText(w.source))
		w.write(" ")
		right := n.Field("right")
		if right.Kind == "dynamic_array" {
			w.writeDynamicArray(right)
		} else {
			w.writeExpression(right)
		}

	case "array_indexed_access":
		arr := n.Field("array")
		if arr.Kind == "array_indexed_access" {
			w.writeExpression(arr)
		} else {
			w.write(arr.RawText(w.source))
		}
		w.write("[")
		w.writeExpression(n.Field("index"))
		w.write("]")

	case "field_access":
		w.writeExpression(n.Field("target"))
		w.write(".")
		w.write(n.Field("field").RawText(w.source))

	case "scope_access":
		w.writeExpression(n.Field("scope"))
		w.write("::")
		w.write(n.Field("field").RawText(w.source))

	case "new_instance":
		w.write("new ")
		w.write(n.Field("class").RawText(w.source))
		w.writeArguments(n.Field("arguments"))

	case "function_call":
		w.writeExpression(n.Field("function"))
		w.writeArguments(n.Field("arguments"))

	case "unary_expression":
		w.write(n.Field("operator").RawText(w.source))
		w.writeExpression(n.Field("argument"))

	case "update_expression":
		arg := n.Field("argument")
		op := n.Field("operator")
		if op.EndPoint.Row < arg.StartPoint.Row ||
			(op.EndPoint.Row == arg.StartPoint.Row && op.EndPoint.Col <= arg.StartPoint.Col) {
			w.write(op.RawText(w.source))
			w.writeExpression(arg)
		} else {
			w.writeExpression(arg)
			w.write(op.RawText(w.source))
		}

	case "parenthesized_expression":
		w.write("(")
		inner := n.Field("expression")
		w.writeExpression(inner)
		w.write(")")

	case "comma_expression":
		w.writeExpression(n.Field("left"))
		w.write(", ")
		w.writeExpression(n.Field("right"))

	case "concatenated_string":
		w.write(n.Field("left").RawText(w.source))
		w.write(" ... ")
		right := n.Field("right")
		if right.Kind == "concatenated_string" {
			w.writeExpression(right)
		} else {
			w.write(right.RawText(w.source))
		}

	case "ternary_expression":
		w.writeExpression(n.Field("condition"))
		w.write(" ? ")
		w.writeExpression(n.Field("consequence"))
		w.write(" : ")
		w.writeExpression(n.Field("alternative"))

	case "view_as":
		w.write("view_as<")
		w.write(n.Field("type").RawText(w.source))
		w.write(">(")
		w.writeExpression(n.Field("value"))
		w.write(")")

	case "old_type_cast":
		w.write(n.Field("type").RawText(w.source))
		w.write(" ")
		w.writeExpression(n.Field("value"))

	case "array_literal":
		w.write("{ ")
		for _, c := range n.Children {
			switch c.Kind {
			case "{", "}":
				continue
			case ",":
				w.write(", ")
			default:
				w.writeExpression(c)
			}
		}
		w.write(" }")

	case "sizeof_expression":
		w.write("sizeof ")
		for _, c := range n.Children {
			if c.Kind == "dimension" {
				w.write("[]")
			} else {
				w.writeExpression(c)
			}
		}

	case "dynamic_array":
		w.writeDynamicArray(n)

	default:
		log.Warnf("unhandled CST node kind %q in writeExpression", n.Kind)
		w.write(n.RawText(w.source))
	}
}

// writeDynamicArray renders the `new Type[expr]…` right-hand side of
// an assignment, grounded on original_source's write_dynamic_array.
func (w *Writer) writeDynamicArray(n *Node) {
	w.write("new ")
	w.write(n.Field("type").RawText(w.source))
	for _, c := range n.Children {
		if c.Kind != "fixed_dimension" {
			continue
		}
		w.write("[")
		if len(c.Children) > 0 {
			w.writeExpression(c.Children[0])
		}
		w.write("]")
	}
}

// writeArguments renders a parenthesized, comma-separated argument
// list (spec.md §4.4's "argument list" rule), including the
// trailing-comma strip when the grammar allowed one.
func (w *Writer) writeArguments(n *Node) {
	for _, c := range n.Children {
		switch c.Kind {
		case "(":
			w.write("(")
		case ")":
			if w.endsWith(", ") {
				w.popSuffix(2)
			}
			w.write(")")
		case ",":
			w.write(", ")
		case "symbol", "ignore_argument":
			w.write(c.RawText(w.source))
		case "named_arg":
			w.writeNamedArg(c)
		default:
			if w.isExpressionKind(c.Kind) {
				w.writeExpression(c)
			} else {
				w.write(c.RawText(w.source))
			}
		}
	}
}

func (w *Writer) writeNamedArg(n *Node) {
	w.write(".")
	w.write(n.Field("name").RawText(w.source))
	w.write(" = ")
	w.writeExpression(n.Field("value"))
}
