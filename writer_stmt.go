package sourcepawn

// writeStatement dispatches a statement-kind node to its handler. Every
// branch ends by calling insertBreak so trailing whitespace is decided
// in exactly one place (spec.md §4.3/§4.5).
func (w *Writer) writeStatement(n *Node) {
	switch n.Kind {
	case "block":
		w.writeBlock(n)
	case "variable_declaration_statement":
		w.writeVariableDeclarationStatement(n)
	case "old_variable_declaration_statement":
		w.writeOldVariableDeclarationStatement(n)
	case "for_loop":
		w.writeForLoop(n)
	case "while_loop":
		w.writeWhileLoop(n)
	case "do_while_loop":
		w.writeDoWhileLoop(n)
	case "condition_statement":
		w.writeCondition(n)
	case "switch_statement":
		w.writeSwitch(n)
	case "return_statement":
		w.writeReturn(n)
	case "delete_statement":
		w.writeDelete(n)
	case "break_statement", "continue_statement":
		w.writeIndent()
		w.write(n.RawText(w.source))
		w.write(";")
		w.insertBreak(n)
	case "expression_statement":
		w.writeExpressionStatement(n)
	case "comment":
		w.writeComment(n)
	default:
		w.writeIndent()
		w.write(n.RawText(w.source))
		w.insertBreak(n)
	}
}

// writeBlock renders `{ <statements> }`, one statement per line,
// recursing into writeStatement/writeComment for each body child.
func (w *Writer) writeBlock(n *Node) {
	w.write("{")
	w.breakl()
	w.indent++
	for _, c := range n.Children {
		switch c.Kind {
		case "{", "}":
			continue
		default:
			w.writeIndent()
			w.writeBodyMember(c)
		}
	}
	w.indent--
	w.writeIndent()
	w.write("}")
}

// writeBodyMember writes one child of a block/case body without the
// leading indent (already written by the caller), dispatching on
// whether it's a statement, comment, or bare declaration.
func (w *Writer) writeBodyMember(c *Node) {
	switch {
	case c.Kind == "comment":
		w.writeCommentInline(c)
	case w.isStatementKind(c.Kind):
		w.writeStatementInline(c)
	default:
		w.write(c.RawText(w.source))
		w.insertBreak(c)
	}
}

// writeCommentInline/writeStatementInline write a node's content
// without re-emitting the indent writeBlock already wrote.
func (w *Writer) writeCommentInline(n *Node) {
	w.write(n.RawText(w.source))
	w.insertBreak(n)
}

func (w *Writer) writeStatementInline(n *Node) {
	switch n.Kind {
	case "block":
		w.writeBlock(n)
		w.insertBreak(n)
	case "variable_declaration_statement":
		w.writeVariableDeclarationStatementInline(n)
	case "old_variable_declaration_statement":
		w.writeOldVariableDeclarationStatementInline(n)
	case "for_loop":
		w.writeForLoopInline(n)
	case "while_loop":
		w.writeWhileLoopInline(n)
	case "do_while_loop":
		w.writeDoWhileLoopInline(n)
	case "condition_statement":
		w.writeConditionInline(n)
	case "switch_statement":
		w.writeSwitchInline(n)
	case "return_statement":
		w.writeReturnInline(n)
	case "delete_statement":
		w.writeDeleteInline(n)
	case "break_statement", "continue_statement":
		w.write(n.RawText(w.source))
		w.write(";")
		w.insertBreak(n)
	case "expression_statement":
		w.writeExpressionStatementInline(n)
	default:
		w.write(n.RawText(w.source))
		w.insertBreak(n)
	}
}

func (w *Writer) writeExpressionStatement(n *Node) {
	w.writeIndent()
	w.writeExpressionStatementInline(n)
}

func (w *Writer) writeExpressionStatementInline(n *Node) {
	w.writeExpression(n.Field("expression"))
	w.write(";")
	w.insertBreak(n)
}

func (w *Writer) writeForLoop(n *Node) {
	w.writeIndent()
	w.writeForLoopInline(n)
}

func (w *Writer) writeForLoopInline(n *Node) {
	w.write("for (")
	if init := n.Field("init"); init != nil {
		w.writeForClause(init)
	}
	w.write("; ")
	if cond := n.Field("condition"); cond != nil {
		w.writeExpression(cond)
	}
	w.write("; ")
	if upd := n.Field("update"); upd != nil {
		w.writeExpression(upd)
	}
	w.write(")")
	w.writeLoopBody(n.Field("body"))
}

// writeForClause writes a for-loop's init/update slot, which may be a
// bare expression or a variable declaration without its own semicolon.
func (w *Writer) writeForClause(n *Node) {
	switch n.Kind {
	case "variable_declaration", "old_variable_declaration":
		w.writeDeclEntry(n)
	default:
		w.writeExpression(n)
	}
}

func (w *Writer) writeWhileLoop(n *Node) {
	w.writeIndent()
	w.writeWhileLoopInline(n)
}

func (w *Writer) writeWhileLoopInline(n *Node) {
	w.write("while (")
	w.writeExpression(n.Field("condition"))
	w.write(")")
	w.writeLoopBody(n.Field("body"))
}

func (w *Writer) writeDoWhileLoop(n *Node) {
	w.writeIndent()
	w.writeDoWhileLoopInline(n)
}

func (w *Writer) writeDoWhileLoopInline(n *Node) {
	w.write("do")
	w.writeLoopBody(n.Field("body"))
	w.write(" while (")
	w.writeExpression(n.Field("condition"))
	w.write(");")
	w.insertBreak(n)
}

// writeLoopBody renders a loop body either brace-wrapped on its own
// line or, when BraceWrappingBeforeLoop is false, on the same line as
// the loop header (spec.md §4.5's brace-wrapping settings).
func (w *Writer) writeLoopBody(body *Node) {
	if body.Kind != "block" {
		w.breakl()
		w.indent++
		w.writeIndent()
		w.writeStatementInline(body)
		w.indent--
		return
	}
	if w.settings.BraceWrappingBeforeLoop {
		w.breakl()
		w.writeIndent()
	} else {
		w.write(" ")
	}
	w.writeBlock(body)
}

func (w *Writer) writeCondition(n *Node) {
	w.writeIndent()
	w.writeConditionInline(n)
}

// writeConditionInline renders `if (...) <body> [else <alt>]`,
// recursing through writeConditionChain for `else if` chains, then
// calling insertBreak exactly once, on the outermost node — a nested
// `else if`'s own NextSibling is always nil (it's the last child of
// its enclosing condition_statement, not of the block the whole chain
// lives in), so only the chain's root has the sibling context
// insertBreak needs (spec.md §4.5).
func (w *Writer) writeConditionInline(n *Node) {
	w.writeConditionChain(n)
	w.insertBreak(n)
}

func (w *Writer) writeConditionChain(n *Node) {
	w.write("if (")
	w.writeExpression(n.Field("condition"))
	w.write(")")
	body := n.Field("consequence")
	w.writeConditionBody(body)
	alt := n.Field("alternative")
	if alt == nil {
		return
	}
	if body.Kind == "block" && w.settings.BraceWrappingBeforeCondition {
		w.breakl()
		w.writeIndent()
	} else {
		w.write(" ")
	}
	w.write("else")
	if alt.Kind == "condition_statement" {
		w.write(" ")
		w.writeConditionChain(alt)
		return
	}
	w.writeConditionBody(alt)
}

// writeConditionBody writes a consequence/alternative body with no
// trailing newline: the caller decides what follows (another "else",
// or the statement's own insertBreak).
func (w *Writer) writeConditionBody(body *Node) {
	if body.Kind != "block" {
		w.breakl()
		w.indent++
		w.writeIndent()
		w.writeStatementInline(body)
		w.indent--
		return
	}
	if w.settings.BraceWrappingBeforeCondition {
		w.breakl()
		w.writeIndent()
	} else {
		w.write(" ")
	}
	w.writeBlock(body)
}

func (w *Writer) writeSwitch(n *Node) {
	w.writeIndent()
	w.writeSwitchInline(n)
}

func (w *Writer) writeSwitchInline(n *Node) {
	w.write("switch (")
	w.writeExpression(n.Field("condition"))
	w.write(")")
	if w.settings.BraceWrappingBeforeCondition {
		w.breakl()
		w.writeIndent()
	} else {
		w.write(" ")
	}
	w.write("{")
	w.breakl()
	w.indent++
	for _, c := range n.Children {
		switch c.Kind {
		case "switch_case", "switch_default_case":
			w.writeIndent()
			w.writeSwitchCase(c)
		case "comment":
			w.writeIndent()
			w.writeComment(c)
		}
	}
	w.indent--
	w.writeIndent()
	w.write("}")
	w.insertBreak(n)
}

// writeSwitchCaseValues renders a case's comma-separated value list
// (spec.md §4.5), re-spacing the separator to ", " instead of copying
// the synthetic switch_case_values span verbatim.
func (w *Writer) writeSwitchCaseValues(n *Node) {
	for _, c := range n.Children {
		if c.Kind == "," {
			w.write(", ")
			continue
		}
		w.writeExpression(c)
	}
}

func (w *Writer) writeSwitchCase(n *Node) {
	if n.Kind == "switch_default_case" {
		w.write("default:")
	} else {
		w.write("case ")
		w.writeSwitchCaseValues(n.Field("values"))
		w.write(":")
	}
	body := n.Field("body")
	if body == nil {
		w.breakl()
		return
	}
	if body.Kind == "block" {
		w.write(" ")
		w.writeBlock(body)
		w.breakl()
		return
	}
	w.breakl()
	w.indent++
	for _, c := range body.Children {
		w.writeIndent()
		w.writeBodyMember(c)
	}
	w.indent--
}

func (w *Writer) writeReturn(n *Node) {
	w.writeIndent()
	w.writeReturnInline(n)
}

func (w *Writer) writeReturnInline(n *Node) {
	w.write("return")
	if val := n.Field("value"); val != nil {
		w.write(" ")
		w.writeExpression(val)
	}
	w.write(";")
	w.insertBreak(n)
}

func (w *Writer) writeDelete(n *Node) {
	w.writeIndent()
	w.writeDeleteInline(n)
}

func (w *Writer) writeDeleteInline(n *Node) {
	w.write("delete ")
	w.writeExpression(n.Field("value"))
	w.write(";")
	w.insertBreak(n)
}
