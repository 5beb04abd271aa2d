package sourcepawn

// writeAssertion renders `assert(...)`/`static_assert(...)`
// (spec.md §4.11).
func (w *Writer) writeAssertion(n *Node) {
	w.writeIndent()
	args := n.Field("arguments")
	for _, c := range n.Children {
		if c == args {
			break
		}
		w.write(c.RawText(w.source))
	}
	w.writeArguments(args)
	w.write(";")
	w.insertBreak(n)
}

// writeHardcodedSymbol renders `using Name(.Name)*;`.
func (w *Writer) writeHardcodedSymbol(n *Node) {
	w.writeIndent()
	for _, c := range n.Children {
		if c.Kind == ";" {
			continue
		}
		w.write(c.RawText(w.source))
	}
	w.write(";")
	w.insertBreak(n)
}

// writeAliasDeclaration renders `alias Name;`.
func (w *Writer) writeAliasDeclaration(n *Node) {
	w.writeIndent()
	w.write("alias ")
	w.write(n.Field("name").RawText(w.source))
	w.write(";")
	w.insertBreak(n)
}

// writeAliasAssignment renders `alias Name = expr;`.
func (w *Writer) writeAliasAssignment(n *Node) {
	w.writeIndent()
	w.write("alias ")
	w.write(n.Field("name").RawText(w.source))
	w.write(" = ")
	w.writeExpression(n.Field("value"))
	w.write(";")
	w.insertBreak(n)
}
