package sourcepawn

// writeFunctionDeclaration and writeFunctionDefinition share the same
// header shape; only the trailing body-vs-semicolon differs, captured
// by writeFunctionLike.
func (w *Writer) writeFunctionDeclaration(n *Node) {
	w.writeIndent()
	w.writeFunctionLike(n, w.settings.BraceWrappingBeforeFunction)
}

func (w *Writer) writeFunctionDefinition(n *Node) {
	w.writeIndent()
	w.writeFunctionLike(n, w.settings.BraceWrappingBeforeFunction)
}

func (w *Writer) writeFunctionLike(n *Node, braceWrap bool) {
	typ := n.Field("type")
	name := n.Field("name")
	args := n.Field("arguments")
	body := n.Field("body")

	for _, c := range n.Children {
		if c == typ || c == name || c == args || c == body {
			break
		}
		switch c.Kind {
		case "dimension", "fixed_dimension", ";":
			continue
		}
		w.write(c.RawText(w.source))
		w.write(" ")
	}
	w.write(typ.RawText(w.source))
	w.write(" ")
	w.write(name.RawText(w.source))
	w.writeArgumentDeclarations(args)

	if body != nil {
		if braceWrap {
			w.breakl()
			w.writeIndent()
		} else {
			w.write(" ")
		}
		w.writeBlock(body)
	} else {
		w.write(";")
	}
	w.insertBreak(n)
}

// writeArgumentDeclarations renders a `(arg, arg, ...)` parameter list,
// including the "const"/"&"/default-value nuances of spec.md §4.7.
func (w *Writer) writeArgumentDeclarations(n *Node) {
	for _, c := range n.Children {
		switch c.Kind {
		case "(":
			w.write("(")
		case ")":
			w.write(")")
		case ",":
			w.write(", ")
		case "...":
			w.write("...")
		case "argument_declaration":
			w.writeArgumentDeclaration(c)
		}
	}
}

func (w *Writer) writeArgumentDeclaration(n *Node) {
	typ := n.Field("type")
	name := n.Field("name")
	init := n.Field("initialValue")
	for _, c := range n.Children {
		if c == typ || c == name || c == init {
			break
		}
		switch c.Kind {
		case "dimension", "fixed_dimension":
			continue
		}
		w.write(c.RawText(w.source))
	}
	w.write(typ.RawText(w.source))
	w.write(" ")
	w.write(name.RawText(w.source))
	for _, c := range n.Children {
		if c.Kind == "dimension" {
			w.write("[]")
		} else if c.Kind == "fixed_dimension" {
			w.write("[")
			if len(c.Children) > 0 {
				w.writeExpression(c.Children[0])
			}
			w.write("]")
		}
	}
	if init != nil {
		w.write(" = ")
		w.writeExpression(init)
	}
}
