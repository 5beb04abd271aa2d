package sourcepawn

// writeTypedef renders `typedef Name = function Type(args);`.
func (w *Writer) writeTypedef(n *Node) {
	w.writeIndent()
	w.write("typedef ")
	w.write(n.Field("name").RawText(w.source))
	w.write(" = ")
	w.writeTypedefExpression(n.Field("expression"))
	w.write(";")
	w.insertBreak(n)
}

func (w *Writer) writeTypedefExpression(n *Node) {
	w.write("function ")
	w.write(n.Field("type").RawText(w.source))
	w.writeArgumentDeclarations(n.Field("arguments"))
}

// writeTypeset renders `typeset Name { function sig(...); ... }`.
func (w *Writer) writeTypeset(n *Node) {
	w.writeIndent()
	w.write("typeset ")
	w.write(n.Field("name").RawText(w.source))
	if w.settings.BraceWrappingBeforeTypeset {
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
		case "typedef_expression":
			w.writeIndent()
			w.writeTypedefExpression(c)
			w.write(";")
			w.breakl()
		case "comment":
			w.writeIndent()
			w.writeComment(c)
		}
	}
	w.indent--
	w.writeIndent()
	w.write("};")
	w.insertBreak(n)
}

// writeFunctag renders `functag [public] Type Name(args);`.
func (w *Writer) writeFunctag(n *Node) {
	w.writeIndent()
	typ := n.Field("type")
	name := n.Field("name")
	args := n.Field("arguments")
	w.write("functag ")
	for _, c := range n.Children {
		if c == typ || c == name || c == args {
			break
		}
		w.write(c.RawText(w.source))
		w.write(" ")
	}
	w.write(typ.RawText(w.source))
	w.write(" ")
	w.write(name.RawText(w.source))
	w.writeArgumentDeclarations(args)
	w.write(";")
	w.insertBreak(n)
}

// writeFuncenum renders `funcenum Name { [public] Type(args), ... };`.
func (w *Writer) writeFuncenum(n *Node) {
	w.writeIndent()
	w.write("funcenum ")
	w.write(n.Field("name").RawText(w.source))
	if w.settings.BraceWrappingBeforeFuncenum {
		w.breakl()
		w.writeIndent()
	} else {
		w.write(" ")
	}
	w.write("{")
	w.breakl()
	w.indent++
	var members []*Node
	for _, c := range n.Children {
		if c.Kind == "funcenum_member" || c.Kind == "comment" {
			members = append(members, c)
		}
	}
	for i, m := range members {
		w.writeIndent()
		if m.Kind == "comment" {
			w.write(m.RawText(w.source))
			w.breakl()
			continue
		}
		w.writeFuncenumMember(m)
		if i != len(members)-1 {
			w.write(",")
		}
		w.breakl()
	}
	w.indent--
	w.writeIndent()
	w.write("};")
	w.insertBreak(n)
}

func (w *Writer) writeFuncenumMember(n *Node) {
	typ := n.Field("type")
	args := n.Field("arguments")
	for _, c := range n.Children {
		if c == typ || c == args {
			break
		}
		w.write(c.RawText(w.source))
		w.write(" ")
	}
	w.write(typ.RawText(w.source))
	w.writeArgumentDeclarations(args)
}
