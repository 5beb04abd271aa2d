package sourcepawn

// writeMethodmap renders `methodmap Name [< Parent] [__nullable__] { members }[;]`.
func (w *Writer) writeMethodmap(n *Node) {
	w.writeIndent()
	w.write("methodmap ")
	w.write(n.Field("name").RawText(w.source))
	if parent := n.Field("parent"); parent != nil {
		w.write(" < ")
		w.write(parent.RawText(w.source))
	}
	if w.hasChildKind(n, "__nullable__") {
		w.write(" __nullable__")
	}
	if w.settings.BraceWrappingBeforeMethodmap {
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
		case "methodmap_method", "methodmap_native":
			w.writeIndent()
			w.writeMethodmapMethodLike(c)
		case "methodmap_alias":
			w.writeIndent()
			w.writeMethodmapAlias(c)
		case "methodmap_property":
			w.writeIndent()
			w.writeMethodmapProperty(c)
		case "comment":
			w.writeIndent()
			w.writeComment(c)
		}
	}
	w.indent--
	w.writeIndent()
	w.write("}")
	if w.hasChildKind(n, ";") {
		w.write(";")
	}
	w.insertBreak(n)
}

func (w *Writer) writeMethodmapMethodLike(n *Node) {
	typ := n.Field("type")
	name := n.Field("name")
	args := n.Field("arguments")
	body := n.Field("body")
	for _, c := range n.Children {
		if c == typ || c == name || c == args || c == body {
			break
		}
		if c.Kind == "~" {
			w.write("~")
			continue
		}
		w.write(c.RawText(w.source))
		w.write(" ")
	}
	if typ != nil {
		w.write(typ.RawText(w.source))
		w.write(" ")
	}
	w.write(name.RawText(w.source))
	w.writeArgumentDeclarations(args)
	if body != nil {
		if w.settings.BraceWrappingBeforeFunction {
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

func (w *Writer) writeMethodmapAlias(n *Node) {
	typ := n.Field("type")
	name := n.Field("name")
	args := n.Field("arguments")
	value := n.Field("value")
	for _, c := range n.Children {
		if c == typ || c == name || c == args || c == value {
			break
		}
		w.write(c.RawText(w.source))
		w.write(" ")
	}
	if typ != nil {
		w.write(typ.RawText(w.source))
		w.write(" ")
	}
	w.write(name.RawText(w.source))
	w.writeArgumentDeclarations(args)
	w.write(" = ")
	w.writeExpression(value)
	w.write(";")
	w.insertBreak(n)
}

func (w *Writer) writeMethodmapProperty(n *Node) {
	w.write("property ")
	w.write(n.Field("type").RawText(w.source))
	w.write(" ")
	w.write(n.Field("name").RawText(w.source))
	if w.settings.BraceWrappingBeforeMethodmapProperty {
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
		case "methodmap_property_getter":
			w.writeIndent()
			w.writeMethodmapPropertyAccessor(c, "get")
		case "methodmap_property_setter":
			w.writeIndent()
			w.writeMethodmapPropertyAccessor(c, "set")
		case "methodmap_property_alias":
			w.writeIndent()
			w.writeMethodmapPropertyAlias(c)
		}
	}
	w.indent--
	w.writeIndent()
	w.write("}")
	w.insertBreak(n)
}

func (w *Writer) writeMethodmapPropertyAccessor(n *Node, keyword string) {
	if w.hasChildKind(n, "native") {
		w.write("native ")
	}
	w.write(keyword)
	w.writeArgumentDeclarations(n.Field("arguments"))
	if body := n.Field("body"); body != nil {
		w.write(" ")
		w.writeBlock(body)
	} else {
		w.write(";")
	}
	w.insertBreak(n)
}

func (w *Writer) writeMethodmapPropertyAlias(n *Node) {
	w.write("public ")
	w.write(n.Field("name").RawText(w.source))
	w.write(" = ")
	w.writeExpression(n.Field("value"))
	w.write(";")
	w.insertBreak(n)
}
