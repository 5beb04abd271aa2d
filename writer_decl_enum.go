package sourcepawn

// writeEnum renders `enum [Name] [: Type] { entries }[;]`. Every
// entry, including the last, gets a trailing comma: spec.md's Open
// Question on enum formatting resolves in favor of always adding one,
// never conditionally.
func (w *Writer) writeEnum(n *Node) {
	w.writeIndent()
	w.write("enum")
	if name := n.Field("name"); name != nil {
		w.write(" ")
		w.write(name.RawText(w.source))
	}
	if typ := n.Field("type"); typ != nil {
		w.write(" : ")
		w.write(typ.RawText(w.source))
	}
	if w.settings.BraceWrappingBeforeEnum {
		w.breakl()
		w.writeIndent()
	} else {
		w.write(" ")
	}
	w.write("{")
	w.breakl()
	w.indent++

	var entries []*Node
	for _, c := range n.Children {
		if c.Kind == "enum_entry" || c.Kind == "comment" {
			entries = append(entries, c)
		}
	}
	for _, e := range entries {
		w.writeIndent()
		if e.Kind == "comment" {
			w.write(e.RawText(w.source))
			w.breakl()
			continue
		}
		w.write(e.Field("name").RawText(w.source))
		if val := e.Field("initialValue"); val != nil {
			w.write(" = ")
			w.writeExpression(val)
		}
		w.write(",")
		w.breakl()
	}
	w.indent--
	w.writeIndent()
	w.write("}")
	if w.hasChildKind(n, ";") {
		w.write(";")
	}
	w.insertBreak(n)
}

// writeEnumStruct renders `enum struct Name { members }`, grouping
// field members before method members with a single blank line
// between the two groups even when the source had none.
func (w *Writer) writeEnumStruct(n *Node) {
	w.writeIndent()
	w.write("enum struct ")
	w.write(n.Field("name").RawText(w.source))
	if w.settings.BraceWrappingBeforeEnumStruct {
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
		case "enum_struct_field":
			if prev := c.PrevSiblingKind(); prev != "{" && prev != "comment" && prev != "enum_struct_field" {
				w.breakl()
			}
			w.writeIndent()
			w.writeEnumStructField(c)
		case "enum_struct_method":
			if prev := c.PrevSiblingKind(); prev != "{" && prev != "comment" {
				w.breakl()
			}
			w.writeIndent()
			w.writeEnumStructMethod(c)
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

func (w *Writer) writeEnumStructField(n *Node) {
	w.write(n.Field("type").RawText(w.source))
	w.write(" ")
	w.write(n.Field("name").RawText(w.source))
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
	w.write(";")
	w.insertBreak(n)
}

func (w *Writer) writeEnumStructMethod(n *Node) {
	w.writeFunctionLike(n, w.settings.BraceWrappingBeforeFunction)
}

// writeStruct renders the classic `struct Name { fields };` form.
func (w *Writer) writeStruct(n *Node) {
	w.writeIndent()
	w.write("struct ")
	w.write(n.Field("name").RawText(w.source))
	w.write(" {")
	w.breakl()
	w.indent++
	for _, c := range n.Children {
		switch c.Kind {
		case "struct_field":
			w.writeIndent()
			w.writeStructField(c)
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

func (w *Writer) writeStructField(n *Node) {
	typ := n.Field("type")
	name := n.Field("name")
	for _, c := range n.Children {
		if c == typ || c == name {
			break
		}
		w.write(c.RawText(w.source))
		w.write(" ")
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
	w.write(";")
	w.insertBreak(n)
}

// writeStructDeclaration renders the constructor-style
// `public Name = { key = expr, … };` form (spec.md §4.8).
func (w *Writer) writeStructDeclaration(n *Node) {
	w.writeIndent()
	w.write("public ")
	w.write(n.Field("name").RawText(w.source))
	w.write(" = {")
	w.breakl()
	w.indent++
	var fields []*Node
	for _, c := range n.Children {
		if c.Kind == "struct_constructor_field" {
			fields = append(fields, c)
		}
	}
	for i, f := range fields {
		w.writeIndent()
		w.write(f.Field("name").RawText(w.source))
		w.write(" = ")
		w.writeExpression(f.Field("value"))
		if i != len(fields)-1 {
			w.write(",")
		}
		w.breakl()
	}
	w.indent--
	w.writeIndent()
	w.write("};")
	w.insertBreak(n)
}

func (w *Writer) hasChildKind(n *Node, kind string) bool {
	for _, c := range n.Children {
		if c.Kind == kind {
			return true
		}
	}
	return false
}
