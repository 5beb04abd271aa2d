package sourcepawn

import "strings"

// maxLineWidth is the byte-length threshold past which a multi-symbol
// declaration list breaks onto one aligned line per symbol, per
// spec.md §4.6.
const maxLineWidth = 80

// declList is the common shape shared by variable_declaration_statement,
// old_variable_declaration_statement, global_variable_declaration and
// old_global_variable_declaration: optional qualifiers, an optional
// shared type (absent for the old-style statements, whose type if any
// rides per-entry as "old_type"), and one or more declaration entries.
type declList struct {
	qualifiers []*Node
	typ        *Node
	entries    []*Node
}

func splitDeclList(n *Node) declList {
	var d declList
	for _, c := range n.Children {
		switch c.Kind {
		case "variable_declaration", "old_variable_declaration":
			d.entries = append(d.entries, c)
		case ",", ";":
			continue
		default:
			if c == n.Field("type") {
				d.typ = c
				continue
			}
			d.qualifiers = append(d.qualifiers, c)
		}
	}
	return d
}

func (w *Writer) writeVariableDeclarationStatement(n *Node) {
	w.writeIndent()
	w.writeVariableDeclarationStatementInline(n)
}

func (w *Writer) writeVariableDeclarationStatementInline(n *Node) {
	w.writeDeclList(splitDeclList(n))
	w.write(";")
	w.insertBreak(n)
}

func (w *Writer) writeOldVariableDeclarationStatement(n *Node) {
	w.writeIndent()
	w.writeOldVariableDeclarationStatementInline(n)
}

func (w *Writer) writeOldVariableDeclarationStatementInline(n *Node) {
	w.writeDeclList(splitDeclList(n))
	w.write(";")
	w.insertBreak(n)
}

func (w *Writer) writeGlobalVariableDeclaration(n *Node) {
	w.writeDeclList(splitDeclList(n))
	w.write(";")
	w.insertBreak(n)
}

func (w *Writer) writeOldGlobalVariableDeclaration(n *Node) {
	w.writeDeclList(splitDeclList(n))
	w.write(";")
	w.insertBreak(n)
}

// writeDeclEntry writes a single variable_declaration/old_variable_declaration
// with no shared prefix or terminator, for contexts like a for-loop's
// init clause where only one symbol is ever declared.
func (w *Writer) writeDeclEntry(n *Node) {
	w.write(w.declPrefix(n))
	w.writeEntryText(n)
}

// declPrefix renders an entry's own old_type prefix, if any (the
// old-style declaration grammar carries its type per entry rather
// than shared across the list).
func (w *Writer) declPrefix(n *Node) string {
	if t := n.Field("type"); t != nil {
		return t.RawText(w.source) + " "
	}
	return ""
}

func (w *Writer) writeEntryText(n *Node) {
	w.write(n.Field("name").RawText(w.source))
	for _, c := range n.Children {
		if c.Kind == "dimension" || c.Kind == "fixed_dimension" {
			w.write("[")
			if len(c.Children) > 0 {
				w.writeExpression(c.Children[0])
			}
			w.write("]")
		}
	}
	if init := n.Field("initialValue"); init != nil {
		w.write(" = ")
		if init.Kind == "dynamic_array" {
			w.writeDynamicArray(init)
		} else {
			w.writeExpression(init)
		}
	}
}

// writeDeclList renders a qualifier/type prefix followed by one or
// more comma-separated declarations, switching to one-symbol-per-line
// alignment when the single-line rendering would exceed maxLineWidth
// (spec.md §4.6).
func (w *Writer) writeDeclList(d declList) {
	prefix := w.renderDeclPrefix(d)
	w.write(prefix)

	entryTexts := make([]string, len(d.entries))
	for i, e := range d.entries {
		entryTexts[i] = w.renderEntry(e)
	}

	singleLine := strings.Join(entryTexts, ", ")
	col := w.indent*len(w.indentString) + len(prefix) + len(singleLine) + 1 // +1 for ";"
	if len(d.entries) <= 1 || col <= maxLineWidth {
		w.write(singleLine)
		return
	}

	maxNameLen := 0
	for _, e := range d.entries {
		if l := len(e.Field("name").RawText(w.source)); l > maxNameLen {
			maxNameLen = l
		}
	}
	pad := strings.Repeat(" ", len(prefix))

	for i, e := range d.entries {
		if i > 0 {
			w.breakl()
			w.writeIndent()
			w.write(pad)
		}
		name := e.Field("name").RawText(w.source)
		w.write(name)
		for _, c := range e.Children {
			if c.Kind == "dimension" || c.Kind == "fixed_dimension" {
				w.write("[")
				if len(c.Children) > 0 {
					w.writeExpression(c.Children[0])
				}
				w.write("]")
			}
		}
		if init := e.Field("initialValue"); init != nil {
			w.write(strings.Repeat(" ", maxNameLen-len(name)))
			w.write(" = ")
			if init.Kind == "dynamic_array" {
				w.writeDynamicArray(init)
			} else {
				w.writeExpression(init)
			}
		}
		if i != len(d.entries)-1 {
			w.write(",")
		}
	}
}

func (w *Writer) renderDeclPrefix(d declList) string {
	var b strings.Builder
	for _, q := range d.qualifiers {
		b.WriteString(q.RawText(w.source))
		b.WriteString(" ")
	}
	if d.typ != nil {
		b.WriteString(d.typ.RawText(w.source))
		b.WriteString(" ")
	}
	return b.String()
}

// renderEntry renders a declaration entry into an isolated buffer so
// writeDeclList can measure its width before committing it to the
// real output.
func (w *Writer) renderEntry(n *Node) string {
	mw := &Writer{
		source:          w.source,
		settings:        w.settings,
		indentString:    w.indentString,
		statementKinds:  w.statementKinds,
		expressionKinds: w.expressionKinds,
		literalKinds:    w.literalKinds,
	}
	mw.writeEntryText(n)
	return mw.buf.String()
}
