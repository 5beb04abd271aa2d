package sourcepawn

import "strings"

// writeComment writes a comment node, indenting it on its own line
// unless the node immediately before it ended on the same source row
// (in which case a single indent-unit separates it from that node),
// per spec.md §4.3.
func (w *Writer) writeComment(n *Node) {
	prev := n.PrevSibling()
	if prev != nil && prev.EndPoint.Row == n.StartPoint.Row {
		w.write(w.indentString)
	} else {
		w.writeIndent()
	}
	w.write(strings.TrimRight(n.RawText(w.source), " \t"))
	w.insertBreak(n)
}

// preprocSpaced is the set of directives that take a payload with
// exactly one separating space; the remainder are emitted bare.
var preprocBare = map[string]bool{
	"preproc_endif":    true,
	"preproc_else":     true,
	"preproc_endinput": true,
}

// writePreproc writes any of the preprocessor directive kinds
// enumerated in spec.md §4.2/§4.3, resolving the "Open Question"
// about exact keyword emission: every directive always emits its own
// keyword, never a different one.
func (w *Writer) writePreproc(n *Node) {
	keyword := n.Field("name").Text
	if preprocBare[n.Kind] {
		w.write(keyword)
	} else {
		payload := strings.TrimRight(n.Text, " \t")
		w.write(keyword)
		if payload != "" {
			w.write(" ")
			w.write(payload)
		}
	}
	w.insertBreak(n)
}
