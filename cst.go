package sourcepawn

import (
	"fmt"
	"sort"
)

// Point is a 1-based (row, column) position in source text, matching
// the row/column convention most CST libraries expose.
type Point struct {
	Row, Col int
}

func (p Point) String() string { return fmt.Sprintf("%d:%d", p.Row, p.Col) }

// Node is one CST node: a kind, its byte span, its (row, col) span,
// named fields and ordered children (including anonymous punctuation
// and keyword tokens), and sibling links. Node is produced by Parse
// and consumed read-only by the writer.
type Node struct {
	Kind string

	StartByte, EndByte int
	StartPoint, EndPoint Point

	// Text is set directly for leaf/token nodes (identifiers,
	// literals, punctuation, raw preprocessor payloads) so the
	// writer never has to re-slice the source for those.
	Text string

	Fields map[string]*Node

	Children []*Node

	parent *Node
	index  int // this node's index within parent.Children

	// HasError is only meaningful on the root: true when the parser
	// could not make full sense of the input.
	HasError bool
}

// addChild appends child to n.Children, wiring up parent/index links.
func (n *Node) addChild(child *Node) {
	if child == nil {
		return
	}
	child.parent = n
	child.index = len(n.Children)
	n.Children = append(n.Children, child)
}

func (n *Node) setField(name string, child *Node) {
	if n.Fields == nil {
		n.Fields = map[string]*Node{}
	}
	n.Fields[name] = child
}

// Field returns the named field's node, or nil if absent.
func (n *Node) Field(name string) *Node {
	if n == nil || n.Fields == nil {
		return nil
	}
	return n.Fields[name]
}

// RawText returns the node's source text: either the directly stored
// Text (for tokens built without a backing byte slice) or the
// original byte span sliced out of source.
func (n *Node) RawText(source []byte) string {
	if n == nil {
		return ""
	}
	if n.Text != "" {
		return n.Text
	}
	if n.StartByte < 0 || n.EndByte > len(source) || n.StartByte > n.EndByte {
		return ""
	}
	return string(source[n.StartByte:n.EndByte])
}

// PrevSibling returns the sibling immediately before n, or nil.
func (n *Node) PrevSibling() *Node {
	if n == nil || n.parent == nil || n.index == 0 {
		return nil
	}
	return n.parent.Children[n.index-1]
}

// NextSibling returns the sibling immediately after n, or nil.
func (n *Node) NextSibling() *Node {
	if n == nil || n.parent == nil || n.index+1 >= len(n.parent.Children) {
		return nil
	}
	return n.parent.Children[n.index+1]
}

// PrevSiblingKind returns the previous sibling's kind, or "" if none.
// Grounded on original_source's prev_sibling_kind helper used
// throughout the declaration writers to decide blank-line padding.
func (n *Node) PrevSiblingKind() string {
	if s := n.PrevSibling(); s != nil {
		return s.Kind
	}
	return ""
}

// LineIndex converts byte offsets to (row, col) pairs, grounded on
// the teacher's pos.go LineIndex (binary search over line starts).
type LineIndex struct {
	lineStart []int
}

// NewLineIndex builds a LineIndex over input.
func NewLineIndex(input []byte) *LineIndex {
	lineStart := make([]int, 1, 64)
	lineStart[0] = 0
	for i, b := range input {
		if b == '\n' {
			lineStart = append(lineStart, i+1)
		}
	}
	return &LineIndex{lineStart: lineStart}
}

// PointAt returns the 1-based (row, col) for a byte cursor.
func (li *LineIndex) PointAt(cursor int) Point {
	if cursor < 0 {
		cursor = 0
	}
	idx := sort.Search(len(li.lineStart), func(i int) bool {
		return li.lineStart[i] > cursor
	}) - 1
	if idx < 0 {
		idx = 0
	}
	return Point{Row: idx + 1, Col: cursor - li.lineStart[idx] + 1}
}
