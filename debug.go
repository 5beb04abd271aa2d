package sourcepawn

import "fmt"

// DebugToken classifies a span of the debug tree dump for theming,
// grounded on the teacher's tree.go FormatToken/prettyPrinter pair.
type DebugToken int

const (
	DebugTokenNone DebugToken = iota
	DebugTokenRange
	DebugTokenKind
	DebugTokenError
)

var debugTheme = map[DebugToken]string{
	DebugTokenNone:  "\033[0m",
	DebugTokenRange: "\033[1;31;5;228m",
	DebugTokenKind:  "\033[1;38;5;245m",
	DebugTokenError: "\033[1;38;5;127m",
}

// Pretty renders the CST rooted at n as an indented plain-text tree,
// useful for debugging the parser (cmd/spfmt's -ast flag).
func Pretty(n *Node) string {
	vi := newDebugPrinter(func(s string, _ DebugToken) string { return s })
	vi.visit(n)
	return vi.output.String()
}

// Highlight is Pretty with ANSI color, used when the CLI detects a
// terminal (golang.org/x/term.IsTerminal).
func Highlight(n *Node) string {
	vi := newDebugPrinter(func(s string, t DebugToken) string {
		return debugTheme[t] + s + debugTheme[DebugTokenNone]
	})
	vi.visit(n)
	return vi.output.String()
}

type debugPrinter struct {
	*treePrinter[DebugToken]
}

func newDebugPrinter(format FormatFunc[DebugToken]) *debugPrinter {
	return &debugPrinter{treePrinter: newTreePrinter(format)}
}

func (vi *debugPrinter) visit(n *Node) {
	if n == nil {
		return
	}
	pos := fmt.Sprintf(" (%s..%s)", n.StartPoint, n.EndPoint)
	if n.HasError && n.parent == nil {
		vi.write(vi.format("Error<"+n.Kind+">", DebugTokenError))
	} else {
		vi.write(vi.format(n.Kind, DebugTokenKind))
	}
	vi.writel(vi.format(pos, DebugTokenRange))

	children := n.Children
	for i, child := range children {
		last := i == len(children)-1
		if last {
			vi.pwrite("└── ")
			vi.indent("    ")
		} else {
			vi.pwrite("├── ")
			vi.indent("│   ")
		}
		vi.visit(child)
		vi.unindent()
		if !last {
			// nothing extra: visit() already ends with a newline via writel
		}
	}
}
