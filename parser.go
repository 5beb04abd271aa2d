package sourcepawn

// parser is a token-level recursive-descent parser. Its combinators
// (choice/optional/zeroOrMore) are grounded on the teacher's
// parser.go shapes (Choice/Optional/ZeroOrMore/OneOrMore), retargeted
// from rune-level PEG over a captured Value tree to token-level
// descent that builds *Node directly.
type parser struct {
	toks []Token
	pos  int
	src  []byte

	hasError bool
}

// Parse builds the CST for src. It never returns a non-nil error for
// a merely malformed program (that shows up as root.HasError per
// spec.md §7.3); a non-nil error is reserved for lexing failures the
// grammar can't recover from at all.
func Parse(src []byte) (*Node, error) {
	toks, err := newLexer(src).tokenize()
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks, src: src}
	root := p.parseSourceFile()
	root.HasError = p.hasError
	return root, nil
}

func (p *parser) peek() Token      { return p.toks[p.pos] }
func (p *parser) peekAt(n int) Token {
	if p.pos+n >= len(p.toks) {
		return p.toks[len(p.toks)-1]
	}
	return p.toks[p.pos+n]
}
func (p *parser) atEOF() bool { return p.peek().Kind == tokEOF }

func (p *parser) advance() Token {
	t := p.toks[p.pos]
	if t.Kind != tokEOF {
		p.pos++
	}
	return t
}

// leaf turns a consumed token into a childless *Node whose Kind is
// given explicitly (punctuation/keyword tokens use their own text as
// kind; literals and symbols get a semantic kind).
func leafNode(kind string, t Token) *Node {
	return &Node{
		Kind: kind, Text: t.Text,
		StartByte: t.StartByte, EndByte: t.EndByte,
		StartPoint: t.StartPoint, EndPoint: t.EndPoint,
	}
}

// is reports whether the current token's Kind equals any of kinds.
func (p *parser) is(kinds ...string) bool {
	cur := p.peek().Kind
	for _, k := range kinds {
		if cur == k {
			return true
		}
	}
	return false
}

// isKeyword reports whether the current token is an identifier token
// whose text equals word (used for soft keywords like "public",
// "enum", "struct" that the lexer tags as plain idents).
func (p *parser) isKeyword(word string) bool {
	t := p.peek()
	return t.Kind == tokIdent && t.Text == word
}

func (p *parser) isKeywordAt(n int, word string) bool {
	t := p.peekAt(n)
	return t.Kind == tokIdent && t.Text == word
}

// expectPunct consumes a token whose Kind equals tok, emitting a leaf
// node with that token's own text as Kind. On mismatch it marks the
// tree as erroneous, synthesizes a zero-width placeholder so the
// caller can keep going, and does not advance the cursor.
func (p *parser) expectPunct(tok string) *Node {
	if p.is(tok) {
		return leafNode(tok, p.advance())
	}
	p.hasError = true
	t := p.peek()
	return &Node{Kind: tok, StartByte: t.StartByte, EndByte: t.StartByte, StartPoint: t.StartPoint, EndPoint: t.StartPoint}
}

// expectIdent consumes an identifier token as a node of the given
// semantic kind (commonly "symbol").
func (p *parser) expectIdent(kind string) *Node {
	if p.peek().Kind == tokIdent {
		return leafNode(kind, p.advance())
	}
	p.hasError = true
	t := p.peek()
	return &Node{Kind: kind, StartByte: t.StartByte, EndByte: t.StartByte, StartPoint: t.StartPoint, EndPoint: t.StartPoint}
}

// skipToRecoveryPoint advances past tokens until a statement/decl
// boundary (";" "}" or EOF) so a malformed construct doesn't wedge
// the parser forever. Used only on the error path.
func (p *parser) skipToRecoveryPoint() {
	for !p.atEOF() {
		switch p.peek().Kind {
		case ";":
			p.advance()
			return
		case "}":
			return
		}
		p.advance()
	}
}

func literalKindFor(tok Token) string {
	switch tok.Kind {
	case tokInt:
		return "int_literal"
	case tokFloat:
		return "float_literal"
	case tokChar:
		return "char_literal"
	case tokString:
		return "string_literal"
	}
	return tok.Kind
}
