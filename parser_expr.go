package sourcepawn

import "strings"

// parseExpression is the top-level expression entry point (no
// top-level comma; comma_expression only appears nested inside a
// parenthesized_expression per spec.md §4.4).
func (p *parser) parseExpression() *Node {
	return p.parseAssignment()
}

var assignOps = map[string]bool{
	"=": true, "+=": true, "-=": true, "*=": true, "/=": true, "%=": true,
	"&=": true, "|=": true, "^=": true, "<<=": true, ">>=": true,
}

func (p *parser) parseAssignment() *Node {
	left := p.parseTernary()
	if assignOps[p.peek().Kind] {
		opTok := p.advance()
		op := leafNode(opTok.Kind, opTok)
		right := p.parseAssignment()
		n := &Node{Kind: "assignment_expression", StartByte: left.StartByte, EndByte: right.EndByte, StartPoint: left.StartPoint, EndPoint: right.EndPoint}
		n.addChild(left)
		n.addChild(op)
		n.addChild(right)
		n.setField("left", left)
		n.setField("operator", op)
		n.setField("right", right)
		return n
	}
	return left
}

func (p *parser) parseTernary() *Node {
	cond := p.parseBinary(0)
	if p.is("?") {
		p.advance()
		cons := p.parseAssignment()
		p.expectPunct(":")
		alt := p.parseAssignment()
		n := &Node{Kind: "ternary_expression", StartByte: cond.StartByte, EndByte: alt.EndByte, StartPoint: cond.StartPoint, EndPoint: alt.EndPoint}
		n.addChild(cond)
		n.addChild(cons)
		n.addChild(alt)
		n.setField("condition", cond)
		n.setField("consequence", cons)
		n.setField("alternative", alt)
		return n
	}
	return cond
}

// binaryPrec lists operator precedence tiers, loosest first, matching
// ordinary C-like binding.
var binaryPrec = [][]string{
	{"||"},
	{"&&"},
	{"|"},
	{"^"},
	{"&"},
	{"==", "!="},
	{"<", "<=", ">", ">="},
	{"<<", ">>"},
	{"+", "-"},
	{"*", "/", "%"},
}

func (p *parser) parseBinary(level int) *Node {
	if level >= len(binaryPrec) {
		return p.parseUnary()
	}
	left := p.parseBinary(level + 1)
	ops := binaryPrec[level]
	for {
		matched := false
		for _, op := range ops {
			if p.is(op) {
				matched = true
				break
			}
		}
		if !matched {
			return left
		}
		opTok := p.advance()
		opNode := leafNode(opTok.Kind, opTok)
		right := p.parseBinary(level + 1)
		n := &Node{Kind: "binary_expression", StartByte: left.StartByte, EndByte: right.EndByte, StartPoint: left.StartPoint, EndPoint: right.EndPoint}
		n.addChild(left)
		n.addChild(opNode)
		n.addChild(right)
		n.setField("left", left)
		n.setField("operator", opNode)
		n.setField("right", right)
		left = n
	}
}

func (p *parser) parseUnary() *Node {
	switch p.peek().Kind {
	case "!", "~", "-", "+":
		opTok := p.advance()
		op := leafNode(opTok.Kind, opTok)
		arg := p.parseUnary()
		n := &Node{Kind: "unary_expression", StartByte: op.StartByte, EndByte: arg.EndByte, StartPoint: op.StartPoint, EndPoint: arg.EndPoint}
		n.addChild(op)
		n.addChild(arg)
		n.setField("operator", op)
		n.setField("argument", arg)
		return n
	case "++", "--":
		opTok := p.advance()
		op := leafNode(opTok.Kind, opTok)
		arg := p.parseUnary()
		n := &Node{Kind: "update_expression", StartByte: op.StartByte, EndByte: arg.EndByte, StartPoint: op.StartPoint, EndPoint: arg.EndPoint}
		n.addChild(op)
		n.addChild(arg)
		n.setField("operator", op)
		n.setField("argument", arg)
		return n
	}
	return p.parsePostfix()
}

func (p *parser) parsePostfix() *Node {
	n := p.parsePrimary()
	for {
		switch p.peek().Kind {
		case "++", "--":
			opTok := p.advance()
			op := leafNode(opTok.Kind, opTok)
			up := &Node{Kind: "update_expression", StartByte: n.StartByte, EndByte: op.EndByte, StartPoint: n.StartPoint, EndPoint: op.EndPoint}
			up.addChild(n)
			up.addChild(op)
			up.setField("argument", n)
			up.setField("operator", op)
			n = up
		case "[":
			p.advance()
			idx := p.parseExpression()
			rb := p.expectPunct("]")
			arr := &Node{Kind: "array_indexed_access", StartByte: n.StartByte, EndByte: rb.EndByte, StartPoint: n.StartPoint, EndPoint: rb.EndPoint}
			arr.addChild(n)
			arr.addChild(idx)
			arr.setField("array", n)
			arr.setField("index", idx)
			n = arr
		case ".":
			p.advance()
			field := p.expectIdent("symbol")
			fa := &Node{Kind: "field_access", StartByte: n.StartByte, EndByte: field.EndByte, StartPoint: n.StartPoint, EndPoint: field.EndPoint}
			fa.addChild(n)
			fa.addChild(field)
			fa.setField("target", n)
			fa.setField("field", field)
			n = fa
		case "::":
			p.advance()
			field := p.expectIdent("symbol")
			sa := &Node{Kind: "scope_access", StartByte: n.StartByte, EndByte: field.EndByte, StartPoint: n.StartPoint, EndPoint: field.EndPoint}
			sa.addChild(n)
			sa.addChild(field)
			sa.setField("scope", n)
			sa.setField("field", field)
			n = sa
		case "(":
			args := p.parseArguments()
			call := &Node{Kind: "function_call", StartByte: n.StartByte, EndByte: args.EndByte, StartPoint: n.StartPoint, EndPoint: args.EndPoint}
			call.addChild(n)
			call.addChild(args)
			call.setField("function", n)
			call.setField("arguments", args)
			n = call
		case "...":
			if !p.is("...") {
				return n
			}
			if n.Kind != "string_literal" && n.Kind != "concatenated_string" {
				return n
			}
			p.advance()
			right := p.parsePostfix()
			cs := &Node{Kind: "concatenated_string", StartByte: n.StartByte, EndByte: right.EndByte, StartPoint: n.StartPoint, EndPoint: right.EndPoint}
			cs.addChild(n)
			cs.addChild(right)
			cs.setField("left", n)
			cs.setField("right", right)
			n = cs
		default:
			return n
		}
	}
}

func (p *parser) parsePrimary() *Node {
	t := p.peek()
	switch t.Kind {
	case "(":
		p.advance()
		inner := p.parseExpression()
		if p.is(",") {
			inner = p.parseCommaTail(inner)
		}
		rp := p.expectPunct(")")
		n := &Node{Kind: "parenthesized_expression", StartByte: t.StartByte, EndByte: rp.EndByte, StartPoint: t.StartPoint, EndPoint: rp.EndPoint}
		n.addChild(inner)
		n.setField("expression", inner)
		return n
	case "{":
		return p.parseArrayLiteral()
	case tokInt, tokFloat, tokChar, tokString:
		p.advance()
		return leafNode(literalKindFor(t), t)
	case tokIdent:
		switch t.Text {
		case "new":
			return p.parseNewInstance()
		case "view_as":
			return p.parseViewAs()
		case "sizeof":
			return p.parseSizeof()
		case "this":
			p.advance()
			return leafNode("this", t)
		case "null":
			p.advance()
			return leafNode("null", t)
		case "true", "false":
			p.advance()
			return leafNode("bool_literal", t)
		}
		if strings.HasSuffix(t.Text, ":") {
			return p.parseOldTypeCast()
		}
		p.advance()
		return leafNode("symbol", t)
	}
	// Unknown primary: consume one token so the parser makes
	// progress, tag the tree as erroneous, and keep going.
	p.hasError = true
	p.advance()
	return leafNode("symbol", t)
}

func (p *parser) parseCommaTail(left *Node) *Node {
	p.advance() // ","
	right := p.parseExpression()
	if p.is(",") {
		right = p.parseCommaTail(right)
	}
	n := &Node{Kind: "comma_expression", StartByte: left.StartByte, EndByte: right.EndByte, StartPoint: left.StartPoint, EndPoint: right.EndPoint}
	n.addChild(left)
	n.addChild(right)
	n.setField("left", left)
	n.setField("right", right)
	return n
}

func (p *parser) parseOldTypeCast() *Node {
	t := p.advance()
	typeNode := leafNode("old_type", t)
	value := p.parseUnary()
	n := &Node{Kind: "old_type_cast", StartByte: typeNode.StartByte, EndByte: value.EndByte, StartPoint: typeNode.StartPoint, EndPoint: value.EndPoint}
	n.addChild(typeNode)
	n.addChild(value)
	n.setField("type", typeNode)
	n.setField("value", value)
	return n
}

func (p *parser) parseNewInstance() *Node {
	start := p.advance() // "new"
	class := p.expectIdent("symbol")
	if p.is("[") {
		return p.parseDynamicArrayTail(start, class)
	}
	args := p.parseArguments()
	n := &Node{Kind: "new_instance", StartByte: start.StartByte, EndByte: args.EndByte, StartPoint: start.StartPoint, EndPoint: args.EndPoint}
	n.addChild(class)
	n.addChild(args)
	n.setField("class", class)
	n.setField("arguments", args)
	return n
}

// parseDynamicArrayTail handles `new Type[expr]…`, the dynamic_array
// right-hand-side form spec.md §4.4 names under assignment_expression.
func (p *parser) parseDynamicArrayTail(start Token, typ *Node) *Node {
	n := &Node{Kind: "dynamic_array", StartByte: start.StartByte, StartPoint: start.StartPoint}
	n.setField("type", typ)
	n.addChild(typ)
	for p.is("[") {
		lb := p.advance()
		var size *Node
		if !p.is("]") {
			size = p.parseExpression()
		}
		rb := p.expectPunct("]")
		dim := &Node{Kind: "fixed_dimension", StartByte: lb.StartByte, EndByte: rb.EndByte, StartPoint: lb.StartPoint, EndPoint: rb.EndPoint}
		if size != nil {
			dim.addChild(size)
		}
		n.addChild(dim)
		n.EndByte = rb.EndByte
		n.EndPoint = rb.EndPoint
	}
	return n
}

func (p *parser) parseViewAs() *Node {
	start := p.advance() // "view_as"
	p.expectPunct("<")
	typ := p.parseTypeRef()
	p.expectPunct(">")
	p.expectPunct("(")
	value := p.parseExpression()
	rp := p.expectPunct(")")
	n := &Node{Kind: "view_as", StartByte: start.StartByte, EndByte: rp.EndByte, StartPoint: start.StartPoint, EndPoint: rp.EndPoint}
	n.addChild(typ)
	n.addChild(value)
	n.setField("type", typ)
	n.setField("value", value)
	return n
}

func (p *parser) parseSizeof() *Node {
	start := p.advance() // "sizeof"
	n := &Node{Kind: "sizeof_expression", StartByte: start.StartByte, StartPoint: start.StartPoint}
	p.expectPunct("(")
	for !p.is(")") && !p.atEOF() {
		if p.is("[") {
			lb := p.advance()
			rb := p.expectPunct("]")
			dim := &Node{Kind: "dimension", StartByte: lb.StartByte, EndByte: rb.EndByte, StartPoint: lb.StartPoint, EndPoint: rb.EndPoint}
			n.addChild(dim)
			n.setField("type", dim)
			continue
		}
		sym := p.expectIdent("symbol")
		n.addChild(sym)
		n.setField("type", sym)
		if p.is(".") {
			p.advance()
		} else {
			break
		}
	}
	rp := p.expectPunct(")")
	n.EndByte, n.EndPoint = rp.EndByte, rp.EndPoint
	return n
}

func (p *parser) parseArrayLiteral() *Node {
	lb := p.advance() // "{"
	n := &Node{Kind: "array_literal", StartByte: lb.StartByte, StartPoint: lb.StartPoint}
	n.addChild(leafNode("{", lb))
	for !p.is("}") && !p.atEOF() {
		n.addChild(p.parseExpression())
		if p.is(",") {
			n.addChild(leafNode(",", p.advance()))
			continue
		}
		break
	}
	rb := p.expectPunct("}")
	n.addChild(rb)
	n.EndByte, n.EndPoint = rb.EndByte, rb.EndPoint
	return n
}

// parseArguments parses a parenthesized, comma-separated call/ctor
// argument list per spec.md §4.4.
func (p *parser) parseArguments() *Node {
	lp := p.expectPunct("(")
	n := &Node{Kind: "arguments", StartByte: lp.StartByte, StartPoint: lp.StartPoint}
	n.addChild(lp)
	for !p.is(")") && !p.atEOF() {
		if p.is(".") {
			n.addChild(p.parseNamedArg())
		} else {
			n.addChild(p.parseExpression())
		}
		if p.is(",") {
			n.addChild(leafNode(",", p.advance()))
			continue
		}
		break
	}
	rp := p.expectPunct(")")
	n.addChild(rp)
	n.EndByte, n.EndPoint = rp.EndByte, rp.EndPoint
	return n
}

func (p *parser) parseNamedArg() *Node {
	dot := p.advance() // "."
	name := p.expectIdent("symbol")
	p.expectPunct("=")
	value := p.parseExpression()
	n := &Node{Kind: "named_arg", StartByte: dot.StartByte, EndByte: value.EndByte, StartPoint: dot.StartPoint, EndPoint: value.EndPoint}
	n.addChild(name)
	n.addChild(value)
	n.setField("name", name)
	n.setField("value", value)
	return n
}

// parseTypeRef parses a bare type reference: an identifier optionally
// followed by unsized dimensions, used by view_as<Type> and by
// declaration writers.
func (p *parser) parseTypeRef() *Node {
	return p.expectIdent("type")
}
