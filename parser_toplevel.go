package sourcepawn

import "strings"

// preprocKeywords maps a lexed "#word" prefix to the CST kind spec.md
// §4.2 names for it.
var preprocKeywords = map[string]string{
	"include":    "preproc_include",
	"tryinclude": "preproc_tryinclude",
	"define":     "preproc_define",
	"undef":      "preproc_undefine",
	"if":         "preproc_if",
	"elseif":     "preproc_elseif",
	"else":       "preproc_else",
	"endif":      "preproc_endif",
	"endinput":   "preproc_endinput",
	"pragma":     "preproc_pragma",
	"error":      "preproc_error",
	"warning":    "preproc_warning",
	"assert":     "preproc_assert",
}

// preprocKind classifies a raw "#..." token (spec.md §4.2/§4.3). A
// "#define" whose payload looks like a macro with parameters is
// reported as preproc_macro, matching the distinction spec.md draws
// between preproc_macro and preproc_define.
func preprocKind(text string) (kind, keyword, rest string) {
	body := strings.TrimPrefix(text, "#")
	body = strings.TrimLeft(body, " \t")
	word := body
	for i, r := range body {
		if r == ' ' || r == '\t' || r == '(' {
			word = body[:i]
			break
		}
	}
	rest = strings.TrimSpace(strings.TrimPrefix(body, word))
	keyword = "#" + word
	if word == "define" && strings.HasPrefix(strings.TrimPrefix(body, word), "(") {
		return "preproc_macro", keyword, rest
	}
	if k, ok := preprocKeywords[word]; ok {
		return k, keyword, rest
	}
	return "preproc_define", keyword, rest
}

func (p *parser) parsePreproc() *Node {
	t := p.advance()
	kind, keyword, rest := preprocKind(t.Text)
	n := &Node{Kind: kind, StartByte: t.StartByte, EndByte: t.EndByte, StartPoint: t.StartPoint, EndPoint: t.EndPoint, Text: rest}
	n.setField("name", &Node{Kind: "preproc_keyword", Text: keyword})
	return n
}

// parseSourceFile is the top-level source_file writer's mirror on the
// parse side: a flat list of children dispatched by kind, exactly
// like the dispatcher in writer_source.go will walk them.
func (p *parser) parseSourceFile() *Node {
	root := &Node{Kind: "source_file"}
	for !p.atEOF() {
		before := p.pos
		root.addChild(p.parseTopLevelItem())
		if p.pos == before {
			// Safety net: parseTopLevelItem must always consume at
			// least one token; if a bug leaves the cursor in place,
			// force progress instead of looping forever.
			p.hasError = true
			p.advance()
		}
	}
	return root
}

func (p *parser) parseTopLevelItem() *Node {
	switch {
	case p.is(tokComment):
		return p.parseComment()
	case p.is(tokPreproc):
		return p.parsePreproc()
	case p.isKeyword("enum"):
		return p.parseEnum()
	case p.isKeyword("struct"):
		return p.parseStruct()
	case p.isKeyword("typedef"):
		return p.parseTypedef()
	case p.isKeyword("typeset"):
		return p.parseTypeset()
	case p.isKeyword("functag"):
		return p.parseFunctag()
	case p.isKeyword("funcenum"):
		return p.parseFuncenum()
	case p.isKeyword("methodmap"):
		return p.parseMethodmap()
	case p.isKeyword("using"):
		return p.parseHardcodedSymbol()
	case p.isKeyword("assert") || p.isKeyword("static_assert"):
		return p.parseAssertion()
	case p.isKeyword("alias"):
		return p.parseAlias()
	case p.isStructDeclarationAhead():
		return p.parseStructDeclaration()
	case p.looksLikeOldVarDecl():
		return p.parseOldGlobalVariableDeclaration()
	default:
		return p.parseTopLevelFunctionOrVariable()
	}
}

// isStructDeclarationAhead disambiguates `public Name = { ... };`
// (struct_declaration) from an ordinary `public Type name(...)`
// function/variable declaration: only the former has `=` `{`
// immediately after the two leading identifiers.
func (p *parser) isStructDeclarationAhead() bool {
	return p.isKeyword("public") &&
		p.peekAt(1).Kind == tokIdent &&
		p.peekAt(2).Kind == "=" &&
		p.peekAt(3).Kind == "{"
}
