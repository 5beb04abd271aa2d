package sourcepawn

// Token is one lexical unit. Punctuation/operator tokens use their
// own text as Kind (e.g. Kind "{" for a "{" token); words use Kind
// "ident" and the parser decides whether the text is a keyword;
// literals and trivia get their own Kind.
type Token struct {
	Kind string
	Text string

	StartByte, EndByte   int
	StartPoint, EndPoint Point
}

const (
	tokIdent     = "ident"
	tokInt       = "int_literal"
	tokFloat     = "float_literal"
	tokChar      = "char_literal"
	tokString    = "string_literal"
	tokComment   = "comment"
	tokPreproc   = "preproc_line"
	tokEOF       = "eof"
)

var keywords = map[string]bool{
	"new": true, "decl": true, "const": true, "static": true, "public": true,
	"stock": true, "native": true, "forward": true, "enum": true, "struct": true,
	"functag": true, "funcenum": true, "typedef": true, "typeset": true,
	"methodmap": true, "property": true, "get": true, "set": true,
	"function": true, "void": true, "bool": true, "int": true, "float": true,
	"char": true, "any": true, "Float": true, "String": true, "_": true,
	"if": true, "else": true, "while": true, "do": true, "for": true,
	"switch": true, "case": true, "default": true, "break": true,
	"continue": true, "return": true, "delete": true, "new_instance": true,
	"sizeof": true, "view_as": true, "this": true, "null": true, "true": true,
	"false": true, "using": true, "assert": true, "static_assert": true,
	"operator": true,
}
