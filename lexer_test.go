package sourcepawn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLexer_Tokenize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantKind []string
		wantText []string
	}{
		{
			name:     "identifiers and operators",
			input:    "x += 1",
			wantKind: []string{tokIdent, "+=", tokInt, tokEOF},
			wantText: []string{"x", "+=", "1", ""},
		},
		{
			name:     "old-style Float type prefix",
			input:    "Float:x",
			wantKind: []string{tokIdent, tokEOF},
			wantText: []string{"Float:", ""},
		},
		{
			name:     "line comment",
			input:    "// hello\nx",
			wantKind: []string{tokComment, tokIdent, tokEOF},
			wantText: []string{"// hello", "x", ""},
		},
		{
			name:     "preprocessor directive",
			input:    "#include <foo>",
			wantKind: []string{tokPreproc, tokEOF},
			wantText: []string{"#include <foo>", ""},
		},
		{
			name:     "float literal",
			input:    "3.14",
			wantKind: []string{tokFloat, tokEOF},
			wantText: []string{"3.14", ""},
		},
		{
			name:     "string literal",
			input:    `"hi"`,
			wantKind: []string{tokString, tokEOF},
			wantText: []string{`"hi"`, ""},
		},
		{
			name:     "maximal munch for compound operators",
			input:    "a <<= b",
			wantKind: []string{tokIdent, "<<=", tokIdent, tokEOF},
			wantText: []string{"a", "<<=", "b", ""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks, err := newLexer([]byte(tt.input)).tokenize()
			require.NoError(t, err)
			kinds := make([]string, len(toks))
			texts := make([]string, len(toks))
			for i, tok := range toks {
				kinds[i] = tok.Kind
				texts[i] = tok.Text
			}
			assert.Equal(t, tt.wantKind, kinds)
			assert.Equal(t, tt.wantText, texts)
		})
	}
}

func TestLexer_UnterminatedBlockCommentErrors(t *testing.T) {
	_, err := newLexer([]byte("/* never closed")).tokenize()
	assert.Error(t, err)
}

func TestLexer_UnterminatedStringErrors(t *testing.T) {
	_, err := newLexer([]byte(`"never closed`)).tokenize()
	assert.Error(t, err)
}
