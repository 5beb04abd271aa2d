package sourcepawn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_ValidProgramsHaveNoError(t *testing.T) {
	tests := []string{
		"void f() {}",
		"int x = 1;",
		"enum Foo { A, B, C };",
		"enum struct Vec { float x; float y; void Reset() { this.x = 0.0; } }",
		"methodmap Handle < Parent { public native Handle(); }",
		"typedef Callback = function void(int a);",
		"public void OnPluginStart() { for (int i = 0; i < 10; i++) { PrintToServer(\"%d\", i); } }",
	}
	for _, src := range tests {
		t.Run(src, func(t *testing.T) {
			root, err := Parse([]byte(src))
			require.NoError(t, err)
			assert.False(t, root.HasError, "expected no parse error for %q", src)
		})
	}
}

func TestParse_MismatchedParenSetsHasError(t *testing.T) {
	root, err := Parse([]byte("void f( { }"))
	require.NoError(t, err)
	assert.True(t, root.HasError)
}

func TestParse_OldStyleDeclaration(t *testing.T) {
	root, err := Parse([]byte("new Float:x = 1.0;"))
	require.NoError(t, err)
	require.False(t, root.HasError)
	require.Len(t, root.Children, 1)
	assert.Equal(t, "old_global_variable_declaration", root.Children[0].Kind)
}

func TestParse_FunctionVsGlobalVariableDisambiguation(t *testing.T) {
	root, err := Parse([]byte("int count;\nvoid reset() {}\n"))
	require.NoError(t, err)
	require.False(t, root.HasError)
	require.Len(t, root.Children, 2)
	assert.Equal(t, "global_variable_declaration", root.Children[0].Kind)
	assert.Equal(t, "function_declaration", root.Children[1].Kind)
}
