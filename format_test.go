package sourcepawn

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFormat_Scenarios covers spec.md §8's concrete scenarios A–F, all
// under the documented defaults (breaks=2, every brace_wrapping=true,
// tabs for indent) unless a scenario overrides one explicitly.
func TestFormat_Scenarios(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		settings func(*Settings)
		expected string
	}{
		{
			name:     "A simple assignment expression spacing",
			input:    `void f(){ int x=1+2 ; }`,
			expected: "void f()\n{\n\tint x = 1 + 2;\n}\n",
		},
		{
			name:  "C preprocessor passthrough with gap collapsing",
			input: "#include <sourcemod>\n\n\n\n#include \"foo.sp\"\n",
			expected: "#include <sourcemod>\n\n#include \"foo.sp\"\n",
		},
		{
			name:  "D if-else if-else chain, attached braces off",
			input: `if(a){x=1;}else if(b){x=2;}else{x=3;}`,
			settings: func(s *Settings) {
				s.BraceWrappingBeforeCondition = false
			},
			expected: "if (a) {\n\tx = 1;\n} else if (b) {\n\tx = 2;\n} else {\n\tx = 3;\n}\n",
		},
		{
			name:     "F syntax error yields empty output",
			input:    `void f( { }`,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := NewSettings()
			if tt.settings != nil {
				tt.settings(settings)
			}
			out, err := Format([]byte(tt.input), settings)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}
}

// TestFormat_ScenarioB checks the width-triggered alignment layout:
// every "=" lands in the same column, and the declaration list breaks
// onto one symbol per line once the single-line form would exceed 80
// bytes (spec.md §4.6/§8 scenario B).
func TestFormat_ScenarioB(t *testing.T) {
	input := "int alpha=1, beta=22, gammaLong=333, deltaVeryLongName=4444, epsilonExtra=55555;"
	out, err := Format([]byte(input), NewSettings())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 5)

	eqCol := strings.Index(lines[0], "=")
	require.Positive(t, eqCol)
	for _, line := range lines {
		assert.Equal(t, eqCol, strings.Index(line, "="), "line %q misaligned", line)
	}
	assert.True(t, strings.HasPrefix(lines[0], "int "))
	assert.True(t, strings.HasSuffix(lines[4], ";"))
}

// TestFormat_ScenarioE checks the blank-line policy between two
// top-level functions with no intervening comment.
func TestFormat_ScenarioE(t *testing.T) {
	input := "void f() {\n}\nvoid g() {\n}\n"
	settings := NewSettings()
	settings.BreaksBeforeFunctionDecl = 2

	out, err := Format([]byte(input), settings)
	require.NoError(t, err)
	assert.Contains(t, out, "}\n\n\nvoid g()")
}

// TestFormat_Idempotence checks property 1: formatting an
// already-formatted source is a no-op.
func TestFormat_Idempotence(t *testing.T) {
	input := `void f(){ int x=1+2 ; }`
	settings := NewSettings()
	once, err := Format([]byte(input), settings)
	require.NoError(t, err)
	twice, err := Format([]byte(once), settings)
	require.NoError(t, err)
	assert.Equal(t, once, twice)
}

// TestFormat_CommentPreservation checks property 3: every comment
// survives, with its text unchanged modulo trailing whitespace.
func TestFormat_CommentPreservation(t *testing.T) {
	input := "// leading note\nvoid f() {\n\t// inline note\n\treturn;\n}\n"
	out, err := Format([]byte(input), NewSettings())
	require.NoError(t, err)
	assert.Contains(t, out, "// leading note")
	assert.Contains(t, out, "// inline note")
}

// TestFormat_NoTripleBlankLines checks property 4: no three-or-more
// run of consecutive newlines survives, regardless of how many blank
// lines the source had.
func TestFormat_NoTripleBlankLines(t *testing.T) {
	input := "int a = 1;\n\n\n\n\n\nint b = 2;\n"
	out, err := Format([]byte(input), NewSettings())
	require.NoError(t, err)
	assert.NotContains(t, out, "\n\n\n")
}

// TestFormat_InvalidInput checks property 6 beyond scenario F's
// mismatched-paren example: an unterminated block is also invalid.
func TestFormat_InvalidInput(t *testing.T) {
	out, err := Format([]byte("void f() {"), NewSettings())
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestFormat_NilSettingsUsesDefaults(t *testing.T) {
	out, err := Format([]byte("int x = 1;\n"), nil)
	require.NoError(t, err)
	assert.Equal(t, "int x = 1;\n", out)
}

// TestFormat_LexErrorPropagates checks that a category-2 lex failure
// (spec.md §7.2) propagates as a genuine error, unlike a category-3
// syntax error (spec.md §7.3), which yields ("", nil) instead.
func TestFormat_LexErrorPropagates(t *testing.T) {
	out, err := Format([]byte(`"never closed`), NewSettings())
	require.Error(t, err)
	var lexErr *LexError
	assert.ErrorAs(t, err, &lexErr)
	assert.Empty(t, out)
}

// TestFormat_NoForcedBreakAfterPreproc checks that the configured
// breaks-before-function padding does not apply when the preceding
// top-level sibling is a preprocessor directive: the source's own
// single blank line is preserved instead of the configured two.
func TestFormat_NoForcedBreakAfterPreproc(t *testing.T) {
	input := "#include <x>\n\npublic void f() {}\n"
	out, err := Format([]byte(input), NewSettings())
	require.NoError(t, err)
	assert.Equal(t, "#include <x>\n\npublic void f()\n{\n}\n", out)
}

// TestFormat_SwitchCaseValues checks that a case's comma-separated
// value list is re-spaced ", " rather than copied verbatim from the
// source span.
func TestFormat_SwitchCaseValues(t *testing.T) {
	input := "void f(){ switch(x){ case 1,2: break; default: break; } }"
	out, err := Format([]byte(input), NewSettings())
	require.NoError(t, err)
	assert.Contains(t, out, "case 1, 2:")
}
