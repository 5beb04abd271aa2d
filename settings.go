package sourcepawn

import (
	"os"
	"sort"
	"strings"

	"fortio.org/struct2env"
	"gopkg.in/yaml.v3"
)

// Settings controls the formatter's layout decisions. Field names and
// defaults match spec.md §3 exactly.
type Settings struct {
	BreaksBeforeFunctionDecl int `yaml:"breaks_before_function_decl" json:"breaks_before_function_decl" env:"SPFMT_BREAKS_BEFORE_FUNCTION_DECL"`
	BreaksBeforeFunctionDef  int `yaml:"breaks_before_function_def" json:"breaks_before_function_def" env:"SPFMT_BREAKS_BEFORE_FUNCTION_DEF"`
	BreaksBeforeEnum         int `yaml:"breaks_before_enum" json:"breaks_before_enum" env:"SPFMT_BREAKS_BEFORE_ENUM"`
	BreaksBeforeEnumStruct   int `yaml:"breaks_before_enum_struct" json:"breaks_before_enum_struct" env:"SPFMT_BREAKS_BEFORE_ENUM_STRUCT"`
	BreaksBeforeMethodmap    int `yaml:"breaks_before_methodmap" json:"breaks_before_methodmap" env:"SPFMT_BREAKS_BEFORE_METHODMAP"`

	BraceWrappingBeforeFunction         bool `yaml:"brace_wrapping_before_function" json:"brace_wrapping_before_function" env:"SPFMT_BRACE_WRAPPING_BEFORE_FUNCTION"`
	BraceWrappingBeforeLoop             bool `yaml:"brace_wrapping_before_loop" json:"brace_wrapping_before_loop" env:"SPFMT_BRACE_WRAPPING_BEFORE_LOOP"`
	BraceWrappingBeforeCondition        bool `yaml:"brace_wrapping_before_condition" json:"brace_wrapping_before_condition" env:"SPFMT_BRACE_WRAPPING_BEFORE_CONDITION"`
	BraceWrappingBeforeEnumStruct       bool `yaml:"brace_wrapping_before_enum_struct" json:"brace_wrapping_before_enum_struct" env:"SPFMT_BRACE_WRAPPING_BEFORE_ENUM_STRUCT"`
	BraceWrappingBeforeEnum             bool `yaml:"brace_wrapping_before_enum" json:"brace_wrapping_before_enum" env:"SPFMT_BRACE_WRAPPING_BEFORE_ENUM"`
	BraceWrappingBeforeTypeset          bool `yaml:"brace_wrapping_before_typeset" json:"brace_wrapping_before_typeset" env:"SPFMT_BRACE_WRAPPING_BEFORE_TYPESET"`
	BraceWrappingBeforeFuncenum         bool `yaml:"brace_wrapping_before_funcenum" json:"brace_wrapping_before_funcenum" env:"SPFMT_BRACE_WRAPPING_BEFORE_FUNCENUM"`
	BraceWrappingBeforeMethodmap        bool `yaml:"brace_wrapping_before_methodmap" json:"brace_wrapping_before_methodmap" env:"SPFMT_BRACE_WRAPPING_BEFORE_METHODMAP"`
	BraceWrappingBeforeMethodmapProperty bool `yaml:"brace_wrapping_before_methodmap_property" json:"brace_wrapping_before_methodmap_property" env:"SPFMT_BRACE_WRAPPING_BEFORE_METHODMAP_PROPERTY"`

	// IndentString is the writer's indent unit (spec.md §3's
	// "indent_string"); not itself a §3 table row but part of the
	// Writer state it configures, so it lives here rather than as a
	// hardcoded constant.
	IndentString string `yaml:"indent_string" json:"indent_string" env:"SPFMT_INDENT_STRING"`
}

// NewSettings returns the defaults from spec.md §3: integers 2,
// booleans true, indent unit one tab.
func NewSettings() *Settings {
	return &Settings{
		BreaksBeforeFunctionDecl: 2,
		BreaksBeforeFunctionDef:  2,
		BreaksBeforeEnum:         2,
		BreaksBeforeEnumStruct:   2,
		BreaksBeforeMethodmap:    2,

		BraceWrappingBeforeFunction:          true,
		BraceWrappingBeforeLoop:              true,
		BraceWrappingBeforeCondition:         true,
		BraceWrappingBeforeEnumStruct:        true,
		BraceWrappingBeforeEnum:              true,
		BraceWrappingBeforeTypeset:           true,
		BraceWrappingBeforeFuncenum:          true,
		BraceWrappingBeforeMethodmap:         true,
		BraceWrappingBeforeMethodmapProperty: true,

		IndentString: "\t",
	}
}

// LoadSettingsFile reads a YAML settings file, starting from
// NewSettings()'s defaults for any field the file omits.
func LoadSettingsFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s := NewSettings()
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, err
	}
	return s, nil
}

// DumpSettingsEnv renders s as `KEY=VALUE` lines using its `env`
// struct tags, for embedding the effective settings of a formatting
// run into CI logs or a generated .env file next to a project's
// spfmt config.
func DumpSettingsEnv(s *Settings) (string, error) {
	pairs, err := struct2env.Struct2Env(s)
	if err != nil {
		return "", err
	}
	keys := make([]string, 0, len(pairs))
	for k := range pairs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var b strings.Builder
	for _, k := range keys {
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(pairs[k])
		b.WriteByte('\n')
	}
	return b.String(), nil
}
