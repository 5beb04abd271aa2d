// Command spfmt formats SourcePawn source files in place.
package main

import (
	"flag"
	"os"

	"fortio.org/cli"
	"fortio.org/log"
	"fortio.org/progressbar"
	"fortio.org/safecast"
	"golang.org/x/term"

	sourcepawn "github.com/sourcepawn-tools/spfmt"
)

var (
	configFlag = flag.String("config", "", "path to a YAML settings file overriding the defaults")
	astFlag    = flag.Bool("ast", false, "print the parsed syntax tree instead of formatted source")
	writeFlag  = flag.Bool("w", false, "overwrite each input file with its formatted form instead of printing to stdout")
	envFlag    = flag.Bool("dump-env", false, "print the effective settings as KEY=VALUE lines and exit")

	breaksBeforeFunctionDecl = flag.Int("breaks-before-function-decl", 0, "override: blank lines before a function declaration (0 keeps the default)")
	breaksBeforeFunctionDef  = flag.Int("breaks-before-function-def", 0, "override: blank lines before a function definition (0 keeps the default)")
	breaksBeforeEnum         = flag.Int("breaks-before-enum", 0, "override: blank lines before an enum (0 keeps the default)")
	breaksBeforeEnumStruct   = flag.Int("breaks-before-enum-struct", 0, "override: blank lines before an enum struct (0 keeps the default)")
	breaksBeforeMethodmap    = flag.Int("breaks-before-methodmap", 0, "override: blank lines before a methodmap (0 keeps the default)")

	noBraceWrapFunction  = flag.Bool("no-brace-wrap-function", false, "put a function's opening brace on the header line")
	noBraceWrapLoop      = flag.Bool("no-brace-wrap-loop", false, "put a loop's opening brace on the header line")
	noBraceWrapCondition = flag.Bool("no-brace-wrap-condition", false, "put an if/else's opening brace on the header line")
)

func main() {
	cli.MinArgs = 1
	cli.MaxArgs = -1
	cli.ArgsHelp = " file.sp [file2.sp ...]"
	cli.Main()

	settings := NewSettingsFromFlags()

	if *envFlag {
		out, err := sourcepawn.DumpSettingsEnv(settings)
		if err != nil {
			log.Fatalf("dumping settings: %v", err)
		}
		os.Stdout.WriteString(out)
		return
	}

	files := flag.Args()
	total, err := safecast.Convert[int64](len(files))
	if err != nil {
		log.Fatalf("too many input files: %v", err)
	}
	bar := progressbar.New(progressbar.Config{Total: total, Quiet: len(files) < 2})

	highlight := term.IsTerminal(int(os.Stdout.Fd()))

	exitCode := 0
	for _, path := range files {
		if err := formatOne(path, settings, highlight); err != nil {
			log.Errf("%s: %v", path, err)
			exitCode = 1
		}
		bar.Add(1)
	}
	bar.Close()
	os.Exit(exitCode)
}

func formatOne(path string, settings *sourcepawn.Settings, highlight bool) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	if *astFlag {
		root, err := sourcepawn.Parse(src)
		if err != nil {
			return err
		}
		if highlight {
			os.Stdout.WriteString(sourcepawn.Highlight(root))
		} else {
			os.Stdout.WriteString(sourcepawn.Pretty(root))
		}
		return nil
	}

	out, err := sourcepawn.Format(src, settings)
	if err != nil {
		return err
	}
	if out == "" && len(src) != 0 {
		log.Warnf("%s: syntactically invalid, left unchanged", path)
		return nil
	}

	if !*writeFlag {
		os.Stdout.WriteString(out)
		return nil
	}
	return os.WriteFile(path, []byte(out), 0o644)
}

// NewSettingsFromFlags loads a config file if given, then layers any
// explicitly-set CLI overrides on top of it.
func NewSettingsFromFlags() *sourcepawn.Settings {
	var settings *sourcepawn.Settings
	var err error
	if *configFlag != "" {
		settings, err = sourcepawn.LoadSettingsFile(*configFlag)
		if err != nil {
			log.Fatalf("loading %s: %v", *configFlag, err)
		}
	} else {
		settings = sourcepawn.NewSettings()
	}

	if *breaksBeforeFunctionDecl != 0 {
		settings.BreaksBeforeFunctionDecl = *breaksBeforeFunctionDecl
	}
	if *breaksBeforeFunctionDef != 0 {
		settings.BreaksBeforeFunctionDef = *breaksBeforeFunctionDef
	}
	if *breaksBeforeEnum != 0 {
		settings.BreaksBeforeEnum = *breaksBeforeEnum
	}
	if *breaksBeforeEnumStruct != 0 {
		settings.BreaksBeforeEnumStruct = *breaksBeforeEnumStruct
	}
	if *breaksBeforeMethodmap != 0 {
		settings.BreaksBeforeMethodmap = *breaksBeforeMethodmap
	}
	if *noBraceWrapFunction {
		settings.BraceWrappingBeforeFunction = false
	}
	if *noBraceWrapLoop {
		settings.BraceWrappingBeforeLoop = false
	}
	if *noBraceWrapCondition {
		settings.BraceWrappingBeforeCondition = false
	}
	return settings
}
