// Package main provides the CLI entrypoint for keygen.
//
// keygen is a one-shot Go codegen tool that:
//   - Loads keyed-enum definitions from a YAML file, or scans existing
//     const blocks in a Go package
//   - Validates them (duplicate keys, duplicate variants, likely typos)
//   - Generates enum types with bidirectional string conversion and
//     textual decoding support
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/davecgh/go-spew/spew"

	"keys-generator/internal/analyze"
	"keys-generator/internal/gen"
	"keys-generator/internal/match"
	"keys-generator/internal/schema"
	"keys-generator/keys"
	"keys-generator/options"
)

var (
	defsFlag     = flag.String("defs", "", "path to a YAML definition file")
	scanFlag     = flag.String("scan", "", "package pattern to scan for existing enum declarations")
	typeFlag     = flag.String("type", "", "comma-separated type names to extract (scan mode)")
	outFlag      = flag.String("out", ".", "output directory for generated files")
	pkgFlag      = flag.String("pkg", "", "override the package name of generated files")
	featuresFlag = flag.String("features", "all",
		"comma-separated feature list: "+strings.Join(options.FeatureNames(), ", "))
	checkFlag = flag.Bool("check", false, "validate the definitions without writing files")
	dumpFlag  = flag.Bool("dump", false, "dump the resolved definition model to stderr")
)

func main() {
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "keygen:", err)
		os.Exit(1)
	}
}

func run() error {
	df, err := loadDefs()
	if err != nil {
		return err
	}

	features, err := options.ParseFeatures(*featuresFlag)
	if err != nil {
		var unknown *keys.UnknownKeyError
		if errors.As(err, &unknown) {
			if hint, ok := match.Suggest(unknown.Key, unknown.Expected, match.DefaultSuggestionThreshold); ok {
				return fmt.Errorf("bad -features value: %w (did you mean %q?)", err, hint)
			}
		}

		return fmt.Errorf("bad -features value: %w", err)
	}

	if *dumpFlag {
		spew.Fdump(os.Stderr, df)
	}

	diags := schema.Validate(df)

	if *dumpFlag {
		for _, info := range diags.Infos {
			fmt.Fprintln(os.Stderr, "keygen: info:", info.String())
		}
	}

	for _, w := range diags.Warnings {
		fmt.Fprintln(os.Stderr, "keygen: warning:", w.String())
	}

	if err := diags.Error(); err != nil {
		return err
	}

	if *checkFlag {
		return nil
	}

	cfg := gen.DefaultGeneratorConfig()
	cfg.OutputDir = *outFlag
	cfg.PackageName = *pkgFlag
	cfg.Features = features

	files, err := gen.NewGenerator(cfg).Generate(df)
	if err != nil {
		return err
	}

	return gen.WriteFiles(files, *outFlag)
}

// loadDefs resolves the input mode: YAML definitions or source scanning.
func loadDefs() (*schema.DefFile, error) {
	switch {
	case *defsFlag != "" && *scanFlag != "":
		return nil, errors.New("-defs and -scan are mutually exclusive")

	case *defsFlag != "":
		return schema.LoadFile(*defsFlag)

	case *scanFlag != "":
		names := splitNonEmpty(*typeFlag)
		if len(names) == 0 {
			return nil, errors.New("-scan requires -type")
		}

		return analyze.NewAnalyzer().ScanEnums(*scanFlag, names...)

	default:
		return nil, errors.New("one of -defs or -scan is required, run with -help for usage")
	}
}

func splitNonEmpty(s string) []string {
	var res []string

	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			res = append(res, trimmed)
		}
	}

	return res
}
