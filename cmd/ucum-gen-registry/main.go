// Command ucum-gen-registry compiles a UCUM essence XML document into the
// embedded Go registry pkg/ucum ships (pkg/ucum/registry_data.go).
//
// This is a build-time tool, not part of the public API; its output is
// committed to the repository rather than regenerated on every build.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/ucum-go/ucum/internal/codegen/ucumgen"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	input := flag.String("input", "testdata/ucum-essence.xml", "path to the UCUM essence XML document")
	output := flag.String("output", "pkg/ucum/registry_data.go", "path to write the generated registry Go source")
	flag.Parse()

	slog.Info("ucum-gen-registry: loading essence document", "path", *input)
	spec, err := ucumgen.LoadFromFile(*input)
	if err != nil {
		return fmt.Errorf("load: %w", err)
	}

	slog.Info("ucum-gen-registry: resolving factor graph",
		"prefixes", len(spec.Prefixes), "base_units", len(spec.BaseUnits), "units", len(spec.Units))
	resolved, err := ucumgen.Resolve(spec)
	if err != nil {
		return fmt.Errorf("resolve: %w", err)
	}

	slog.Info("ucum-gen-registry: writing registry", "path", *output,
		"units", len(resolved.Units), "prefixes", len(resolved.Prefixes))
	if err := ucumgen.Generate(*input, *output, resolved); err != nil {
		return fmt.Errorf("generate: %w", err)
	}

	slog.Info("ucum-gen-registry: done")
	return nil
}
