// Package main implements buildergen, a code generator for fluent mutator
// methods on Go structs.
//
// For every field of a selected struct, buildergen generates a value-receiver
// method that returns a copy of the struct with that one field replaced, so
// calls can be chained:
//
//	s := Something{}.SetField1(1).SetField2("x")
//
// Usage:
//
//	buildergen [flags] [<package-dir>] [<type-name>...]
//
// Structs are selected by naming them on the command line or by a
// //builder:generate line in their doc comment.
//
// Flags:
//
//	-output <path>
//	    Location where generated methods will be written (default <dir>/builder_gen.go)
//	-package <name>
//	    Name of package to use in output file (default: the source package name)
//	-prefix <prefix>
//	    Prefix of generated method names (default "Set"); a prefix ending in _
//	    keeps field names as written, so -prefix=set_ yields set_field1
//	-workers <n>
//	    Number of records generated concurrently (default GOMAXPROCS)
//	-check
//	    Do not write; print a diff and exit 1 if the output is out of date
//	-watch, -debounce <duration>
//	    Regenerate whenever a Go file in the package changes
//	-v
//	    Print the field inventory of every record
//
// Example:
//
//	//go:generate go run github.com/ecordell/buildergen
//
// Struct Tag Format:
//
// Fields may carry a `builder` struct tag whose value is a single keyword:
//   - "ignore" - Do not generate a method for this field
//
// Any other value is reported as a diagnostic and no methods are generated
// for that struct. Other tag keys are left alone.
//
// Example struct:
//
//	//builder:generate
//	type Something struct {
//	    field1       uint32
//	    field2       string
//	    ignoredField uint32 `builder:"ignore"`
//	}
package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/samber/lo"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("buildergen: ")
	os.Exit(realMain(os.Args[1:]))
}

func realMain(args []string) int {
	opts, err := parseOptions(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		log.Print(err)
		return 2
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if opts.Watch {
		if err := watch(ctx, opts, os.Stdout, os.Stderr); err != nil {
			log.Print(err)
			return 1
		}
		return 0
	}

	ok, err := run(ctx, opts, os.Stdout, os.Stderr)
	if err != nil {
		log.Print(err)
		return 1
	}
	if !ok {
		return 1
	}
	return 0
}

// run generates the output for one package. The error return is for failures
// that leave nothing to write; ok is false when diagnostics were reported or,
// in check mode, when the output is stale.
func run(ctx context.Context, opts *Options, stdout, stderr io.Writer) (ok bool, err error) {
	pkg, err := loadPackage(opts.Dir, opts.Output)
	if err != nil {
		return false, err
	}

	records := findRecords(pkg, opts.typeFilter())
	found := lo.Map(records, func(r Record, _ int) string { return r.Spec.Name.Name })
	if missing := lo.Without(opts.Types, found...); len(missing) > 0 {
		return false, fmt.Errorf("types not found in %s: %s", opts.Dir, strings.Join(missing, ", "))
	}
	if len(records) == 0 {
		return false, ErrNoRecords
	}

	pkgName, pkgPath := pkg.Name, pkg.Path
	if opts.Package != "" && opts.Package != pkg.Name {
		pkgName, pkgPath = opts.Package, ""
	}
	_, _ = fmt.Fprintf(stdout, "Generating builder methods for %s.%s...\n", pkgName, strings.Join(found, ", "))

	g := &Generator{Prefix: opts.Prefix, Workers: opts.Workers}
	if opts.Verbose {
		g.Verbose = stdout
	}
	res, err := g.Generate(ctx, pkg.Fset, records)
	if err != nil {
		return false, err
	}

	var out bytes.Buffer
	if err := res.Render(&out, pkgPath, pkgName); err != nil {
		return false, fmt.Errorf("render: %w", err)
	}

	for _, d := range res.Diagnostics {
		_, _ = fmt.Fprintln(stderr, d)
	}

	if opts.Check {
		upToDate, err := checkOutput(opts.Output, out.Bytes(), stdout)
		if err != nil {
			return false, err
		}
		return upToDate && len(res.Diagnostics) == 0, nil
	}

	if err := os.WriteFile(opts.Output, out.Bytes(), 0o644); err != nil {
		return false, fmt.Errorf("couldn't write %s: %w", opts.Output, err)
	}
	_, _ = fmt.Fprintf(stdout, "Wrote %d builder methods to %s\n", res.MethodCount(), opts.Output)
	return len(res.Diagnostics) == 0, nil
}
