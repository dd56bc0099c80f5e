package main

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"go/token"
	"io"
	"runtime"

	"github.com/dave/jennifer/jen"
	"github.com/davecgh/go-spew/spew"
	"golang.org/x/sync/errgroup"
)

// GeneratedHeader is the first line of every generated file.
const GeneratedHeader = "Code generated by buildergen. DO NOT EDIT."

// RecordError attaches the record name to a generation failure.
type RecordError struct {
	Record string
	Err    error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("cannot generate builder methods for `%s`: %v", e.Record, e.Err)
}

func (e *RecordError) Unwrap() error {
	return e.Err
}

// Diagnostic is a user-facing report about one record that produced no methods.
type Diagnostic struct {
	Pos token.Position
	Err error
}

func (d Diagnostic) String() string {
	if d.Pos.IsValid() {
		return fmt.Sprintf("%s: %v", d.Pos, d.Err)
	}
	return d.Err.Error()
}

// Generator turns selected records into augmentations.
type Generator struct {
	Prefix  string
	Workers int
	// Verbose, when set, receives a dump of every record's field inventory.
	Verbose io.Writer
}

// Result is the outcome of one generation run over a package.
type Result struct {
	Augmentations []Augmentation
	Diagnostics   []Diagnostic
}

type fieldSummary struct {
	Name     string
	Type     string
	Excluded bool
}

type recordResult struct {
	augmentation Augmentation
	diagnostic   *Diagnostic
	inventory    []fieldSummary
}

// Generate runs every record independently. A record that fails yields a
// diagnostic and an empty augmentation; the others are unaffected. Results
// keep the order of records.
func (g *Generator) Generate(ctx context.Context, fset *token.FileSet, records []Record) (*Result, error) {
	workers := g.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	results := make([]recordResult, len(records))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i, rec := range records {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = generateRecord(fset, rec, g.prefix())
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	res := &Result{Augmentations: make([]Augmentation, 0, len(results))}
	for _, r := range results {
		if g.Verbose != nil {
			_, _ = fmt.Fprintf(g.Verbose, "[buildergen] %s %s", describeAugmentation(r.augmentation), spew.Sdump(r.inventory))
		}
		res.Augmentations = append(res.Augmentations, r.augmentation)
		if r.diagnostic != nil {
			res.Diagnostics = append(res.Diagnostics, *r.diagnostic)
		}
	}
	return res, nil
}

func (g *Generator) prefix() string {
	if g.Prefix == "" {
		return DefaultMethodPrefix
	}
	return g.Prefix
}

// generateRecord checks the record's shape, collects its fields, checks the
// method names and emits the mutators. Failures are converted to a diagnostic
// attributed to the record.
func generateRecord(fset *token.FileSet, rec Record, prefix string) recordResult {
	name := rec.Spec.Name.Name
	empty := Augmentation{Record: name}

	st, ok := rec.Spec.Type.(*ast.StructType)
	if !ok || rec.Spec.Assign.IsValid() {
		return recordResult{
			augmentation: empty,
			diagnostic: &Diagnostic{
				Pos: fset.Position(rec.Spec.Pos()),
				Err: &RecordError{Record: name, Err: ErrUnsupportedShape},
			},
		}
	}

	c := newConfig(rec.Spec, prefix)
	fields, err := collectFields(st)
	if err == nil {
		err = checkMethodNames(fields, c)
	}
	if err != nil {
		pos := rec.Spec.Pos()
		var fe *FieldError
		if errors.As(err, &fe) && fe.Pos.IsValid() {
			pos = fe.Pos
		}
		return recordResult{
			augmentation: empty,
			diagnostic: &Diagnostic{
				Pos: fset.Position(pos),
				Err: &RecordError{Record: name, Err: err},
			},
		}
	}

	inventory := make([]fieldSummary, 0, len(fields))
	for _, f := range fields {
		inventory = append(inventory, fieldSummary{Name: f.Name, Type: exprString(f.Type), Excluded: f.Settings.Excluded})
	}

	return recordResult{
		augmentation: emitAugmentation(rec, fields, c),
		inventory:    inventory,
	}
}

// Render writes the augmentations as one Go file of package pkgName. pkgPath
// is the import path of that package, used to leave its own types unqualified.
func (r *Result) Render(w io.Writer, pkgPath, pkgName string) error {
	var buf *jen.File
	if pkgPath != "" {
		buf = jen.NewFilePathName(pkgPath, pkgName)
	} else {
		buf = jen.NewFile(pkgName)
	}
	buf.HeaderComment(GeneratedHeader)

	for _, a := range r.Augmentations {
		for _, m := range a.Methods {
			buf.Add(m)
			buf.Line()
		}
	}

	return buf.Render(w)
}

// MethodCount is the number of methods across all augmentations.
func (r *Result) MethodCount() int {
	n := 0
	for _, a := range r.Augmentations {
		n += len(a.Methods)
	}
	return n
}
