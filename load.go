package main

import (
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"path/filepath"
	"strings"

	"golang.org/x/tools/go/packages"
)

// BuilderMarker opts a type declaration into generation when it appears as a
// line of the declaration's doc comment.
const BuilderMarker = "//builder:generate"

var ErrNoRecords = errors.New("no records found")

// Package is a parsed source package.
type Package struct {
	Name  string
	Path  string
	Fset  *token.FileSet
	Files []*ast.File
	// Filenames[i] is the path Files[i] was parsed from.
	Filenames []string
}

// Record is one type declaration selected for generation.
type Record struct {
	Spec     *ast.TypeSpec
	File     *ast.File
	Filename string
}

// loadPackage resolves the package in dir and parses its Go files. The file at
// skipPath, normally the previous output, is not parsed. Any syntax error is
// returned as is: there is nothing sensible to generate from broken source.
func loadPackage(dir, skipPath string) (*Package, error) {
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedFiles,
		Dir:  dir,
	}
	pkgs, err := packages.Load(cfg, ".")
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", dir, err)
	}
	if len(pkgs) != 1 {
		return nil, fmt.Errorf("load %s: expected one package, found %d", dir, len(pkgs))
	}
	lp := pkgs[0]
	if len(lp.Errors) > 0 {
		return nil, fmt.Errorf("load %s: %w", dir, lp.Errors[0])
	}

	skip := ""
	if skipPath != "" {
		if skip, err = filepath.Abs(skipPath); err != nil {
			return nil, err
		}
	}

	pkg := &Package{
		Name: lp.Name,
		Path: lp.PkgPath,
		Fset: token.NewFileSet(),
	}
	for _, filename := range lp.GoFiles {
		if filename == skip {
			continue
		}
		f, err := parser.ParseFile(pkg.Fset, filename, nil, parser.ParseComments)
		if err != nil {
			return nil, fmt.Errorf("parse: %w", err)
		}
		pkg.Files = append(pkg.Files, f)
		pkg.Filenames = append(pkg.Filenames, filename)
	}
	return pkg, nil
}

// findRecords returns the top-level type declarations carrying the marker or
// named in names, in file and declaration order.
func findRecords(pkg *Package, names map[string]struct{}) []Record {
	found := make([]Record, 0)
	for i, file := range pkg.Files {
		for _, decl := range file.Decls {
			gd, ok := decl.(*ast.GenDecl)
			if !ok || gd.Tok != token.TYPE {
				continue
			}

			for _, spec := range gd.Specs {
				ts, ok := spec.(*ast.TypeSpec)
				if !ok || ts.Name == nil {
					continue
				}

				doc := ts.Doc
				if doc == nil && len(gd.Specs) == 1 {
					doc = gd.Doc
				}

				_, named := names[ts.Name.Name]
				if !named && !hasMarker(doc) {
					continue
				}

				found = append(found, Record{
					Spec:     ts,
					File:     file,
					Filename: pkg.Filenames[i],
				})
			}
		}
	}
	return found
}

func hasMarker(doc *ast.CommentGroup) bool {
	if doc == nil {
		return false
	}
	for _, c := range doc.List {
		if strings.TrimSpace(c.Text) == BuilderMarker {
			return true
		}
	}
	return false
}
