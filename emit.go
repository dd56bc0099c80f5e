package main

import (
	"errors"
	"fmt"
	"go/ast"
	"go/types"
	"path"
	"strings"
	"unicode"

	"github.com/dave/jennifer/jen"
	"github.com/samber/lo"
)

// DefaultMethodPrefix is prepended to field names to build mutator names.
const DefaultMethodPrefix = "Set"

// ErrMethodCollision is matched by every *MethodCollisionError.
var ErrMethodCollision = errors.New("method name collision")

// MethodCollisionError reports a generated method name that is already taken,
// either by the method of another field or by a field of the same name.
type MethodCollisionError struct {
	Method string
	Field  string
	// Declared is set when Field is the struct field named Method.
	Declared bool
}

func (e *MethodCollisionError) Error() string {
	if e.Declared {
		return fmt.Sprintf("method %s collides with field %s", e.Method, e.Field)
	}
	return fmt.Sprintf("method %s is also generated for field %s", e.Method, e.Field)
}

func (e *MethodCollisionError) Is(target error) bool {
	return target == ErrMethodCollision
}

// Augmentation holds the methods generated for one record.
type Augmentation struct {
	Record  string
	Methods []jen.Code
}

// Config carries the per-record naming used while emitting.
type Config struct {
	ReceiverId string
	StructName string
	TypeParams []string
	Prefix     string
}

func newConfig(ts *ast.TypeSpec, prefix string) Config {
	var typeParams []string
	if ts.TypeParams != nil {
		for _, field := range ts.TypeParams.List {
			for _, name := range field.Names {
				typeParams = append(typeParams, name.Name)
			}
		}
	}

	return Config{
		ReceiverId: receiverId(ts.Name.Name, typeParams),
		StructName: ts.Name.Name,
		TypeParams: typeParams,
		Prefix:     prefix,
	}
}

// structRef is the receiver and result type, including type parameters.
func (c Config) structRef() *jen.Statement {
	ref := jen.Id(c.StructName)
	if len(c.TypeParams) == 0 {
		return ref
	}
	return ref.Types(lo.Map(c.TypeParams, func(name string, _ int) jen.Code {
		return jen.Id(name)
	})...)
}

// methodName returns the mutator name for a field. A prefix ending in an
// underscore keeps the field name as written, anything else title-cases it.
func (c Config) methodName(field string) string {
	if strings.HasSuffix(c.Prefix, "_") {
		return c.Prefix + field
	}
	return c.Prefix + toTitle(field)
}

// includedFields drops excluded and blank fields.
func includedFields(fields []FieldInfo) []FieldInfo {
	return lo.Filter(fields, func(f FieldInfo, _ int) bool {
		return !f.Settings.Excluded && f.Name != "_"
	})
}

// checkMethodNames fails on the first included field whose method name is
// already generated for an earlier field or is the name of any field.
func checkMethodNames(fields []FieldInfo, c Config) error {
	declared := lo.SliceToMap(fields, func(f FieldInfo) (string, struct{}) {
		return f.Name, struct{}{}
	})

	owners := make(map[string]string)
	for _, f := range includedFields(fields) {
		name := c.methodName(f.Name)
		if first, ok := owners[name]; ok {
			return &FieldError{Field: f.Name, Pos: f.Pos, Err: &MethodCollisionError{Method: name, Field: first}}
		}
		if _, ok := declared[name]; ok {
			return &FieldError{Field: f.Name, Pos: f.Pos, Err: &MethodCollisionError{Method: name, Field: name, Declared: true}}
		}
		owners[name] = f.Name
	}
	return nil
}

// emitAugmentation builds one fluent mutator per field that is not excluded,
// in declaration order. Method names must already be checked.
func emitAugmentation(rec Record, fields []FieldInfo, c Config) Augmentation {
	resolver := NewImportResolver(rec.File)

	return Augmentation{
		Record: c.StructName,
		Methods: lo.Map(includedFields(fields), func(f FieldInfo, _ int) jen.Code {
			return writeSetterAST(f, astTypeToJenCode(f.Type, resolver), c)
		}),
	}
}

// writeSetterAST generates a value-receiver method that replaces one field and
// returns the updated copy.
func writeSetterAST(f FieldInfo, fieldType jen.Code, c Config) *jen.Statement {
	name := c.methodName(f.Name)

	return jen.Commentf("%s returns a copy of the %s with %s set to value.", name, c.StructName, f.Name).Line().
		Func().Params(jen.Id(c.ReceiverId).Add(c.structRef())).Id(name).
		Params(jen.Id("value").Add(fieldType)).
		Add(c.structRef()).
		Block(
			jen.Id(c.ReceiverId).Dot(f.Name).Op("=").Id("value"),
			jen.Return(jen.Id(c.ReceiverId)),
		)
}

// ImportResolver maps package names to their full import paths
type ImportResolver struct {
	pkgToPath map[string]string
}

// NewImportResolver creates an ImportResolver from a file's imports.
// Aliased imports are keyed by their alias, blank and dot imports are skipped.
func NewImportResolver(file *ast.File) *ImportResolver {
	resolver := &ImportResolver{pkgToPath: make(map[string]string)}
	if file == nil {
		return resolver
	}

	for _, imp := range file.Imports {
		importPath := strings.Trim(imp.Path.Value, `"`)

		var pkgName string
		if imp.Name != nil {
			if imp.Name.Name == "_" || imp.Name.Name == "." {
				continue
			}
			pkgName = imp.Name.Name
		} else {
			pkgName = guessPackageName(importPath)
		}

		resolver.pkgToPath[pkgName] = importPath
	}
	return resolver
}

// Resolve returns the full import path for a package name.
// For example, "sql" might resolve to "database/sql".
func (r *ImportResolver) Resolve(pkgName string) string {
	if importPath, ok := r.pkgToPath[pkgName]; ok {
		return importPath
	}
	return pkgName
}

// guessPackageName derives the conventional package name of an import path,
// skipping major version suffixes ("example.com/mod/v2" -> "mod",
// "gopkg.in/yaml.v3" -> "yaml").
func guessPackageName(importPath string) string {
	base := path.Base(importPath)
	if len(base) > 1 && base[0] == 'v' && strings.Trim(base[1:], "0123456789") == "" {
		base = path.Base(path.Dir(importPath))
	}
	if i := strings.IndexByte(base, '.'); i > 0 {
		base = base[:i]
	}
	base = strings.TrimPrefix(base, "go-")
	return strings.ReplaceAll(base, "-", "_")
}

// astTypeToJenCode converts an AST type expression to jen code. Package
// qualified names go through the resolver so the output file imports them.
func astTypeToJenCode(expr ast.Expr, resolver *ImportResolver) *jen.Statement {
	switch t := expr.(type) {
	case *ast.Ident:
		return jen.Id(t.Name)
	case *ast.BasicLit:
		return jen.Op(t.Value)
	case *ast.StarExpr:
		return jen.Op("*").Add(astTypeToJenCode(t.X, resolver))
	case *ast.ParenExpr:
		return jen.Parens(astTypeToJenCode(t.X, resolver))
	case *ast.SelectorExpr:
		if pkg, ok := t.X.(*ast.Ident); ok {
			return jen.Qual(resolver.Resolve(pkg.Name), t.Sel.Name)
		}
		return jen.Op(exprString(t))
	case *ast.ArrayType:
		if t.Len == nil {
			return jen.Index().Add(astTypeToJenCode(t.Elt, resolver))
		}
		return jen.Index(astTypeToJenCode(t.Len, resolver)).Add(astTypeToJenCode(t.Elt, resolver))
	case *ast.Ellipsis:
		return jen.Op("...").Add(astTypeToJenCode(t.Elt, resolver))
	case *ast.MapType:
		return jen.Map(astTypeToJenCode(t.Key, resolver)).Add(astTypeToJenCode(t.Value, resolver))
	case *ast.ChanType:
		switch t.Dir {
		case ast.SEND:
			return jen.Chan().Op("<-").Add(astTypeToJenCode(t.Value, resolver))
		case ast.RECV:
			return jen.Op("<-").Chan().Add(astTypeToJenCode(t.Value, resolver))
		default:
			return jen.Chan().Add(astTypeToJenCode(t.Value, resolver))
		}
	case *ast.FuncType:
		return withSignature(jen.Func(), t, resolver)
	case *ast.StructType:
		return jen.Struct(fieldListToJenCode(t.Fields, resolver)...)
	case *ast.InterfaceType:
		return jen.Interface(interfaceElemsToJenCode(t.Methods, resolver)...)
	case *ast.UnaryExpr:
		return jen.Op(t.Op.String()).Add(astTypeToJenCode(t.X, resolver))
	case *ast.BinaryExpr:
		return astTypeToJenCode(t.X, resolver).Op(t.Op.String()).Add(astTypeToJenCode(t.Y, resolver))
	case *ast.IndexExpr:
		return astTypeToJenCode(t.X, resolver).Types(astTypeToJenCode(t.Index, resolver))
	case *ast.IndexListExpr:
		return astTypeToJenCode(t.X, resolver).Types(lo.Map(t.Indices, func(e ast.Expr, _ int) jen.Code {
			return astTypeToJenCode(e, resolver)
		})...)
	default:
		return jen.Op(exprString(expr))
	}
}

// withSignature appends the parameters and results of ft to s.
func withSignature(s *jen.Statement, ft *ast.FuncType, resolver *ImportResolver) *jen.Statement {
	s = s.Params(fieldListToJenCode(ft.Params, resolver)...)
	if ft.Results == nil || len(ft.Results.List) == 0 {
		return s
	}
	if len(ft.Results.List) == 1 && len(ft.Results.List[0].Names) == 0 {
		return s.Add(astTypeToJenCode(ft.Results.List[0].Type, resolver))
	}
	return s.Params(fieldListToJenCode(ft.Results, resolver)...)
}

// interfaceElemsToJenCode converts the methods and embedded elements of an
// interface type.
func interfaceElemsToJenCode(fl *ast.FieldList, resolver *ImportResolver) []jen.Code {
	if fl == nil {
		return nil
	}

	var code []jen.Code
	for _, elem := range fl.List {
		ft, isMethod := elem.Type.(*ast.FuncType)
		if len(elem.Names) == 0 || !isMethod {
			code = append(code, astTypeToJenCode(elem.Type, resolver))
			continue
		}
		for _, name := range elem.Names {
			code = append(code, withSignature(jen.Id(name.Name), ft, resolver))
		}
	}
	return code
}

// fieldListToJenCode converts parameter, result and struct field lists,
// keeping names and raw struct tags.
func fieldListToJenCode(fl *ast.FieldList, resolver *ImportResolver) []jen.Code {
	if fl == nil {
		return nil
	}

	var code []jen.Code
	for _, field := range fl.List {
		typ := astTypeToJenCode(field.Type, resolver)
		if len(field.Names) == 0 {
			code = append(code, withRawTag(typ, field.Tag))
			continue
		}
		for _, name := range field.Names {
			code = append(code, withRawTag(jen.Id(name.Name).Add(typ), field.Tag))
		}
	}
	return code
}

func withRawTag(s *jen.Statement, tag *ast.BasicLit) *jen.Statement {
	if tag == nil {
		return s
	}
	return s.Op(tag.Value)
}

func exprString(expr ast.Expr) string {
	return types.ExprString(expr)
}

// receiverId picks the receiver name: the lowered first letter of the type,
// or "r" when that collides with a type parameter.
func receiverId(structName string, typeParams []string) string {
	id := strings.ToLower(string([]rune(structName)[0]))
	if id == "_" || lo.Contains(typeParams, id) {
		id = "r"
	}
	if lo.Contains(typeParams, id) {
		id = "rcv"
	}
	return id
}

// toTitle capitalizes the first letter of a string (replaces deprecated strings.Title)
func toTitle(s string) string {
	if len(s) == 0 {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

func describeAugmentation(a Augmentation) string {
	return fmt.Sprintf("%s (%d methods)", a.Record, len(a.Methods))
}
