package main

import (
	"errors"
	"fmt"
	"go/ast"
	"go/token"
)

var (
	// ErrEmbeddedField is returned for struct fields without a name.
	ErrEmbeddedField = errors.New("embedded fields are not supported")
	// ErrUnsupportedShape is returned for type declarations that are not structs.
	ErrUnsupportedShape = errors.New("only struct types are supported")
)

// FieldInfo describes one named struct field and its resolved settings.
type FieldInfo struct {
	Name     string
	Type     ast.Expr
	Settings FieldSettings
	Pos      token.Pos
}

// FieldError attaches the offending field to a collection failure.
type FieldError struct {
	Field string
	Pos   token.Pos
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("field %s: %v", e.Field, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// collectFields resolves the settings of every field of st, in declaration
// order. Collection stops at the first field that fails.
func collectFields(st *ast.StructType) ([]FieldInfo, error) {
	if st.Fields == nil {
		return nil, nil
	}

	infos := make([]FieldInfo, 0, st.Fields.NumFields())
	for _, field := range st.Fields.List {
		if len(field.Names) == 0 {
			return nil, &FieldError{
				Field: exprString(field.Type),
				Pos:   field.Pos(),
				Err:   ErrEmbeddedField,
			}
		}

		settings, err := resolveSettings(scanAttributes(field.Tag))
		if err != nil {
			return nil, &FieldError{
				Field: field.Names[0].Name,
				Pos:   field.Pos(),
				Err:   err,
			}
		}

		for _, name := range field.Names {
			infos = append(infos, FieldInfo{
				Name:     name.Name,
				Type:     field.Type,
				Settings: settings,
				Pos:      name.Pos(),
			})
		}
	}
	return infos, nil
}
