package main

import (
	"errors"
	"go/ast"
	"go/parser"
	"go/token"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseStruct(t *testing.T, src string) *ast.StructType {
	t.Helper()

	f, err := parser.ParseFile(token.NewFileSet(), "input.go", "package p\n\n"+src, parser.ParseComments)
	require.NoError(t, err)

	for _, decl := range f.Decls {
		if gd, ok := decl.(*ast.GenDecl); ok {
			for _, spec := range gd.Specs {
				if ts, ok := spec.(*ast.TypeSpec); ok {
					st, ok := ts.Type.(*ast.StructType)
					require.True(t, ok, "%s is not a struct", ts.Name.Name)
					return st
				}
			}
		}
	}
	t.Fatal("no type declaration in source")
	return nil
}

func TestCollectFields(t *testing.T) {
	st := parseStruct(t, `type Something struct {
	field1       uint32
	field2       string
	ignoredField uint32 `+"`builder:\"ignore\"`"+`
	a, b         []int  `+"`json:\"-\"`"+`
}`)

	infos, err := collectFields(st)
	require.NoError(t, err)

	names := make([]string, 0, len(infos))
	for _, info := range infos {
		names = append(names, info.Name)
	}
	assert.Equal(t, []string{"field1", "field2", "ignoredField", "a", "b"}, names)

	assert.False(t, infos[0].Settings.Excluded)
	assert.False(t, infos[1].Settings.Excluded)
	assert.True(t, infos[2].Settings.Excluded)
	assert.Equal(t, "uint32", exprString(infos[0].Type))
	assert.Equal(t, "string", exprString(infos[1].Type))
	assert.Equal(t, "[]int", exprString(infos[3].Type))
	assert.Same(t, infos[3].Type, infos[4].Type, "names on one line share the declared type")
}

func TestCollectFieldsEmptyStruct(t *testing.T) {
	infos, err := collectFields(parseStruct(t, `type Empty struct{}`))
	require.NoError(t, err)
	assert.Empty(t, infos)
}

func TestCollectFieldsStopsAtFirstFailure(t *testing.T) {
	st := parseStruct(t, `type Bad struct {
	ok     int
	first  int `+"`builder:\"skip\"`"+`
	second int `+"`builder:\"ignore other\"`"+`
}`)

	infos, err := collectFields(st)
	require.Error(t, err)
	assert.Nil(t, infos)

	var fe *FieldError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, "first", fe.Field)
	assert.True(t, fe.Pos.IsValid())

	var ip *InvalidParameterError
	require.True(t, errors.As(err, &ip))
	assert.Equal(t, "skip", ip.Keyword)
	assert.Equal(t, "field first: invalid attribute parameter `skip`", err.Error())
}

func TestCollectFieldsParseFailure(t *testing.T) {
	st := parseStruct(t, `type Bad struct {
	host string `+"`builder:\"ignore other\"`"+`
}`)

	_, err := collectFields(st)
	require.Error(t, err)
	assert.True(t, isParseError(err))
	assert.Contains(t, err.Error(), "field host: parse error:")
}

func TestCollectFieldsEmbedded(t *testing.T) {
	st := parseStruct(t, `type WithEmbedded struct {
	*Base
	Name string
}`)

	_, err := collectFields(st)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmbeddedField)
	assert.Equal(t, "field *Base: embedded fields are not supported", err.Error())
}
