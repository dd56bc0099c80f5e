package main

import (
	"fmt"
	"go/ast"
	"go/parser"
	"iter"
	"strconv"

	"github.com/fatih/structtag"
)

// BuilderFieldTag is the struct tag key owned by buildergen. Tags under any
// other key are left alone.
const BuilderFieldTag = "builder"

// FieldSettings is the resolved configuration of a single field.
type FieldSettings struct {
	Excluded bool
}

// keywords is the allow-list of builder tag keywords together with the effect
// each one has on a field's settings.
var keywords = map[string]func(*FieldSettings){
	"ignore": func(s *FieldSettings) { s.Excluded = true },
}

// ParseError reports a builder tag payload that is not a single identifier.
type ParseError struct {
	Payload string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// InvalidParameterError reports an identifier that is not on the allow-list.
type InvalidParameterError struct {
	Keyword string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid attribute parameter `%s`", e.Keyword)
}

// scanAttributes yields the keyword of every builder tag attached to a field,
// in the order the tags appear. Payloads that do not parse are yielded as
// errors so the caller decides when to stop.
func scanAttributes(tag *ast.BasicLit) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		if tag == nil {
			return
		}

		raw, err := strconv.Unquote(tag.Value)
		if err != nil {
			yield("", &ParseError{Payload: tag.Value, Err: err})
			return
		}

		tags, err := structtag.Parse(raw)
		if err != nil {
			yield("", &ParseError{Payload: raw, Err: err})
			return
		}
		if tags == nil {
			return
		}

		for _, t := range tags.Tags() {
			if t.Key != BuilderFieldTag {
				continue
			}
			if !yield(parseKeyword(t.Value())) {
				return
			}
		}
	}
}

// parseKeyword parses a tag payload as exactly one Go identifier.
func parseKeyword(payload string) (string, error) {
	expr, err := parser.ParseExpr(payload)
	if err != nil {
		return "", &ParseError{Payload: payload, Err: err}
	}

	ident, ok := expr.(*ast.Ident)
	if !ok {
		return "", &ParseError{
			Payload: payload,
			Err:     fmt.Errorf("expected identifier, found %q", payload),
		}
	}
	return ident.Name, nil
}

// resolveSettings folds scanned keywords into FieldSettings. The first failure
// stops resolution; nothing after it is applied.
func resolveSettings(attrs iter.Seq2[string, error]) (FieldSettings, error) {
	var settings FieldSettings
	for kw, err := range attrs {
		if err != nil {
			return FieldSettings{}, err
		}

		apply, ok := keywords[kw]
		if !ok {
			return FieldSettings{}, &InvalidParameterError{Keyword: kw}
		}
		apply(&settings)
	}
	return settings, nil
}
