// Package inflect renders identifiers in the usual case styles.
package inflect

import (
	"github.com/iancoleman/strcase"

	"github.com/doeshing/envctx/internal/domain"
	"github.com/doeshing/envctx/internal/ports"
)

// Value is an identifier whose canonical rendering is fixed at
// construction. Other renderings are computed from the raw text.
type Value struct {
	text      string
	canonical string
}

// SnakeCase builds a Value whose canonical rendering is snake_case.
func SnakeCase(text string) Value {
	return Value{text: text, canonical: strcase.ToSnake(text)}
}

func (v Value) Text() string           { return v.text }
func (v Value) Snake() string          { return strcase.ToSnake(v.text) }
func (v Value) ScreamingSnake() string { return strcase.ToScreamingSnake(v.text) }
func (v Value) Kebab() string          { return strcase.ToKebab(v.text) }
func (v Value) Camel() string          { return strcase.ToLowerCamel(v.text) }
func (v Value) Pascal() string         { return strcase.ToCamel(v.text) }

// String returns the canonical rendering.
func (v Value) String() string { return v.canonical }

// Converter adapts SnakeCase to ports.CaseConverter.
type Converter struct{}

// NewConverter returns the strcase-backed converter.
func NewConverter() Converter {
	return Converter{}
}

// ToSnakeCase implements ports.CaseConverter.
func (Converter) ToSnakeCase(raw string) domain.InflectableName {
	return SnakeCase(raw)
}

var _ ports.CaseConverter = Converter{}
var _ domain.InflectableName = Value{}
