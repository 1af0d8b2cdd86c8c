package model

import "github.com/goliatone/go-autoform/pkg/schema"

// BaseKind is the simplified enum for form-friendly field kinds.
type BaseKind string

const (
	BaseString  BaseKind = "string"
	BaseNumber  BaseKind = "number"
	BaseBoolean BaseKind = "boolean"
	BaseEnum    BaseKind = "enum"
	BaseArray   BaseKind = "array"
	BaseDate    BaseKind = "date"
	BaseUnknown BaseKind = "unknown"
)

// Classification is the UI-relevant summary derived from a schema node. It is
// immutable once computed; recompute it when the owning schema changes.
//
// EnumValues is set only for enum kinds and Element only for array kinds; the
// two never coexist.
type Classification struct {
	BaseKind    BaseKind
	Optional    bool
	EmailShaped bool
	EnumValues  []string
	Element     *Classification
}

// Classify derives a field classification from a schema node. The base kind
// comes from the unwrapped shape while optionality is detected on the
// original node, which still carries its wrapper layers. Shapes the engine
// does not understand classify as unknown rather than failing.
func Classify(node schema.Node) Classification {
	c := Classification{
		BaseKind: BaseUnknown,
		Optional: schema.IsOptional(node),
	}

	unwrapped := schema.Unwrap(node)
	switch unwrapped.Kind {
	case schema.KindString:
		c.BaseKind = BaseString
		c.EmailShaped = unwrapped.HasCheck(schema.CheckEmail)
	case schema.KindNumber:
		c.BaseKind = BaseNumber
	case schema.KindBoolean:
		c.BaseKind = BaseBoolean
	case schema.KindDate:
		c.BaseKind = BaseDate
	case schema.KindEnum:
		c.BaseKind = BaseEnum
		c.EnumValues = append([]string(nil), unwrapped.Values...)
	case schema.KindArray:
		c.BaseKind = BaseArray
		if unwrapped.Element != nil {
			element := Classify(*unwrapped.Element)
			c.Element = &element
		}
	}

	return c
}
