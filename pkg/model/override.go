package model

// Option is a single selectable choice offered by select/radio style
// controls.
type Option struct {
	Value string
	Label string
}

// EmptyMode describes how an empty submitted value is canonicalized.
type EmptyMode uint8

const (
	// EmptyKeep leaves empty values untouched.
	EmptyKeep EmptyMode = iota
	// EmptyToNull converts empty values to explicit null.
	EmptyToNull
	// EmptyToUndefined converts empty values to absent.
	EmptyToUndefined
	// EmptyToZero converts empty values to numeric zero.
	EmptyToZero
)

// Override is the caller-supplied per-field configuration. Every field is
// optional; set fields take precedence over automatic inference.
type Override struct {
	// ExplicitType bypasses type resolution entirely. It wins even when no
	// control is registered for the tag; that failure surfaces at dispatch.
	ExplicitType FieldType
	Label        string
	Placeholder  string
	Description  string
	Disabled     bool
	HideLabel    bool
	// Options replaces the enum options inferred from the schema.
	Options []Option

	// Empty-value directives. At most one should be set; when several are,
	// the documented precedence is null, then undefined, then zero.
	EmptyAsNull      bool
	EmptyAsUndefined bool
	EmptyAsZero      bool

	// Control bypasses the dispatch registry with a caller-provided
	// renderable control. The concrete type must satisfy controls.Control;
	// it is declared as any here to keep the dependency one-directional.
	Control any
}

// EmptyDirective resolves the empty-value directive, applying the
// null > undefined > zero precedence when more than one flag is set.
func (o *Override) EmptyDirective() EmptyMode {
	if o == nil {
		return EmptyKeep
	}
	switch {
	case o.EmptyAsNull:
		return EmptyToNull
	case o.EmptyAsUndefined:
		return EmptyToUndefined
	case o.EmptyAsZero:
		return EmptyToZero
	default:
		return EmptyKeep
	}
}
