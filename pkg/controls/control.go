package controls

import (
	"io"

	"github.com/goliatone/go-autoform/pkg/model"
)

// Props is the complete, type-correct bundle a control receives for a single
// field. The engine guarantees every field it dispatches carries one; controls
// never reach back into the schema.
type Props struct {
	// Name is the field's schema name, unique within the form.
	Name string
	// Type is the resolved control tag the field dispatched under.
	Type model.FieldType
	// Label is the display label: override first, then translation, then
	// the humanized field name.
	Label string
	// HideLabel suppresses label rendering without dropping it from
	// assistive metadata.
	HideLabel   bool
	Placeholder string
	// Description is override-supplied help markup, sanitized before it
	// reaches the control.
	Description string
	Disabled    bool
	Required    bool
	// Options carries the selectable choices for select/radio style
	// controls: override options when given, otherwise inferred enum values.
	Options []model.Option

	// Value is the field's current value as held by the host form state.
	Value model.Value
	// SetValue pushes a replacement value into the host form state.
	SetValue func(model.Value)
	// OnBlur notifies the host that the field lost focus.
	OnBlur func()
	// Errors carries host-supplied validation messages for the field.
	Errors []string
}

// Control renders a single form field from its props bundle. Implementations
// live outside the engine: HTML renderers, terminal prompts, test doubles.
type Control interface {
	Render(w io.Writer, props Props) error
}

// ControlFunc adapts a function into a Control.
type ControlFunc func(w io.Writer, props Props) error

// Render calls the underlying function.
func (fn ControlFunc) Render(w io.Writer, props Props) error {
	return fn(w, props)
}
