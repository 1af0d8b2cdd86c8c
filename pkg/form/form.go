package form

import (
	"fmt"
	"sort"

	"github.com/goliatone/go-autoform/pkg/controls"
	"github.com/goliatone/go-autoform/pkg/diag"
	"github.com/goliatone/go-autoform/pkg/model"
	"github.com/goliatone/go-autoform/pkg/schema"
)

// Form binds a root object schema to a Config and resolves its fields into
// dispatchable controls. Classification happens once at construction; value
// state stays with the host form library, which feeds it back in through
// Props callbacks and the Defaults/Normalize helpers.
type Form struct {
	cfg       *Config
	root      schema.Node
	names     []string
	nodes     map[string]schema.Node
	fields    map[string]model.Classification
	overrides map[string]*model.Override
	provided  map[string]model.Value
}

// FormOption customises a single form instance.
type FormOption func(*Form)

// WithOverrides supplies the per-field caller overrides.
func WithOverrides(overrides map[string]*model.Override) FormOption {
	return func(f *Form) {
		f.overrides = overrides
	}
}

// WithValues supplies caller-provided initial values. They always win over
// synthesized defaults, including explicit null and absent entries.
func WithValues(values map[string]model.Value) FormOption {
	return func(f *Form) {
		f.provided = values
	}
}

// New builds a Form over a root object node. Non-object roots are the one
// fatal misuse: nothing downstream can work without a field set. Individual
// malformed fields inside the object degrade to unknown classifications with
// a diagnostic instead.
func New(cfg *Config, root schema.Node, options ...FormOption) (*Form, error) {
	if cfg == nil {
		cfg = NewConfig()
	}
	unwrapped := schema.Unwrap(root)
	if unwrapped.Kind != schema.KindObject {
		return nil, fmt.Errorf("form: root schema must be an object, got %q", unwrapped.Kind)
	}

	f := &Form{
		cfg:    cfg,
		root:   root,
		nodes:  make(map[string]schema.Node, len(unwrapped.Fields)),
		fields: make(map[string]model.Classification, len(unwrapped.Fields)),
	}
	for _, option := range options {
		if option != nil {
			option(f)
		}
	}

	for name := range unwrapped.Fields {
		f.names = append(f.names, name)
	}
	sort.Strings(f.names)

	for _, name := range f.names {
		node := unwrapped.Fields[name]
		classification := model.Classify(node)
		if classification.BaseKind == model.BaseUnknown {
			cfg.sink.Emit(diag.Diagnostic{
				Code:        diag.CodeIntrospection,
				Field:       name,
				Message:     "schema shape not supported, classified as unknown",
				Remediation: "field falls back to the generic text control",
			})
		}
		f.nodes[name] = node
		f.fields[name] = classification
	}

	return f, nil
}

// Names returns the field names in render order.
func (f *Form) Names() []string {
	return append([]string(nil), f.names...)
}

// Classifications returns the derived classification per field name.
func (f *Form) Classifications() map[string]model.Classification {
	out := make(map[string]model.Classification, len(f.fields))
	for name, classification := range f.fields {
		out[name] = classification
	}
	return out
}

// ResolvedField is the dispatch result for one field: the resolved type tag,
// the control to render it with (nil when dispatch missed), and the props
// bundle the control receives.
type ResolvedField struct {
	Name           string
	Classification model.Classification
	Type           model.FieldType
	Control        controls.Control
	Props          controls.Props
}

// FieldState carries the host form-state triple for one field at dispatch
// time. All members are optional.
type FieldState struct {
	Value    model.Value
	SetValue func(model.Value)
	OnBlur   func()
	Errors   []string
}

// Field resolves a single field by name. Unknown names emit a diagnostic and
// return false: nothing is rendered for them. A resolved type with no
// registered control also emits a diagnostic; the returned field then has a
// nil Control, which callers must treat as "render nothing".
func (f *Form) Field(name string, state FieldState) (ResolvedField, bool) {
	classification, ok := f.fields[name]
	if !ok {
		f.cfg.sink.Emit(diag.Diagnostic{
			Code:        diag.CodeUnknownField,
			Field:       name,
			Message:     "field is not part of the schema",
			Remediation: "check the field name against the schema definition",
		})
		return ResolvedField{}, false
	}

	override := f.overrides[name]
	fieldType := model.Resolve(classification, override)

	resolved := ResolvedField{
		Name:           name,
		Classification: classification,
		Type:           fieldType,
	}

	resolved.Control = f.lookupControl(name, fieldType, override)
	resolved.Props = controls.BuildProps(controls.PropsInput{
		Name:           name,
		Classification: classification,
		Override:       override,
		Type:           fieldType,
		Translate:      f.cfg.translate,
		Value:          state.Value,
		SetValue:       state.SetValue,
		OnBlur:         state.OnBlur,
		Errors:         state.Errors,
	})

	if len(state.Errors) > 0 {
		f.cfg.ReportErrors(name, state.Errors)
	}

	return resolved, true
}

func (f *Form) lookupControl(name string, fieldType model.FieldType, override *model.Override) controls.Control {
	if override != nil && override.Control != nil {
		if control, ok := override.Control.(controls.Control); ok {
			return control
		}
		f.cfg.sink.Emit(diag.Diagnostic{
			Code:        diag.CodeUnresolvedType,
			Field:       name,
			Message:     "custom control does not implement controls.Control",
			Remediation: "supply a controls.Control implementation",
		})
		return nil
	}

	control, ok := f.cfg.registry.Get(fieldType)
	if !ok {
		f.cfg.sink.Emit(diag.Diagnostic{
			Code:        diag.CodeUnresolvedType,
			Field:       name,
			Message:     fmt.Sprintf("no control registered for type %q", fieldType),
			Remediation: fmt.Sprintf("register a control for %q", fieldType),
		})
		return nil
	}
	return control
}

// Defaults computes the complete default value map for the form, overlaying
// caller-provided values on synthesized per-kind defaults. Ownership of the
// returned map passes to the host form-state library.
func (f *Form) Defaults() map[string]model.Value {
	return model.Synthesize(f.fields, f.provided, f.overrides)
}

// Normalize applies the empty-value directives to final values before
// submission. The input is not mutated.
func (f *Form) Normalize(values map[string]model.Value) map[string]model.Value {
	return model.NormalizeEmpty(values, f.overrides)
}
