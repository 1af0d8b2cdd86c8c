package form

import (
	"github.com/goliatone/go-autoform/pkg/diag"
	"github.com/goliatone/go-autoform/pkg/model"
)

// ArrayField is the sub-resolver for a field classified as array. It resolves
// the element's control type (the array field's override applies to the
// element, never to the array itself) and exposes the pure item operations.
// Every operation returns a fresh sequence; the host is expected to replace
// the whole value, matching its externally-controlled-value contract.
type ArrayField struct {
	Name        string
	Element     model.Classification
	ElementType model.FieldType
	override    *model.Override
}

// Array resolves the array sub-resolver for a field. It returns false, with
// a diagnostic, when the name is unknown or the field is not an array.
func (f *Form) Array(name string) (ArrayField, bool) {
	classification, ok := f.fields[name]
	if !ok {
		f.cfg.sink.Emit(diag.Diagnostic{
			Code:        diag.CodeUnknownField,
			Field:       name,
			Message:     "field is not part of the schema",
			Remediation: "check the field name against the schema definition",
		})
		return ArrayField{}, false
	}

	override := f.overrides[name]
	elementType, ok := model.ResolveElement(classification, override)
	if !ok {
		f.cfg.sink.Emit(diag.Diagnostic{
			Code:        diag.CodeIntrospection,
			Field:       name,
			Message:     "field is not an array or carries no element schema",
			Remediation: "use Field for scalar fields",
		})
		return ArrayField{}, false
	}

	return ArrayField{
		Name:        name,
		Element:     *classification.Element,
		ElementType: elementType,
		override:    override,
	}, true
}

// Strategy returns the add-affordance strategy for the element kind: enums
// offer their remaining unused options, everything else appends a default.
func (a ArrayField) Strategy() model.AddStrategy {
	return model.AddStrategyFor(a.Element.BaseKind)
}

// Append returns a new sequence with one synthesized default element added.
func (a ArrayField) Append(items []model.Value) []model.Value {
	return model.AppendItem(items, a.Element, a.override)
}

// AppendOption returns a new sequence with the chosen enum option added.
func (a ArrayField) AppendOption(items []model.Value, option string) []model.Value {
	return model.AppendValue(items, model.Of(option))
}

// Remove returns a new sequence with the element at index removed; survivors
// keep their relative order and shift down by one.
func (a ArrayField) Remove(items []model.Value, index int) []model.Value {
	return model.RemoveItem(items, index)
}

// RemainingOptions returns the enum options not yet present in the sequence,
// the add affordance for enum elements.
func (a ArrayField) RemainingOptions(items []model.Value) []string {
	return model.RemainingEnumOptions(a.Element, a.override, items)
}
