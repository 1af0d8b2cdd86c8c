package model

// FieldType is the concrete UI control tag chosen for a field. It is an open
// string type: the built-in vocabulary below covers the common HTML input
// shapes, and callers can register controls under their own tags.
type FieldType string

const (
	TypeText          FieldType = "text"
	TypeEmail         FieldType = "email"
	TypePassword      FieldType = "password"
	TypeNumber        FieldType = "number"
	TypeTextarea      FieldType = "textarea"
	TypeSelect        FieldType = "select"
	TypeCheckbox      FieldType = "checkbox"
	TypeRadio         FieldType = "radio"
	TypeDate          FieldType = "date"
	TypeTime          FieldType = "time"
	TypeDatetimeLocal FieldType = "datetime-local"
	TypeTel           FieldType = "tel"
	TypeURL           FieldType = "url"
	TypeColor         FieldType = "color"
	TypeFile          FieldType = "file"
	TypeHidden        FieldType = "hidden"
)

// EssentialTypes lists the tags a registry is expected to cover for
// automatically resolved fields. Setup validates registrations against this
// set with a warning diagnostic, never an error.
func EssentialTypes() []FieldType {
	return []FieldType{
		TypeText, TypeEmail, TypeNumber, TypeSelect, TypeCheckbox, TypeDate,
	}
}

// Resolve maps a classification plus an optional override to a field type
// tag. An explicit override wins unconditionally. Array classifications never
// resolve a tag of their own; their element does, through ResolveElement.
func Resolve(c Classification, override *Override) FieldType {
	if override != nil && override.ExplicitType != "" {
		return override.ExplicitType
	}

	switch c.BaseKind {
	case BaseString:
		if c.EmailShaped {
			return TypeEmail
		}
		return TypeText
	case BaseNumber:
		return TypeNumber
	case BaseBoolean:
		return TypeCheckbox
	case BaseDate:
		return TypeDate
	case BaseEnum:
		return TypeSelect
	default:
		return TypeText
	}
}

// ResolveElement resolves the control tag for an array's element. The array
// field's own override applies to the element, not to the array itself. It
// returns false when the classification is not an array or carries no element.
func ResolveElement(c Classification, override *Override) (FieldType, bool) {
	if c.BaseKind != BaseArray || c.Element == nil {
		return "", false
	}
	return Resolve(*c.Element, override), true
}
