package model

// DefaultForKind returns the synthesized initial value for a single field of
// the given kind under the supplied override.
//
// Without a directive, strings start as the empty string so text inputs stay
// controlled, booleans as false, numbers and dates as null, and enums,
// arrays, and unknown shapes as absent. Empty-value directives reshape the
// string and number defaults; the remaining kinds ignore them.
func DefaultForKind(kind BaseKind, override *Override) Value {
	directive := override.EmptyDirective()

	switch kind {
	case BaseString:
		switch directive {
		case EmptyToNull:
			return Null()
		case EmptyToUndefined:
			return Undefined()
		default:
			return Of("")
		}
	case BaseNumber:
		switch directive {
		case EmptyToZero:
			return Of(0)
		case EmptyToUndefined:
			return Undefined()
		default:
			return Null()
		}
	case BaseBoolean:
		return Of(false)
	case BaseDate:
		return Null()
	default:
		// enum, array, unknown
		return Undefined()
	}
}

// Synthesize computes the complete default value map for a field set.
// Caller-provided values always win, including explicit null and absent
// entries; synthesis only fills the names the provided map does not mention.
// The result is total over the field set and never nil for a non-empty one.
func Synthesize(fields map[string]Classification, provided map[string]Value, overrides map[string]*Override) map[string]Value {
	if len(fields) == 0 {
		return map[string]Value{}
	}

	out := make(map[string]Value, len(fields))
	for name, classification := range fields {
		if value, ok := provided[name]; ok {
			out[name] = value
			continue
		}
		out[name] = DefaultForKind(classification.BaseKind, overrides[name])
	}
	return out
}
