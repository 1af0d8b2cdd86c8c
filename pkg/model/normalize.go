package model

// NormalizeEmpty applies the submit-time empty-value directives to a set of
// final values. Fields without a directive, and values that are not empty,
// pass through unchanged. The input map is never mutated.
func NormalizeEmpty(values map[string]Value, overrides map[string]*Override) map[string]Value {
	if len(values) == 0 {
		return map[string]Value{}
	}

	out := make(map[string]Value, len(values))
	for name, value := range values {
		out[name] = normalizeValue(value, overrides[name].EmptyDirective())
	}
	return out
}

func normalizeValue(value Value, directive EmptyMode) Value {
	if directive == EmptyKeep || !value.IsEmpty() {
		return value
	}
	switch directive {
	case EmptyToNull:
		return Null()
	case EmptyToUndefined:
		return Undefined()
	case EmptyToZero:
		return Of(0)
	default:
		return value
	}
}
