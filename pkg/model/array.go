package model

// AddStrategy selects how the add affordance behaves for an array field.
type AddStrategy string

const (
	// AddDefault appends one synthesized default element value.
	AddDefault AddStrategy = "default"
	// AddRemainingOptions offers only the enum options not already present
	// in the sequence instead of a generic add action.
	AddRemainingOptions AddStrategy = "options"
)

// AddStrategyFor returns the add strategy for an array element kind. Enum
// elements use the option-filtering strategy; every other kind appends a
// synthesized default.
func AddStrategyFor(kind BaseKind) AddStrategy {
	if kind == BaseEnum {
		return AddRemainingOptions
	}
	return AddDefault
}

// AppendItem returns a new sequence with one synthesized default element
// appended. The default follows the single-value policy for the element's
// base kind; the array field's override applies to the element. The input
// slice is not mutated.
func AppendItem(items []Value, element Classification, override *Override) []Value {
	out := make([]Value, 0, len(items)+1)
	out = append(out, items...)
	out = append(out, DefaultForKind(element.BaseKind, override))
	return out
}

// AppendValue returns a new sequence with the supplied value appended. Used
// by the enum add strategy once the caller picks one of the remaining
// options.
func AppendValue(items []Value, value Value) []Value {
	out := make([]Value, 0, len(items)+1)
	out = append(out, items...)
	out = append(out, value)
	return out
}

// RemoveItem returns a new sequence with the element at index removed,
// preserving the order of the survivors. Out-of-range indices return an
// unchanged copy. The input slice is not mutated.
func RemoveItem(items []Value, index int) []Value {
	if index < 0 || index >= len(items) {
		return append([]Value(nil), items...)
	}
	out := make([]Value, 0, len(items)-1)
	out = append(out, items[:index]...)
	out = append(out, items[index+1:]...)
	return out
}

// RemainingEnumOptions returns the element's enum options not already present
// in the sequence, preserving declaration order. Non-enum elements yield nil.
// An override's Options replace the inferred values as the candidate set.
func RemainingEnumOptions(element Classification, override *Override, items []Value) []string {
	var candidates []string
	if override != nil && len(override.Options) > 0 {
		candidates = make([]string, 0, len(override.Options))
		for _, opt := range override.Options {
			candidates = append(candidates, opt.Value)
		}
	} else if element.BaseKind == BaseEnum {
		candidates = element.EnumValues
	}
	if len(candidates) == 0 {
		return nil
	}

	used := make(map[string]struct{}, len(items))
	for _, item := range items {
		if s, ok := item.Data.(string); ok && item.State == StatePresent {
			used[s] = struct{}{}
		}
	}

	remaining := make([]string, 0, len(candidates))
	for _, candidate := range candidates {
		if _, taken := used[candidate]; taken {
			continue
		}
		remaining = append(remaining, candidate)
	}
	if len(remaining) == 0 {
		return nil
	}
	return remaining
}
