package schema

// Unwrap peels optional, nullable, default, and effect wrappers from a node
// until a base shape remains. Unions are resolved to their first option whose
// own unwrapped form is not a literal: the common "type or empty-string
// sentinel" pattern encodes optionality as a union with a literal, and the
// literal branch carries no shape information. A union whose options all
// collapse to literals yields an invalid node.
//
// Unwrap is idempotent: applying it to its own result returns the same node.
func Unwrap(node Node) Node {
	for {
		switch node.Kind {
		case KindOptional, KindNullable, KindDefault, KindEffect:
			if node.Inner == nil {
				return Node{}
			}
			node = *node.Inner
		case KindUnion:
			next, ok := firstNonLiteral(node.Options)
			if !ok {
				return Node{}
			}
			node = next
		default:
			return node
		}
	}
}

// firstNonLiteral returns the first option, in declaration order, whose
// unwrapped form is not a literal. Only the first match is considered; unions
// mixing several genuinely different base shapes resolve to the first one.
func firstNonLiteral(options []Node) (Node, bool) {
	for _, option := range options {
		unwrapped := Unwrap(option)
		if !unwrapped.Valid() || unwrapped.Kind == KindLiteral {
			continue
		}
		return option, true
	}
	return Node{}, false
}

// IsOptional reports whether the original, non-unwrapped node accepts an
// empty value. Optional and nullable wrappers qualify directly. A union
// qualifies when any option is a literal (an escape-hatch sentinel even when
// the primary branch is mandatory) or is itself optional. All other shapes,
// including default and effect wrappers, do not.
//
// This deliberately does not share the unwrapper's literal handling: the
// unwrapper skips literals to find the base shape, while this check treats
// the same literals as evidence of emptiness-acceptance.
func IsOptional(node Node) bool {
	switch node.Kind {
	case KindOptional, KindNullable:
		return true
	case KindUnion:
		for _, option := range node.Options {
			if option.Kind == KindLiteral {
				return true
			}
			if IsOptional(option) {
				return true
			}
		}
	}
	return false
}
