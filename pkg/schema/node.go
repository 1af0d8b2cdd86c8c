package schema

// Kind enumerates the shapes a schema node can take. Base kinds describe a
// concrete value shape; wrapper kinds carry exactly one inner node and add
// semantics (optionality, defaults, refinements) without changing the shape.
type Kind string

const (
	KindString  Kind = "string"
	KindNumber  Kind = "number"
	KindBoolean Kind = "boolean"
	KindDate    Kind = "date"
	KindEnum    Kind = "enum"
	KindArray   Kind = "array"
	KindObject  Kind = "object"
	KindLiteral Kind = "literal"

	KindOptional Kind = "optional"
	KindNullable Kind = "nullable"
	KindDefault  Kind = "default"
	KindEffect   Kind = "effect"
	KindUnion    Kind = "union"
)

// KindInvalid marks a node that carries no usable shape, for example a union
// whose options all collapse to literals. Classifiers treat it as unknown.
const KindInvalid Kind = ""

// Check identifies a validation constraint attached to a base node. Checks are
// opaque to this engine except where they influence UI classification.
type Check string

// CheckEmail marks a string node validated as an email address.
const CheckEmail Check = "email"

// Node is the canonical schema value consumed by the classification engine.
// It is a single struct discriminated by Kind rather than an interface
// hierarchy so adapters can build trees without the engine knowing their
// source format.
type Node struct {
	Kind Kind

	// Inner is set for wrapper kinds (optional, nullable, default, effect).
	Inner *Node
	// Options is set for unions; declaration order is significant.
	Options []Node
	// Fields is set for objects.
	Fields map[string]Node
	// Element is set for arrays.
	Element *Node
	// Values is set for enums, preserving declaration order.
	Values []string
	// Literal carries the sentinel value for literal nodes.
	Literal any
	// Default carries the declared default for default wrappers.
	Default any
	// Checks lists validation markers attached to a base node.
	Checks []Check
}

// String returns a string node.
func String() Node { return Node{Kind: KindString} }

// Number returns a number node.
func Number() Node { return Node{Kind: KindNumber} }

// Boolean returns a boolean node.
func Boolean() Node { return Node{Kind: KindBoolean} }

// Date returns a date node.
func Date() Node { return Node{Kind: KindDate} }

// Enum returns an enum node over the supplied values. Order is preserved.
func Enum(values ...string) Node {
	return Node{Kind: KindEnum, Values: append([]string(nil), values...)}
}

// Array returns an array node with the supplied element schema.
func Array(element Node) Node {
	return Node{Kind: KindArray, Element: &element}
}

// Object returns an object node with the supplied named fields.
func Object(fields map[string]Node) Node {
	return Node{Kind: KindObject, Fields: fields}
}

// Literal returns a literal node carrying a sentinel value.
func Literal(value any) Node {
	return Node{Kind: KindLiteral, Literal: value}
}

// Optional wraps a node, marking it as accepting an absent value.
func Optional(inner Node) Node {
	return Node{Kind: KindOptional, Inner: &inner}
}

// Nullable wraps a node, marking it as accepting null.
func Nullable(inner Node) Node {
	return Node{Kind: KindNullable, Inner: &inner}
}

// WithDefault wraps a node with a declared default value.
func WithDefault(inner Node, value any) Node {
	return Node{Kind: KindDefault, Inner: &inner, Default: value}
}

// Effect wraps a node with a refinement, transform, or cross-field check. The
// wrapper is transparent to classification.
func Effect(inner Node) Node {
	return Node{Kind: KindEffect, Inner: &inner}
}

// Union returns a union node over the supplied options. Declaration order is
// significant: the unwrapper picks the first non-literal option.
func Union(options ...Node) Node {
	return Node{Kind: KindUnion, Options: append([]Node(nil), options...)}
}

// WithCheck returns a copy of the node with a validation marker appended.
func (n Node) WithCheck(check Check) Node {
	n.Checks = append(append([]Check(nil), n.Checks...), check)
	return n
}

// HasCheck reports whether the node carries the supplied validation marker.
func (n Node) HasCheck(check Check) bool {
	for _, c := range n.Checks {
		if c == check {
			return true
		}
	}
	return false
}

// Valid reports whether the node carries a usable shape.
func (n Node) Valid() bool {
	return n.Kind != KindInvalid
}
