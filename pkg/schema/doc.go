// Package schema defines the node algebra the field-resolution engine
// introspects. Nodes describe a field's validated shape (base kind plus
// wrappers such as optional, nullable, default, and refinement layers)
// independent of any UI concern. Adapters under pkg/adapters build node trees
// from external formats; the engine itself only reads them through Unwrap and
// IsOptional.
package schema
