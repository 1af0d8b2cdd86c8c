// Package form is the engine tying schema introspection to control dispatch.
// A Form binds a root object schema to a Config (registry, sink, translator,
// shared chrome) and resolves each field into a control plus a complete props
// bundle. All failure modes in the engine are absorbed and surfaced as
// diagnostics; the only error New returns is a non-object root, which leaves
// the engine with nothing to resolve.
package form
