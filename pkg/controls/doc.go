// Package controls hosts the component dispatch side of the engine: the
// type-keyed registry mapping resolved field type tags to renderable control
// implementations, the Control contract those implementations satisfy, and
// the props builder that assembles the bundle every control receives.
//
// The registry enforces a strict no-implicit-fallback policy. A missing
// registration renders nothing and surfaces a diagnostic; it is never patched
// over with a default widget.
package controls
