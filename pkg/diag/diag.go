// Package diag carries the developer-facing diagnostics the engine emits
// instead of failing. Every condition in the taxonomy is non-fatal: fields
// degrade visibly for the developer while the form stays usable for the end
// user.
package diag

import (
	"fmt"
	"io"
	"sync"
)

// Code identifies a diagnostic condition.
type Code string

const (
	// CodeUnresolvedType signals that no control is registered for a
	// resolved or overridden field type tag.
	CodeUnresolvedType Code = "unresolved-type"
	// CodeIntrospection signals a malformed or unsupported schema shape.
	CodeIntrospection Code = "introspection-failure"
	// CodeDoubleInit signals a repeated call to the setup surface.
	CodeDoubleInit Code = "double-initialization"
	// CodeUnknownField signals a caller referencing a field name absent
	// from the schema.
	CodeUnknownField Code = "unknown-field"
	// CodeMissingEssential signals a registry missing one of the
	// recommended built-in control types at setup time.
	CodeMissingEssential Code = "missing-essential-type"
)

// Diagnostic describes a single absorbed failure. Field is empty for
// conditions not tied to a specific field.
type Diagnostic struct {
	Code        Code
	Field       string
	Message     string
	Remediation string
}

// String renders the diagnostic in a single log-friendly line.
func (d Diagnostic) String() string {
	out := string(d.Code)
	if d.Field != "" {
		out += " field=" + d.Field
	}
	out += ": " + d.Message
	if d.Remediation != "" {
		out += " (" + d.Remediation + ")"
	}
	return out
}

// Sink receives diagnostics as they are emitted.
type Sink interface {
	Emit(d Diagnostic)
}

// SinkFunc adapts a function into a Sink.
type SinkFunc func(Diagnostic)

// Emit calls the underlying function.
func (fn SinkFunc) Emit(d Diagnostic) { fn(d) }

// Discard returns a sink that drops every diagnostic.
func Discard() Sink {
	return SinkFunc(func(Diagnostic) {})
}

// NewWriterSink returns a sink that writes one line per diagnostic to w.
func NewWriterSink(w io.Writer) Sink {
	return SinkFunc(func(d Diagnostic) {
		fmt.Fprintf(w, "autoform: %s\n", d)
	})
}

// Collector accumulates diagnostics for inspection, primarily in tests. It is
// safe for concurrent use.
type Collector struct {
	mu    sync.Mutex
	diags []Diagnostic
}

// Emit records the diagnostic.
func (c *Collector) Emit(d Diagnostic) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.diags = append(c.diags, d)
}

// Diagnostics returns a copy of everything recorded so far.
func (c *Collector) Diagnostics() []Diagnostic {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Diagnostic(nil), c.diags...)
}

// Has reports whether any recorded diagnostic carries the supplied code.
func (c *Collector) Has(code Code) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, d := range c.diags {
		if d.Code == code {
			return true
		}
	}
	return false
}

// Reset clears the collector.
func (c *Collector) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.diags = nil
}
