package autoform

import (
	"github.com/goliatone/go-autoform/pkg/controls"
	"github.com/goliatone/go-autoform/pkg/diag"
	"github.com/goliatone/go-autoform/pkg/form"
	"github.com/goliatone/go-autoform/pkg/model"
	"github.com/goliatone/go-autoform/pkg/schema"
)

// Config carries the shared form configuration; alias exported via the root
// package for convenience.
type Config = form.Config

// Option configures a Config during construction.
type Option = form.Option

// Form holds the resolved state for a single object schema.
type Form = form.Form

// FormOption configures a Form during construction.
type FormOption = form.FormOption

// ResolvedField aliases form.ResolvedField for callers rendering fields.
type ResolvedField = form.ResolvedField

// FieldState aliases form.FieldState.
type FieldState = form.FieldState

// Override aliases model.Override so callers can tune individual fields
// without importing pkg/model.
type Override = model.Override

// Value aliases the tri-state field value.
type Value = model.Value

// FieldType aliases the open field type identifier.
type FieldType = model.FieldType

// Node aliases the schema node so callers can build schemas against the root
// package alone.
type Node = schema.Node

// Diagnostic aliases diag.Diagnostic.
type Diagnostic = diag.Diagnostic

// NewConfig builds an independent configuration. Most applications call Setup
// once instead; NewConfig exists for tests and multi-tenant hosts.
func NewConfig(options ...Option) *Config {
	return form.NewConfig(options...)
}

// Setup initialises the shared configuration exactly once. Later calls leave
// the original configuration in place and report the attempt through its sink.
func Setup(options ...Option) *Config {
	return form.Setup(options...)
}

// New resolves the fields of an object schema against a configuration.
func New(cfg *Config, root Node, options ...FormOption) (*Form, error) {
	return form.New(cfg, root, options...)
}

// WithRegistry installs a pre-populated control registry.
func WithRegistry(registry *controls.Registry) Option {
	return form.WithRegistry(registry)
}

// WithControls registers a control mapping on the configuration registry.
func WithControls(mapping map[FieldType]controls.Control) Option {
	return form.WithControls(mapping)
}

// WithSink routes diagnostics to the supplied sink.
func WithSink(sink diag.Sink) Option {
	return form.WithSink(sink)
}

// WithOverrides attaches per-field overrides to a form.
func WithOverrides(overrides map[string]*Override) FormOption {
	return form.WithOverrides(overrides)
}

// WithValues seeds a form with externally supplied values.
func WithValues(values map[string]Value) FormOption {
	return form.WithValues(values)
}

// Undefined returns the absent value.
func Undefined() Value { return model.Undefined() }

// Null returns the explicit null value.
func Null() Value { return model.Null() }

// Of wraps data in a present value.
func Of(data any) Value { return model.Of(data) }
