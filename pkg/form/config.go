package form

import (
	"sync"

	"github.com/goliatone/go-autoform/pkg/controls"
	"github.com/goliatone/go-autoform/pkg/diag"
	"github.com/goliatone/go-autoform/pkg/model"
)

// Config bundles everything the engine consumes per consumer: the control
// registry, the diagnostics sink, the translator, and the shared form-UI
// parts. Construct it once at startup and pass it by reference; there is no
// hidden global state beyond the optional Setup facade in setup.go.
type Config struct {
	registry  *controls.Registry
	sink      diag.Sink
	translate func(string) string

	submit        controls.Control
	errorBehavior func(field string, messages []string)
	parts         Parts
	layout        Layout
}

// Parts holds the shared chrome controls rendered around every field. All are
// optional; hosts that render their own chrome leave them nil.
type Parts struct {
	Label        controls.Control
	Description  controls.Control
	ErrorMessage controls.Control
}

// Layout carries CSS hooks the host applies to the form shell.
type Layout struct {
	FormClass  string
	FieldClass string
}

// Option customises a Config.
type Option func(*Config)

// WithRegistry injects a control registry. Without it the config starts from
// an empty registry and every dispatch misses.
func WithRegistry(registry *controls.Registry) Option {
	return func(c *Config) {
		if registry != nil {
			c.registry = registry
		}
	}
}

// WithControls registers the supplied controls on the config's registry.
func WithControls(mapping map[model.FieldType]controls.Control) Option {
	return func(c *Config) {
		c.registry.RegisterMany(mapping)
	}
}

// WithSink injects the diagnostics sink. Defaults to discarding.
func WithSink(sink diag.Sink) Option {
	return func(c *Config) {
		if sink != nil {
			c.sink = sink
		}
	}
}

// WithTranslator injects the label translation function. It receives a field
// name (or a framework string such as "submit") and returns display text, or
// empty to fall back to humanized names.
func WithTranslator(translate func(string) string) Option {
	return func(c *Config) {
		c.translate = translate
	}
}

// WithSubmitControl injects the submit-button control.
func WithSubmitControl(control controls.Control) Option {
	return func(c *Config) {
		c.submit = control
	}
}

// WithErrorBehavior injects the callback invoked when the host reports
// validation errors for a field.
func WithErrorBehavior(fn func(field string, messages []string)) Option {
	return func(c *Config) {
		c.errorBehavior = fn
	}
}

// WithParts injects the shared form-UI chrome controls.
func WithParts(parts Parts) Option {
	return func(c *Config) {
		c.parts = parts
	}
}

// WithLayout injects the layout CSS hooks.
func WithLayout(layout Layout) Option {
	return func(c *Config) {
		c.layout = layout
	}
}

// NewConfig builds a Config from the supplied options and validates the
// registry against the essential type set, emitting a warning diagnostic per
// missing tag. Missing essentials are advisory, never an error.
func NewConfig(options ...Option) *Config {
	cfg := &Config{
		registry: controls.NewRegistry(),
		sink:     diag.Discard(),
	}
	for _, option := range options {
		if option != nil {
			option(cfg)
		}
	}

	for _, missing := range cfg.registry.MissingEssential() {
		cfg.sink.Emit(diag.Diagnostic{
			Code:        diag.CodeMissingEssential,
			Message:     "no control registered for essential type " + string(missing),
			Remediation: "register a control for " + string(missing) + " or override fields resolving to it",
		})
	}

	return cfg
}

// Registry exposes the config's control registry.
func (c *Config) Registry() *controls.Registry { return c.registry }

// Sink exposes the config's diagnostics sink.
func (c *Config) Sink() diag.Sink { return c.sink }

// SubmitControl exposes the configured submit-button control.
func (c *Config) SubmitControl() controls.Control { return c.submit }

// Parts exposes the configured chrome controls.
func (c *Config) Parts() Parts { return c.parts }

// Layout exposes the configured layout hooks.
func (c *Config) Layout() Layout { return c.layout }

// ReportErrors forwards host validation errors to the configured behavior.
func (c *Config) ReportErrors(field string, messages []string) {
	if c.errorBehavior != nil && len(messages) > 0 {
		c.errorBehavior(field, messages)
	}
}

var (
	setupMu  sync.Mutex
	setupCfg *Config
)

// Setup is the package-level configuration facade for applications that want
// a single global surface. The first call builds the shared Config; any later
// call is a no-op that emits a double-initialization diagnostic to the
// existing sink and returns the original Config unchanged.
//
// Library consumers and tests should prefer NewConfig and explicit injection.
func Setup(options ...Option) *Config {
	setupMu.Lock()
	defer setupMu.Unlock()

	if setupCfg != nil {
		setupCfg.sink.Emit(diag.Diagnostic{
			Code:        diag.CodeDoubleInit,
			Message:     "setup called more than once; second call ignored",
			Remediation: "configure the form engine exactly once at startup",
		})
		return setupCfg
	}

	setupCfg = NewConfig(options...)
	return setupCfg
}

// DefaultConfig returns the Config built by Setup, or nil before Setup runs.
func DefaultConfig() *Config {
	setupMu.Lock()
	defer setupMu.Unlock()
	return setupCfg
}

// ResetSetup discards the global Config. Test isolation only.
func ResetSetup() {
	setupMu.Lock()
	defer setupMu.Unlock()
	setupCfg = nil
}
