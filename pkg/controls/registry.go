package controls

import (
	"sort"
	"strings"
	"sync"

	"github.com/goliatone/go-autoform/pkg/model"
)

// Registry maps resolved field type tags to control implementations. There is
// deliberately no fallback: a lookup miss is a first-class condition the
// caller surfaces as a diagnostic, so a themed application never degrades
// silently to an unstyled default widget.
//
// Registries are plain instances meant to be constructed once at startup and
// passed by reference; writes after concurrent reads begin must be externally
// coordinated by the host, though the registry itself is mutex-guarded.
type Registry struct {
	mu       sync.RWMutex
	controls map[model.FieldType]Control
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		controls: make(map[model.FieldType]Control),
	}
}

// Register associates a control with a type tag. The last registration for a
// tag wins. Empty tags and nil controls are ignored.
func (r *Registry) Register(fieldType model.FieldType, control Control) {
	if r == nil || control == nil {
		return
	}
	tag := model.FieldType(strings.TrimSpace(string(fieldType)))
	if tag == "" {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.controls[tag] = control
}

// RegisterMany registers every entry in the supplied mapping.
func (r *Registry) RegisterMany(mapping map[model.FieldType]Control) {
	for fieldType, control := range mapping {
		r.Register(fieldType, control)
	}
}

// Get returns the control registered for a type tag.
func (r *Registry) Get(fieldType model.FieldType) (Control, bool) {
	if r == nil {
		return nil, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	control, ok := r.controls[fieldType]
	return control, ok
}

// Has reports whether a control is registered for the type tag.
func (r *Registry) Has(fieldType model.FieldType) bool {
	_, ok := r.Get(fieldType)
	return ok
}

// Types returns the sorted list of registered type tags.
func (r *Registry) Types() []model.FieldType {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	types := make([]model.FieldType, 0, len(r.controls))
	for fieldType := range r.controls {
		types = append(types, fieldType)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}

// Clear removes every registration. Intended for test isolation; production
// code constructs a fresh registry instead.
func (r *Registry) Clear() {
	if r == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.controls = make(map[model.FieldType]Control)
}

// MissingEssential returns the essential type tags the registry does not
// cover, in the essential set's order.
func (r *Registry) MissingEssential() []model.FieldType {
	var missing []model.FieldType
	for _, fieldType := range model.EssentialTypes() {
		if !r.Has(fieldType) {
			missing = append(missing, fieldType)
		}
	}
	return missing
}
