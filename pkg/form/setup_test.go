package form_test

import (
	"testing"

	"github.com/goliatone/go-autoform/pkg/controls"
	"github.com/goliatone/go-autoform/pkg/diag"
	"github.com/goliatone/go-autoform/pkg/form"
	"github.com/goliatone/go-autoform/pkg/model"
)

func TestSetup_Idempotent(t *testing.T) {
	form.ResetSetup()
	t.Cleanup(form.ResetSetup)

	collector := &diag.Collector{}
	first := form.Setup(form.WithRegistry(fullRegistry()), form.WithSink(collector))
	if first == nil {
		t.Fatal("setup returned nil config")
	}
	if collector.Has(diag.CodeDoubleInit) {
		t.Fatal("first setup must not report double initialization")
	}

	// The second call must be a no-op: same config back, no overwrite, one
	// diagnostic.
	second := form.Setup(form.WithRegistry(controls.NewRegistry()), form.WithSink(&diag.Collector{}))
	if second != first {
		t.Fatal("second setup must return the original config")
	}
	if !collector.Has(diag.CodeDoubleInit) {
		t.Fatal("expected double-initialization diagnostic on the original sink")
	}
	if !second.Registry().Has(model.TypeText) {
		t.Fatal("second setup must not replace the original registry")
	}

	if form.DefaultConfig() != first {
		t.Fatal("DefaultConfig must return the config built by Setup")
	}
}

func TestNewConfig_WarnsOnMissingEssentials(t *testing.T) {
	collector := &diag.Collector{}
	form.NewConfig(form.WithSink(collector))

	if !collector.Has(diag.CodeMissingEssential) {
		t.Fatal("expected missing-essential warnings for an empty registry")
	}

	collector.Reset()
	form.NewConfig(form.WithRegistry(fullRegistry()), form.WithSink(collector))
	if collector.Has(diag.CodeMissingEssential) {
		t.Fatal("full essential coverage must not warn")
	}
}
