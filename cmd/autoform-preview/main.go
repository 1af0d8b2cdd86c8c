// Command autoform-preview loads a schema document, resolves its fields, and
// walks them as terminal prompts, printing the collected values as JSON. It
// doubles as a smoke test for schema documents and control coverage.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	gojson "github.com/goccy/go-json"

	"github.com/goliatone/go-autoform/pkg/adapters/schemadoc"
	"github.com/goliatone/go-autoform/pkg/controls"
	"github.com/goliatone/go-autoform/pkg/controls/prompt"
	"github.com/goliatone/go-autoform/pkg/diag"
	"github.com/goliatone/go-autoform/pkg/form"
	"github.com/goliatone/go-autoform/pkg/model"
)

func main() {
	source := flag.String("schema", "schema.yaml", "schema document path (JSON or YAML)")
	flag.Parse()

	raw, err := os.ReadFile(*source)
	if err != nil {
		log.Fatalf("read schema: %v", err)
	}

	root, err := schemadoc.Parse(raw)
	if err != nil {
		log.Fatalf("parse schema: %v", err)
	}

	registry := controls.NewRegistry()
	prompt.Register(registry, prompt.NewSurveyDriver())

	cfg := form.NewConfig(
		form.WithRegistry(registry),
		form.WithSink(diag.NewWriterSink(os.Stderr)),
	)

	f, err := form.New(cfg, root)
	if err != nil {
		log.Fatalf("build form: %v", err)
	}

	values := f.Defaults()
	for _, name := range f.Names() {
		name := name
		resolved, ok := f.Field(name, form.FieldState{
			Value:    values[name],
			SetValue: func(v model.Value) { values[name] = v },
		})
		if !ok || resolved.Control == nil {
			continue
		}
		if err := resolved.Control.Render(os.Stdout, resolved.Props); err != nil {
			log.Fatalf("field %q: %v", name, err)
		}
	}

	payload := make(map[string]any, len(values))
	for name, value := range f.Normalize(values) {
		if value.IsAbsent() {
			continue
		}
		payload[name] = value.Interface()
	}

	out, err := gojson.MarshalIndent(payload, "", "  ")
	if err != nil {
		log.Fatalf("encode values: %v", err)
	}
	fmt.Println(string(out))
}
