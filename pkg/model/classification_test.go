package model_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-autoform/pkg/model"
	"github.com/goliatone/go-autoform/pkg/schema"
)

func TestClassify_BaseKinds(t *testing.T) {
	cases := []struct {
		name string
		node schema.Node
		want model.Classification
	}{
		{
			name: "string",
			node: schema.String(),
			want: model.Classification{BaseKind: model.BaseString},
		},
		{
			name: "email string",
			node: schema.String().WithCheck(schema.CheckEmail),
			want: model.Classification{BaseKind: model.BaseString, EmailShaped: true},
		},
		{
			name: "number",
			node: schema.Number(),
			want: model.Classification{BaseKind: model.BaseNumber},
		},
		{
			name: "boolean",
			node: schema.Boolean(),
			want: model.Classification{BaseKind: model.BaseBoolean},
		},
		{
			name: "date",
			node: schema.Date(),
			want: model.Classification{BaseKind: model.BaseDate},
		},
		{
			name: "enum keeps order",
			node: schema.Enum("pending", "active", "archived"),
			want: model.Classification{
				BaseKind:   model.BaseEnum,
				EnumValues: []string{"pending", "active", "archived"},
			},
		},
		{
			name: "object is unknown",
			node: schema.Object(map[string]schema.Node{"x": schema.String()}),
			want: model.Classification{BaseKind: model.BaseUnknown},
		},
		{
			name: "union of only literals is unknown",
			node: schema.Union(schema.Literal("a"), schema.Literal("b")),
			want: model.Classification{BaseKind: model.BaseUnknown, Optional: true},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := model.Classify(tc.node)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("classification mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestClassify_OptionalEmailThroughWrappers(t *testing.T) {
	node := schema.Optional(schema.Nullable(schema.String().WithCheck(schema.CheckEmail)))

	got := model.Classify(node)
	if got.BaseKind != model.BaseString {
		t.Fatalf("base kind = %q, want string", got.BaseKind)
	}
	if !got.EmailShaped {
		t.Fatal("expected email-shaped classification")
	}
	if !got.Optional {
		t.Fatal("expected optional classification")
	}
}

func TestClassify_UnionSentinelIsOptional(t *testing.T) {
	node := schema.Union(schema.String(), schema.Literal(""))

	got := model.Classify(node)
	if got.BaseKind != model.BaseString {
		t.Fatalf("base kind = %q, want string", got.BaseKind)
	}
	if !got.Optional {
		t.Fatal("union with literal sentinel must classify as optional")
	}
}

func TestClassify_ArrayElement(t *testing.T) {
	node := schema.Array(schema.Optional(schema.Enum("red", "green")))

	got := model.Classify(node)
	if got.BaseKind != model.BaseArray {
		t.Fatalf("base kind = %q, want array", got.BaseKind)
	}
	if got.Element == nil {
		t.Fatal("array classification missing element")
	}
	want := model.Classification{
		BaseKind:   model.BaseEnum,
		Optional:   true,
		EnumValues: []string{"red", "green"},
	}
	if diff := cmp.Diff(want, *got.Element); diff != "" {
		t.Fatalf("element mismatch (-want +got):\n%s", diff)
	}
	if got.EnumValues != nil {
		t.Fatal("array classification must not carry enum values")
	}
}

func TestClassify_AlwaysYieldsDefinedKind(t *testing.T) {
	known := map[model.BaseKind]struct{}{
		model.BaseString:  {},
		model.BaseNumber:  {},
		model.BaseBoolean: {},
		model.BaseEnum:    {},
		model.BaseArray:   {},
		model.BaseDate:    {},
		model.BaseUnknown: {},
	}

	nodes := []schema.Node{
		schema.String(),
		schema.Optional(schema.Number()),
		schema.Union(schema.Literal("x"), schema.Literal("y")),
		schema.Node{},
		schema.Node{Kind: schema.KindEffect},
		schema.Object(nil),
		schema.Array(schema.Array(schema.Boolean())),
	}

	for _, node := range nodes {
		got := model.Classify(node)
		if _, ok := known[got.BaseKind]; !ok {
			t.Fatalf("classification produced unrecognized kind %q", got.BaseKind)
		}
	}
}
