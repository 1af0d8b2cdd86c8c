package schema_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-autoform/pkg/schema"
)

func TestUnwrap_PeelsWrappers(t *testing.T) {
	cases := []struct {
		name string
		node schema.Node
		want schema.Kind
	}{
		{
			name: "plain string",
			node: schema.String(),
			want: schema.KindString,
		},
		{
			name: "optional number",
			node: schema.Optional(schema.Number()),
			want: schema.KindNumber,
		},
		{
			name: "nested wrappers",
			node: schema.Optional(schema.Nullable(schema.WithDefault(schema.Effect(schema.Boolean()), true))),
			want: schema.KindBoolean,
		},
		{
			name: "union with literal sentinel",
			node: schema.Union(schema.String(), schema.Literal("")),
			want: schema.KindString,
		},
		{
			name: "union with literal first",
			node: schema.Union(schema.Literal(""), schema.Date()),
			want: schema.KindDate,
		},
		{
			name: "union option wrapped in effect",
			node: schema.Union(schema.Literal(""), schema.Effect(schema.Enum("a", "b"))),
			want: schema.KindEnum,
		},
		{
			name: "union of only literals",
			node: schema.Union(schema.Literal("a"), schema.Literal("b")),
			want: schema.KindInvalid,
		},
		{
			name: "wrapper missing inner",
			node: schema.Node{Kind: schema.KindOptional},
			want: schema.KindInvalid,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := schema.Unwrap(tc.node)
			if got.Kind != tc.want {
				t.Fatalf("Unwrap(%s) kind = %q, want %q", tc.name, got.Kind, tc.want)
			}
		})
	}
}

func TestUnwrap_Idempotent(t *testing.T) {
	nodes := []schema.Node{
		schema.String(),
		schema.Optional(schema.Nullable(schema.String().WithCheck(schema.CheckEmail))),
		schema.Union(schema.Literal(""), schema.Number()),
		schema.Array(schema.Optional(schema.Date())),
		schema.Union(schema.Literal("a"), schema.Literal("b")),
		schema.WithDefault(schema.Enum("draft", "published"), "draft"),
	}

	for _, node := range nodes {
		once := schema.Unwrap(node)
		twice := schema.Unwrap(once)
		if diff := cmp.Diff(once, twice); diff != "" {
			t.Fatalf("Unwrap not idempotent (-once +twice):\n%s", diff)
		}
	}
}

func TestUnwrap_FirstNonLiteralWins(t *testing.T) {
	// Unions mixing two real base shapes resolve to the first in declaration
	// order; the remaining branches are ignored.
	node := schema.Union(schema.Literal("n/a"), schema.String(), schema.Number())
	if got := schema.Unwrap(node); got.Kind != schema.KindString {
		t.Fatalf("expected first non-literal option (string), got %q", got.Kind)
	}
}

func TestIsOptional(t *testing.T) {
	cases := []struct {
		name string
		node schema.Node
		want bool
	}{
		{"plain string", schema.String(), false},
		{"optional", schema.Optional(schema.String()), true},
		{"nullable", schema.Nullable(schema.Number()), true},
		{"optional of anything", schema.Optional(schema.Node{Kind: schema.KindInvalid}), true},
		{"default wrapper alone", schema.WithDefault(schema.String(), "x"), false},
		{"effect wrapper alone", schema.Effect(schema.Boolean()), false},
		{"union with literal", schema.Union(schema.String(), schema.Literal("")), true},
		{"union with optional branch", schema.Union(schema.String(), schema.Optional(schema.Number())), true},
		{"union of mandatory branches", schema.Union(schema.String(), schema.Number()), false},
		{"effect hides optional", schema.Effect(schema.Optional(schema.String())), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := schema.IsOptional(tc.node); got != tc.want {
				t.Fatalf("IsOptional = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestEnum_PreservesOrder(t *testing.T) {
	node := schema.Enum("zulu", "alpha", "mike")
	want := []string{"zulu", "alpha", "mike"}
	if diff := cmp.Diff(want, node.Values); diff != "" {
		t.Fatalf("enum values mismatch (-want +got):\n%s", diff)
	}
}

func TestWithCheck_DoesNotMutateReceiver(t *testing.T) {
	base := schema.String()
	email := base.WithCheck(schema.CheckEmail)

	if base.HasCheck(schema.CheckEmail) {
		t.Fatal("WithCheck mutated the receiver")
	}
	if !email.HasCheck(schema.CheckEmail) {
		t.Fatal("WithCheck did not attach the marker")
	}
}
