package model_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-autoform/pkg/model"
)

func TestRemoveItem_PreservesOrder(t *testing.T) {
	items := []model.Value{model.Of("a"), model.Of("b"), model.Of("c"), model.Of("d")}

	got := model.RemoveItem(items, 1)

	want := []model.Value{model.Of("a"), model.Of("c"), model.Of("d")}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("remove mismatch (-want +got):\n%s", diff)
	}

	// Input untouched.
	if len(items) != 4 || items[1].Data != "b" {
		t.Fatal("RemoveItem mutated its input")
	}
}

func TestRemoveItem_OutOfRange(t *testing.T) {
	items := []model.Value{model.Of("a")}

	for _, index := range []int{-1, 1, 5} {
		got := model.RemoveItem(items, index)
		if diff := cmp.Diff(items, got); diff != "" {
			t.Fatalf("index %d: expected unchanged copy (-want +got):\n%s", index, diff)
		}
	}
}

func TestAppendItem_SynthesizesElementDefault(t *testing.T) {
	element := model.Classification{BaseKind: model.BaseNumber}

	got := model.AppendItem(nil, element, nil)
	if len(got) != 1 || !got[0].IsNull() {
		t.Fatalf("expected [null], got %v", got)
	}

	// The array field's override shapes the element default.
	got = model.AppendItem(got, element, &model.Override{EmptyAsZero: true})
	if len(got) != 2 {
		t.Fatalf("expected 2 items, got %d", len(got))
	}
	if diff := cmp.Diff(model.Of(0), got[1]); diff != "" {
		t.Fatalf("appended element mismatch (-want +got):\n%s", diff)
	}
}

func TestAddStrategyFor(t *testing.T) {
	if got := model.AddStrategyFor(model.BaseEnum); got != model.AddRemainingOptions {
		t.Fatalf("enum strategy = %q, want options", got)
	}
	for _, kind := range []model.BaseKind{model.BaseString, model.BaseNumber, model.BaseBoolean, model.BaseDate, model.BaseUnknown} {
		if got := model.AddStrategyFor(kind); got != model.AddDefault {
			t.Fatalf("%s strategy = %q, want default", kind, got)
		}
	}
}

func TestRemainingEnumOptions(t *testing.T) {
	element := model.Classification{
		BaseKind:   model.BaseEnum,
		EnumValues: []string{"red", "green", "blue"},
	}

	items := []model.Value{model.Of("green")}
	got := model.RemainingEnumOptions(element, nil, items)
	if diff := cmp.Diff([]string{"red", "blue"}, got); diff != "" {
		t.Fatalf("remaining options mismatch (-want +got):\n%s", diff)
	}

	// All taken.
	items = []model.Value{model.Of("red"), model.Of("green"), model.Of("blue")}
	if got := model.RemainingEnumOptions(element, nil, items); got != nil {
		t.Fatalf("expected nil when every option is used, got %v", got)
	}

	// Override options replace the inferred candidate set.
	override := &model.Override{Options: []model.Option{{Value: "cyan"}, {Value: "red"}}}
	got = model.RemainingEnumOptions(element, override, []model.Value{model.Of("red")})
	if diff := cmp.Diff([]string{"cyan"}, got); diff != "" {
		t.Fatalf("override options mismatch (-want +got):\n%s", diff)
	}

	// Non-enum elements have no option affordance.
	if got := model.RemainingEnumOptions(model.Classification{BaseKind: model.BaseString}, nil, nil); got != nil {
		t.Fatalf("expected nil for non-enum element, got %v", got)
	}
}

func TestAppendValue(t *testing.T) {
	items := []model.Value{model.Of("red")}
	got := model.AppendValue(items, model.Of("blue"))

	want := []model.Value{model.Of("red"), model.Of("blue")}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("append mismatch (-want +got):\n%s", diff)
	}
	if len(items) != 1 {
		t.Fatal("AppendValue mutated its input")
	}
}
