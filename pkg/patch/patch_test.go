package patch_test

import (
	"encoding/json"
	"testing"

	"github.com/supthawee/farmgate-api/pkg/patch"
)

type payload struct {
	Weight patch.Field[string] `json:"weight"`
	Price  patch.Field[string] `json:"price"`
	Count  patch.Field[int]    `json:"count"`
}

func TestFieldDistinguishesAbsentNullAndSet(t *testing.T) {
	var p payload
	if err := json.Unmarshal([]byte(`{"weight":"10.5","price":null}`), &p); err != nil {
		t.Fatal(err)
	}

	if !p.Weight.Present() || p.Weight.Null() {
		t.Errorf("weight: present=%v null=%v, want present non-null", p.Weight.Present(), p.Weight.Null())
	}
	if v, ok := p.Weight.Value(); !ok || v != "10.5" {
		t.Errorf("weight value = %q/%v, want 10.5/true", v, ok)
	}

	if !p.Price.Null() {
		t.Errorf("price: null=%v, want explicit null", p.Price.Null())
	}
	if _, ok := p.Price.Value(); ok {
		t.Error("price carries a value, want none")
	}

	if p.Count.Present() {
		t.Error("count marked present, key was absent")
	}
}

func TestFieldOr(t *testing.T) {
	var p payload
	if err := json.Unmarshal([]byte(`{"count":7}`), &p); err != nil {
		t.Fatal(err)
	}
	if got := p.Count.Or(3); got != 7 {
		t.Errorf("Or = %d, want 7", got)
	}
	if got := p.Weight.Or("fallback"); got != "fallback" {
		t.Errorf("Or = %q, want fallback", got)
	}
}

func TestFieldConstructors(t *testing.T) {
	set := patch.Set("x")
	if v, ok := set.Value(); !ok || v != "x" {
		t.Errorf("Set value = %q/%v", v, ok)
	}
	cleared := patch.Clear[string]()
	if !cleared.Null() {
		t.Error("Clear is not null")
	}
}
