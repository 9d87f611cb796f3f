package valtree_test

import (
	"encoding/json"
	"strings"
	"testing"

	valtree "github.com/valtree/valtree"
)

// Validate success implies Validateable across every kind and sample value.
func TestValidImpliesValidateable(t *testing.T) {
	samples := []any{
		"text", "", 0, 42, int64(7), uint(3), 3.14, 5.0, true, false,
		json.Number("12"), json.Number("1.5"),
		[]any{"a"}, map[string]any{"k": 1}, nil,
	}
	for _, name := range valtree.Names() {
		for _, sample := range samples {
			rule := valtree.MustNew(name)
			if rule.Validate(sample) && !rule.Validateable(sample) {
				t.Fatalf("%s: Validate(%#v) passed but Validateable is false", name, sample)
			}
		}
	}
}

func TestTextRule(t *testing.T) {
	rule := valtree.MustNew("text")
	if !rule.Validate("hello") {
		t.Fatalf("expected text to pass")
	}
	if rule.Validate(1) {
		t.Fatalf("expected non-text to fail")
	}
	if rule.Errors().Count() == 0 {
		t.Fatalf("expected a diagnostic for failed validation")
	}
}

func TestNumericClassification(t *testing.T) {
	cases := []struct {
		value                    any
		number, integer, decimal bool
	}{
		{42, true, true, false},
		{int64(-1), true, true, false},
		{uint8(3), true, true, false},
		{3.14, true, false, true},
		{5.0, true, false, true}, // floats stay decimals even when whole
		{json.Number("7"), true, true, false},
		{json.Number("7.5"), true, false, true},
		{"7", false, false, false},
		{true, false, false, false},
	}
	for _, tc := range cases {
		if got := valtree.MustNew("number").Validate(tc.value); got != tc.number {
			t.Fatalf("number.Validate(%#v) = %v, want %v", tc.value, got, tc.number)
		}
		if got := valtree.MustNew("integer").Validate(tc.value); got != tc.integer {
			t.Fatalf("integer.Validate(%#v) = %v, want %v", tc.value, got, tc.integer)
		}
		if got := valtree.MustNew("decimal").Validate(tc.value); got != tc.decimal {
			t.Fatalf("decimal.Validate(%#v) = %v, want %v", tc.value, got, tc.decimal)
		}
	}
}

func TestBooleanRule(t *testing.T) {
	rule := valtree.MustNew("boolean")
	if !rule.Validate(true) || !valtree.MustNew("boolean").Validate(false) {
		t.Fatalf("expected booleans to pass")
	}
	if rule.Validate("true") {
		t.Fatalf("expected text to fail the boolean rule")
	}
}

func TestAnyRule(t *testing.T) {
	for _, v := range []any{"x", 1, nil, map[string]any{}, []any{1, 2}} {
		if !valtree.MustNew("any").Validate(v) {
			t.Fatalf("any rule rejected %#v", v)
		}
	}
}

func TestEqualsRule(t *testing.T) {
	rule := valtree.MustNew("equals")
	rule.Accept("exact")
	if !rule.Validate("exact") {
		t.Fatalf("expected exact match to pass")
	}
	if rule.Validate("close") {
		t.Fatalf("expected mismatch to fail")
	}
	if !strings.Contains(strings.Join(rule.Errors().Messages(), "\n"), "is not 'exact'") {
		t.Fatalf("unexpected diagnostics: %v", rule.Errors().Messages())
	}

	// integers and reals compare numerically
	num := valtree.MustNew("equals")
	num.Accept(1)
	if !num.Validate(1.0) {
		t.Fatalf("expected 1 to equal 1.0")
	}
}

func TestEqualsRejectsInvalidLiteral(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for non-scalar literal")
		}
	}()
	valtree.MustNew("equals").Accept([]any{1})
}
