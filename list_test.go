package valtree_test

import (
	"strings"
	"testing"

	valtree "github.com/valtree/valtree"
)

func TestListElementDiagnostics(t *testing.T) {
	list := valtree.NewList()
	list.Accept("text")

	if !list.Validate([]any{"a", "b", "c"}) {
		t.Fatalf("expected all-text list to pass: %v", list.Errors().Messages())
	}

	bad := valtree.NewList()
	bad.Accept("text")
	if bad.Validate([]any{"a", 2, "b"}) {
		t.Fatalf("expected mixed list to fail")
	}
	messages := bad.Errors().Messages()
	if len(messages) != 1 {
		t.Fatalf("expected exactly one diagnostic, got %v", messages)
	}
	if !strings.Contains(messages[0], "list:1") {
		t.Fatalf("expected offending index in path, got %q", messages[0])
	}
}

func TestListReportsEveryOffender(t *testing.T) {
	list := valtree.NewList()
	list.Accept("integer")
	if list.Validate([]any{"x", 2, "y"}) {
		t.Fatalf("expected failure")
	}
	joined := strings.Join(list.Errors().Messages(), "\n")
	if !strings.Contains(joined, "list:0") || !strings.Contains(joined, "list:2") {
		t.Fatalf("expected diagnostics for both offenders, got %q", joined)
	}
	if strings.Contains(joined, "list:1") {
		t.Fatalf("valid element must not be reported, got %q", joined)
	}
}

func TestListRejectsNonSequence(t *testing.T) {
	list := valtree.NewList()
	list.Accept("text")
	if list.Validate("not a list") {
		t.Fatalf("expected scalar input to fail")
	}
	if !strings.Contains(strings.Join(list.Errors().Messages(), "\n"), "must be a list") {
		t.Fatalf("unexpected diagnostics: %v", list.Errors().Messages())
	}
}

func TestListTypedSlices(t *testing.T) {
	list := valtree.NewList()
	list.Accept("text")
	if !list.Validate([]string{"a", "b"}) {
		t.Fatalf("expected typed slice to pass: %v", list.Errors().Messages())
	}
}

func TestNestedListPaths(t *testing.T) {
	outer := valtree.NewList()
	inner := outer.Accept("list")
	inner.Accept("integer")

	bad := valtree.NewList()
	badInner := bad.Accept("list")
	badInner.Accept("integer")
	if bad.Validate([]any{[]any{1, "x"}}) {
		t.Fatalf("expected nested failure")
	}
	joined := strings.Join(bad.Errors().Messages(), "\n")
	if !strings.Contains(joined, "[/list:0/list:1]") {
		t.Fatalf("expected nested path labels, got %q", joined)
	}
	if !outer.Validate([]any{[]any{1, 2}, []any{}}) {
		t.Fatalf("expected valid nested list to pass: %v", outer.Errors().Messages())
	}
}
