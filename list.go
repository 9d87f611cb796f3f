package valtree

import (
	"strconv"

	"github.com/valtree/valtree/i18n"
	js "github.com/valtree/valtree/jsonschema"
)

func init() {
	Register("list", func() Rule { return newList() })
}

// List validates sequence-shaped input. Each element is validated against the
// accepted alternatives with its index as the path label; all offending
// elements are reported in one pass.
type List struct {
	base
	alternatives []Rule
}

func newList() *List {
	r := &List{}
	r.base.init("list", r)
	return r
}

// NewList returns a detached list rule for direct composition.
func NewList() *List { return newList() }

// Accept adds an element alternative and returns it for chaining.
func (r *List) Accept(spec any, opts ...Option) Rule {
	child := r.child(spec, opts...)
	r.alternatives = append(r.alternatives, child)
	return child
}

func (r *List) Validateable(data any) bool { return isSequence(data) }

func (r *List) validate(ev *Errors, data any) bool {
	seq, ok := asSequence(data)
	if !ok {
		ev.Add("%s", i18n.T(codeMustBeList))
		return false
	}
	count := ev.Count()
	ev.pushPath("?")
	for i, item := range seq {
		ev.setPath("list:" + strconv.Itoa(i))
		selectRule(ev, item, r.alternatives)
	}
	ev.popPath()
	return count == ev.Count()
}

func (r *List) Schema() *js.Schema {
	schemas := make([]*js.Schema, len(r.alternatives))
	for i, alt := range r.alternatives {
		schemas[i] = alt.Schema()
	}
	return &js.Schema{Type: "array", Items: js.Union(schemas...)}
}
