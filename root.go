package valtree

import (
	js "github.com/valtree/valtree/jsonschema"
)

func init() {
	Register("root", func() Rule { return newRoot() })
}

// Root is the choice-of-rules combinator: data passes when any accepted
// alternative passes. It is the usual top of a schema tree and also backs
// dict key-type predicates.
type Root struct {
	base
	alternatives []Rule
}

func newRoot() *Root {
	r := &Root{}
	r.base.init("root", r)
	return r
}

// NewRoot returns a detached root rule for direct composition.
func NewRoot() *Root { return newRoot() }

// Accept adds an alternative and returns it for chaining.
func (r *Root) Accept(spec any, opts ...Option) Rule {
	child := r.child(spec, opts...)
	r.alternatives = append(r.alternatives, child)
	return child
}

func (r *Root) Validateable(data any) bool { return true }

func (r *Root) validate(ev *Errors, data any) bool {
	return selectRule(ev, data, r.alternatives)
}

func (r *Root) Schema() *js.Schema {
	schemas := make([]*js.Schema, len(r.alternatives))
	for i, alt := range r.alternatives {
		schemas[i] = alt.Schema()
	}
	return js.Union(schemas...)
}
