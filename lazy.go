package valtree

import (
	js "github.com/valtree/valtree/jsonschema"
)

// lazyRule defers building its real rule until first used, which breaks
// construction-time infinite recursion for self- or mutually-referential
// schemas. Accept attaches func() Rule specs through it.
type lazyRule struct {
	build  func() Rule
	parent Rule
	rule   Rule
}

func newLazy(build func() Rule, parent Rule) *lazyRule {
	return &lazyRule{build: build, parent: parent}
}

// materialize invokes the constructor once, attaches the result to the
// intended parent and caches it. A nil result is a schema-authoring defect.
func (l *lazyRule) materialize() Rule {
	if l.rule == nil {
		r := l.build()
		if r == nil {
			panic("valtree: deferred rule constructor returned nil")
		}
		r.setParent(l.parent)
		l.rule = r
	}
	return l.rule
}

func (l *lazyRule) Name() string { return l.materialize().Name() }

func (l *lazyRule) Accept(spec any, opts ...Option) Rule {
	return l.materialize().Accept(spec, opts...)
}

func (l *lazyRule) Validateable(data any) bool { return l.materialize().Validateable(data) }

func (l *lazyRule) Validate(data any) bool { return l.materialize().Validate(data) }

func (l *lazyRule) Errors() *Errors { return l.materialize().Errors() }

// Schema returns an empty placeholder document until the rule has
// materialized; synthesis must stay pure and cannot trigger construction.
func (l *lazyRule) Schema() *js.Schema {
	if l.rule == nil {
		return &js.Schema{}
	}
	return l.rule.Schema()
}

func (l *lazyRule) setParent(p Rule) {
	l.parent = p
	if l.rule != nil {
		l.rule.setParent(p)
	}
}

func (l *lazyRule) ruleParent() Rule { return l.parent }

func (l *lazyRule) rootErrors() *Errors { return l.materialize().rootErrors() }

func (l *lazyRule) customMessage() string {
	if l.rule == nil {
		return ""
	}
	return l.rule.customMessage()
}

func (l *lazyRule) applyOpts(o *acceptOpts) { l.materialize().applyOpts(o) }

func (l *lazyRule) validate(ev *Errors, data any) bool {
	return l.materialize().validate(ev, data)
}
