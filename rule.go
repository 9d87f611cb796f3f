package valtree

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/valtree/valtree/i18n"
	js "github.com/valtree/valtree/jsonschema"
)

// Diagnostic message codes resolved through the i18n catalog.
const (
	codeMustBeOneOf           = "must_be_one_of"
	codeNoAlternatives        = "no_alternatives"
	codeGotMapping            = "got_mapping"
	codeGotSequence           = "got_sequence"
	codeNotValidValue         = "not_valid_value"
	codeNotText               = "not_text"
	codeNotNumber             = "not_number"
	codeNotInteger            = "not_integer"
	codeNotDecimal            = "not_decimal"
	codeNotBoolean            = "not_boolean"
	codeNotEqual              = "not_equal"
	codeChoiceInvalid         = "choice_invalid"
	codeExpectingText         = "expecting_text"
	codeInvalidRegexp         = "invalid_regexp"
	codeNoRegexpMatch         = "no_regexp_match"
	codeIntervalFormat        = "interval_format"
	codeFileMissing           = "file_missing"
	codePathMissing           = "path_missing"
	codeInvalidURL            = "invalid_url"
	codeMustBeList            = "must_be_list"
	codeMustBeDict            = "must_be_dict"
	codeKeyForbidden          = "key_forbidden"
	codeKeyNotRecognized      = "key_not_recognized"
	codeKeyNotRecognizedKnown = "key_not_recognized_known"
	codeKeyRequired           = "key_required"
)

// Rule is one constraint node in a schema tree. Rules are built once at
// registration time, composed via Accept, and reused for every Validate call.
// Validation mutates only the shared diagnostics collector, so a tree must not
// be validated concurrently.
type Rule interface {
	// Name returns the registered kind name ("text", "dict", ...).
	Name() string
	// Accept attaches a child rule or constraint. Semantics vary by kind:
	// composites attach alternatives, choice/equals attach literals,
	// regexp_match attaches a pattern, scalar kinds ignore it. spec may be a
	// built Rule (reparented), a kind name string, or a func() Rule built
	// lazily on first use.
	Accept(spec any, opts ...Option) Rule
	// Validateable reports whether this rule applies to the shape of data.
	Validateable(data any) bool
	// Validate checks data, appending diagnostics to Errors on failure.
	Validate(data any) bool
	// Errors returns the diagnostics collector shared by the whole tree,
	// located at the root and created lazily.
	Errors() *Errors
	// Schema synthesizes the JSON Schema document for this rule. It is pure
	// and never inspects data.
	Schema() *js.Schema

	// sealed: internal wiring used by composites and the registry.
	setParent(p Rule)
	ruleParent() Rule
	rootErrors() *Errors
	customMessage() string
	applyOpts(o *acceptOpts)
	validate(ev *Errors, data any) bool
}

// Option configures an Accept call or a freshly created rule.
type Option func(*acceptOpts)

type acceptOpts struct {
	key              string
	required         bool
	message          string
	ignoreCase       bool
	allowReplacement bool
	allowMissing     bool
	protocols        []string
	keyTypes         []string
	keyValidator     Rule
}

// Key names the mapping key a dict child governs.
func Key(k string) Option { return func(o *acceptOpts) { o.key = k } }

// Required marks a dict key as mandatory.
func Required() Option { return func(o *acceptOpts) { o.required = true } }

// Message overrides the generic diagnostic with a custom one.
func Message(m string) Option { return func(o *acceptOpts) { o.message = m } }

// IgnoreCase makes a choice literal match case-insensitively.
func IgnoreCase() Option { return func(o *acceptOpts) { o.ignoreCase = true } }

// AllowReplacement lets a path rule validate only the directory before the
// first placeholder token.
func AllowReplacement() Option { return func(o *acceptOpts) { o.allowReplacement = true } }

// AllowMissing lets a path rule pass even when the directory does not exist.
func AllowMissing() Option { return func(o *acceptOpts) { o.allowMissing = true } }

// Protocols overrides the scheme set accepted by a url rule.
func Protocols(p ...string) Option { return func(o *acceptOpts) { o.protocols = p } }

// KeyType selects dict keys by rule kind name for AcceptValidKeys.
func KeyType(names ...string) Option { return func(o *acceptOpts) { o.keyTypes = names } }

// KeyValidator selects dict keys by an explicit predicate rule for
// AcceptValidKeys. Mutually exclusive with KeyType.
func KeyValidator(r Rule) Option { return func(o *acceptOpts) { o.keyValidator = r } }

func buildOpts(opts []Option) *acceptOpts {
	o := &acceptOpts{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// base carries the state every rule kind shares: kind name, parent link used
// to locate the collector, optional custom message, and the collector cached
// at the root. Concrete kinds embed it and record themselves as self so the
// shared methods dispatch to the outer type.
type base struct {
	name    string
	parent  Rule
	message string
	errs    *Errors
	self    Rule
}

func (b *base) init(name string, self Rule) {
	b.name = name
	b.self = self
}

func (b *base) Name() string { return b.name }

func (b *base) setParent(p Rule) { b.parent = p }

func (b *base) ruleParent() Rule { return b.parent }

func (b *base) customMessage() string { return b.message }

func (b *base) applyOpts(o *acceptOpts) {
	if o.message != "" {
		b.message = o.message
	}
}

// Errors walks parent references to the parentless node and returns its
// collector, creating it on first use. Every node reachable from a root has
// exactly one path to it.
func (b *base) Errors() *Errors {
	var r Rule = b.self
	for r.ruleParent() != nil {
		r = r.ruleParent()
	}
	return r.rootErrors()
}

func (b *base) rootErrors() *Errors {
	if b.errs == nil {
		b.errs = NewErrors()
	}
	return b.errs
}

// Validate resolves the shared collector once, then threads it explicitly
// through the recursive walk.
func (b *base) Validate(data any) bool {
	return b.self.validate(b.Errors(), data)
}

// Accept on a scalar kind is a no-op; kinds with children or constraints
// override it.
func (b *base) Accept(spec any, opts ...Option) Rule { return b.self }

// child resolves an Accept spec into an attached rule: a built Rule is
// reparented, a kind name is instantiated through the registry, and a
// zero-argument constructor is wrapped lazily.
func (b *base) child(spec any, opts ...Option) Rule {
	switch v := spec.(type) {
	case Rule:
		v.setParent(b.self)
		return v
	case func() Rule:
		return newLazy(v, b.self)
	case string:
		r, err := New(v, opts...)
		if err != nil {
			panic(err)
		}
		r.setParent(b.self)
		return r
	default:
		panic(fmt.Sprintf("valtree: cannot accept %T as a rule", spec))
	}
}

// selectRule validates item against candidates in order: the first candidate
// that both applies to the item's shape and validates it wins, and
// diagnostics logged by earlier failed candidates are rolled back, leaving
// the collector as it was before the call. When no candidate succeeds and
// none logged its own diagnostic, a generic message naming the alternatives
// is synthesized, preferring any candidate's custom message.
func selectRule(ev *Errors, item any, candidates []Rule) bool {
	if len(candidates) == 0 {
		ev.Add("%s", i18n.T(codeNoAlternatives))
		return false
	}
	before := ev.Count()
	for _, c := range candidates {
		if c.Validateable(item) && c.validate(ev, item) {
			ev.Rollback(ev.Count() - before)
			return true
		}
	}
	if before == ev.Count() {
		for _, c := range candidates {
			if msg := c.customMessage(); msg != "" {
				ev.Add("%s", msg)
			}
		}
	}
	if before == ev.Count() {
		names := make([]string, len(candidates))
		for i, c := range candidates {
			names[i] = c.Name()
		}
		acceptable := englishJoin(names)
		ev.Add(i18n.T(codeMustBeOneOf), acceptable)
		switch {
		case isMapping(item):
			ev.Add(i18n.T(codeGotMapping), acceptable)
		case isSequence(item):
			ev.Add(i18n.T(codeGotSequence), acceptable)
		default:
			ev.Add(i18n.T(codeNotValidValue), item, acceptable)
		}
	}
	return false
}

// englishJoin renders names as "a, b or c".
func englishJoin(names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	}
	return strings.Join(names[:len(names)-1], ", ") + " or " + names[len(names)-1]
}

func isMapping(v any) bool {
	return v != nil && reflect.TypeOf(v).Kind() == reflect.Map
}

func isSequence(v any) bool {
	if v == nil {
		return false
	}
	switch reflect.TypeOf(v).Kind() {
	case reflect.Slice, reflect.Array:
		return true
	}
	return false
}

// asMapping normalizes mapping-shaped input to map[string]any. Both
// map[string]any (yaml.v3, JSON decoders) and other key types (legacy YAML
// decoders) are accepted; keys are stringified.
func asMapping(v any) (map[string]any, bool) {
	if m, ok := v.(map[string]any); ok {
		return m, true
	}
	if !isMapping(v) {
		return nil, false
	}
	rv := reflect.ValueOf(v)
	out := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		out[fmt.Sprint(iter.Key().Interface())] = iter.Value().Interface()
	}
	return out, true
}

// asSequence normalizes sequence-shaped input to []any.
func asSequence(v any) ([]any, bool) {
	if s, ok := v.([]any); ok {
		return s, true
	}
	if !isSequence(v) {
		return nil, false
	}
	rv := reflect.ValueOf(v)
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}
