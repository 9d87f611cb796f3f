package valtree

import (
	"sort"
	"strings"

	"github.com/valtree/valtree/i18n"
	js "github.com/valtree/valtree/jsonschema"
)

func init() {
	Register("dict", func() Rule { return newDict() })
}

// keyRule pairs a key-shape predicate with the rule governing values under
// matching keys.
type keyRule struct {
	key   Rule
	value Rule
}

// Dict validates keyed mappings: explicit per-key alternatives, rejected and
// required key sets, predicate-selected key rules evaluated in registration
// order, and an optional catch-all for leftover keys.
type Dict struct {
	base
	fields   map[string][]Rule
	rejected map[string]string // key -> custom message, "" for the default
	required []string
	keyRules []keyRule
	anyKey   []Rule
}

func newDict() *Dict {
	r := &Dict{
		fields:   make(map[string][]Rule),
		rejected: make(map[string]string),
	}
	r.base.init("dict", r)
	return r
}

// NewDict returns a detached dict rule for direct composition.
func NewDict() *Dict { return newDict() }

// Accept attaches a rule governing one key. The Key option is mandatory;
// Required marks the key as such. Accepting the same key again adds an
// alternative.
func (r *Dict) Accept(spec any, opts ...Option) Rule {
	o := buildOpts(opts)
	if o.key == "" {
		panic("valtree: dict rule Accept requires the Key option")
	}
	if o.required {
		r.RequireKey(o.key)
	}
	child := r.child(spec, opts...)
	r.fields[o.key] = append(r.fields[o.key], child)
	return child
}

// RejectKey forbids a key. The message may contain a ${key} placeholder
// substituted with the offending key; pass "" for the default message.
func (r *Dict) RejectKey(key, message string) *Dict {
	r.rejected[key] = message
	return r
}

// RejectKeys forbids several keys with a shared message.
func (r *Dict) RejectKeys(keys []string, message string) *Dict {
	for _, key := range keys {
		r.rejected[key] = message
	}
	return r
}

// RequireKey flags a key as mandatory.
func (r *Dict) RequireKey(key string) *Dict {
	for _, existing := range r.required {
		if existing == key {
			return r
		}
	}
	r.required = append(r.required, key)
	return r
}

// AcceptAnyKey supplies a catch-all rule for keys not otherwise listed or
// predicate-matched.
func (r *Dict) AcceptAnyKey(spec any, opts ...Option) Rule {
	child := r.child(spec, opts...)
	r.anyKey = append(r.anyKey, child)
	return child
}

// AcceptValidKeys attaches a rule governing values under any key accepted by
// a key-shape predicate. The predicate comes from exactly one of the KeyType
// or KeyValidator options; supplying both or neither is a schema-authoring
// defect. Predicates are consulted in registration order, first match wins.
func (r *Dict) AcceptValidKeys(spec any, opts ...Option) Rule {
	o := buildOpts(opts)
	if len(o.keyTypes) > 0 && o.keyValidator != nil {
		panic("valtree: KeyType and KeyValidator are mutually exclusive")
	}
	var predicate Rule
	switch {
	case o.keyValidator != nil:
		// Reparent so its diagnostics reach our collector.
		o.keyValidator.setParent(r.self)
		predicate = o.keyValidator
	case len(o.keyTypes) > 0:
		root := newRoot()
		root.setParent(r.self)
		for _, name := range o.keyTypes {
			root.Accept(name)
		}
		predicate = root
	default:
		panic("valtree: AcceptValidKeys requires the KeyType or KeyValidator option")
	}
	value := r.child(spec, opts...)
	r.keyRules = append(r.keyRules, keyRule{key: predicate, value: value})
	return value
}

func (r *Dict) Validateable(data any) bool { return isMapping(data) }

func (r *Dict) validate(ev *Errors, data any) bool {
	m, ok := asMapping(data)
	if !ok {
		ev.Add("%s", i18n.T(codeMustBeDict))
		return false
	}
	count := ev.Count()

	// Walk present keys in sorted order so diagnostics are deterministic.
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	ev.pushPath("?")
	for _, key := range keys {
		value := m[key]
		ev.setPath("dict:" + key)
		if msg, forbidden := r.rejected[key]; forbidden {
			if msg != "" {
				ev.Add("%s", strings.ReplaceAll(msg, "${key}", key))
			} else {
				ev.Add(i18n.T(codeKeyForbidden), key)
			}
			continue
		}
		// The most specific rules win: explicit key, then the first matching
		// key predicate, then the catch-all.
		var rules []Rule
		if explicit, exists := r.fields[key]; exists {
			rules = explicit
		} else {
			before := ev.Count()
			for _, kr := range r.keyRules {
				if kr.key.Validateable(key) && kr.key.validate(ev, key) {
					rules = []Rule{kr.value}
					break
				}
			}
			if rules == nil && len(r.anyKey) > 0 {
				rules = r.anyKey
			}
			if rules != nil {
				ev.Rollback(ev.Count() - before)
			}
		}
		if rules == nil {
			if len(r.fields) > 0 {
				ev.Add(i18n.T(codeKeyNotRecognizedKnown), key, strings.Join(r.knownKeys(), ", "))
			} else {
				ev.Add(i18n.T(codeKeyNotRecognized), key)
			}
			continue
		}
		selectRule(ev, value, rules)
	}
	ev.popPath()

	for _, req := range r.required {
		if _, present := m[req]; !present {
			ev.Add(i18n.T(codeKeyRequired), req)
		}
	}
	return count == ev.Count()
}

func (r *Dict) knownKeys() []string {
	keys := make([]string, 0, len(r.fields))
	for key := range r.fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Schema synthesizes an object document. Rejected keys are intentionally left
// out; see the design notes.
func (r *Dict) Schema() *js.Schema {
	schema := &js.Schema{Type: "object", Properties: map[string]*js.Schema{}}
	for key, rules := range r.fields {
		schemas := make([]*js.Schema, len(rules))
		for i, rule := range rules {
			schemas[i] = rule.Schema()
		}
		schema.Properties[key] = js.Union(schemas...)
	}
	if len(r.required) > 0 {
		schema.Required = append([]string(nil), r.required...)
	}
	if len(r.anyKey) > 0 {
		schemas := make([]*js.Schema, len(r.anyKey))
		for i, rule := range r.anyKey {
			schemas[i] = rule.Schema()
		}
		schema.AdditionalProperties = js.Union(schemas...)
	} else {
		schema.AdditionalProperties = false
	}
	return schema
}
