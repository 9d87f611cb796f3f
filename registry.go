package valtree

import (
	"fmt"
	"sort"
	"sync"
)

// UnknownRuleError is returned by New when no rule kind has been registered
// under the requested name.
type UnknownRuleError struct{ Name string }

func (e *UnknownRuleError) Error() string {
	return fmt.Sprintf("valtree: unknown rule kind %q", e.Name)
}

var (
	registryMu sync.RWMutex
	registry   = make(map[string]func() Rule)
)

// Register adds a rule constructor under the given kind name. Built-in kinds
// register themselves from init; vocabulary-backed kinds register through
// RegisterVocabulary. Registering a duplicate or empty name is a defect in
// schema-authoring code and panics.
func Register(name string, ctor func() Rule) {
	if name == "" {
		panic("valtree: Register with empty rule kind name")
	}
	if ctor == nil {
		panic(fmt.Sprintf("valtree: Register(%q) with nil constructor", name))
	}
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, dup := registry[name]; dup {
		panic(fmt.Sprintf("valtree: rule kind %q already registered", name))
	}
	registry[name] = ctor
}

// New instantiates the rule kind registered under name and applies opts.
func New(name string, opts ...Option) (Rule, error) {
	registryMu.RLock()
	ctor, ok := registry[name]
	registryMu.RUnlock()
	if !ok {
		return nil, &UnknownRuleError{Name: name}
	}
	r := ctor()
	r.applyOpts(buildOpts(opts))
	return r, nil
}

// MustNew is New for schema-authoring code, where an unknown kind is a defect.
func MustNew(name string, opts ...Option) Rule {
	r, err := New(name, opts...)
	if err != nil {
		panic(err)
	}
	return r
}

// Names returns the registered rule kind names, sorted.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
