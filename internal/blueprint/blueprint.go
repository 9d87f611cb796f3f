// Package blueprint builds rule trees from YAML schema descriptors. It is the
// tooling counterpart of the registry: every rule kind is instantiated by
// name, so vocabulary-backed kinds registered by the embedding application
// work unchanged.
package blueprint

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	valtree "github.com/valtree/valtree"
)

// Node is one rule descriptor. Kind selects the registered rule kind; the
// remaining fields configure the kinds that use them and are ignored by the
// rest. A node with AnyOf and no Kind becomes a root combinator.
type Node struct {
	Kind    string `yaml:"kind"`
	Message string `yaml:"message"`
	// Required marks the key this node sits under as mandatory.
	Required bool `yaml:"required"`

	// choice / equals
	Choices    []any `yaml:"choices"`
	IgnoreCase bool  `yaml:"ignore_case"`
	Equals     any   `yaml:"equals"`

	// regexp_match
	Patterns       []string `yaml:"patterns"`
	RejectPatterns []string `yaml:"reject_patterns"`

	// path / url
	AllowMissing     bool     `yaml:"allow_missing"`
	AllowReplacement bool     `yaml:"allow_replacement"`
	Protocols        []string `yaml:"protocols"`

	// dict
	Keys       map[string]*Node  `yaml:"keys"`
	RequireKey []string          `yaml:"require"`
	RejectKeys map[string]string `yaml:"reject"`
	AnyKey     *Node             `yaml:"any_key"`
	ValidKeys  []*KeyRuleNode    `yaml:"valid_keys"`

	// list
	Items []*Node `yaml:"items"`

	// root / per-key alternatives
	AnyOf []*Node `yaml:"any_of"`
}

// KeyRuleNode pairs a key predicate (by rule kind names) with the rule for
// values under matching keys.
type KeyRuleNode struct {
	KeyTypes []string `yaml:"key_types"`
	Value    *Node    `yaml:"value"`
}

// Load reads a YAML descriptor and builds its rule tree.
func Load(r io.Reader) (valtree.Rule, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("blueprint: reading descriptor: %w", err)
	}
	return Parse(raw)
}

// Parse decodes a YAML descriptor and builds its rule tree.
func Parse(raw []byte) (valtree.Rule, error) {
	var node Node
	if err := yaml.Unmarshal(raw, &node); err != nil {
		return nil, fmt.Errorf("blueprint: decoding descriptor: %w", err)
	}
	return Build(&node)
}

// Build turns a descriptor node into a rule tree.
func Build(node *Node) (rule valtree.Rule, err error) {
	// Registry misuse panics; surface it as an error since descriptors are
	// external input, not authored Go code.
	defer func() {
		if r := recover(); r != nil {
			rule, err = nil, fmt.Errorf("blueprint: %v", r)
		}
	}()
	rule, err = build(node)
	return rule, err
}

func build(node *Node) (valtree.Rule, error) {
	if node == nil {
		return nil, fmt.Errorf("blueprint: empty rule descriptor")
	}
	if node.Kind == "" {
		if len(node.AnyOf) == 0 {
			return nil, fmt.Errorf("blueprint: rule descriptor needs kind or any_of")
		}
		root := valtree.NewRoot()
		for _, alt := range node.AnyOf {
			child, err := build(alt)
			if err != nil {
				return nil, err
			}
			root.Accept(child)
		}
		return root, nil
	}

	opts := node.options()
	rule, err := valtree.New(node.Kind, opts...)
	if err != nil {
		return nil, fmt.Errorf("blueprint: %w", err)
	}

	switch r := rule.(type) {
	case *valtree.Choice:
		r.AcceptChoices(node.Choices, opts...)
	case *valtree.RegexpMatch:
		for _, pattern := range node.Patterns {
			r.Accept(pattern, opts...)
		}
		for _, pattern := range node.RejectPatterns {
			r.Reject(pattern)
		}
	case *valtree.Dict:
		if err := buildDict(r, node); err != nil {
			return nil, err
		}
	case *valtree.List:
		for _, item := range node.Items {
			child, err := build(item)
			if err != nil {
				return nil, err
			}
			r.Accept(child)
		}
	case *valtree.Root:
		for _, alt := range node.AnyOf {
			child, err := build(alt)
			if err != nil {
				return nil, err
			}
			r.Accept(child)
		}
	case *valtree.Equals:
		if node.Equals != nil {
			r.Accept(node.Equals)
		}
	}
	return rule, nil
}

func buildDict(dict *valtree.Dict, node *Node) error {
	for key, sub := range node.Keys {
		child, err := build(sub)
		if err != nil {
			return err
		}
		opts := []valtree.Option{valtree.Key(key)}
		if sub.Required {
			opts = append(opts, valtree.Required())
		}
		if sub.Message != "" {
			opts = append(opts, valtree.Message(sub.Message))
		}
		dict.Accept(child, opts...)
	}
	for _, key := range node.RequireKey {
		dict.RequireKey(key)
	}
	for key, message := range node.RejectKeys {
		dict.RejectKey(key, message)
	}
	if node.AnyKey != nil {
		child, err := build(node.AnyKey)
		if err != nil {
			return err
		}
		dict.AcceptAnyKey(child)
	}
	for _, pair := range node.ValidKeys {
		if pair == nil || pair.Value == nil {
			return fmt.Errorf("blueprint: valid_keys entry needs a value rule")
		}
		child, err := build(pair.Value)
		if err != nil {
			return err
		}
		dict.AcceptValidKeys(child, valtree.KeyType(pair.KeyTypes...))
	}
	return nil
}

func (n *Node) options() []valtree.Option {
	var opts []valtree.Option
	if n.Message != "" {
		opts = append(opts, valtree.Message(n.Message))
	}
	if n.IgnoreCase {
		opts = append(opts, valtree.IgnoreCase())
	}
	if n.AllowMissing {
		opts = append(opts, valtree.AllowMissing())
	}
	if n.AllowReplacement {
		opts = append(opts, valtree.AllowReplacement())
	}
	if len(n.Protocols) > 0 {
		opts = append(opts, valtree.Protocols(n.Protocols...))
	}
	return opts
}
