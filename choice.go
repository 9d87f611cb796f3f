package valtree

import (
	"sort"
	"strings"

	"github.com/valtree/valtree/i18n"
	js "github.com/valtree/valtree/jsonschema"
)

func init() {
	Register("choice", func() Rule { return newChoice() })
}

// Choice accepts an enumerated set of scalar literals. Case-sensitive values
// are checked first, then text input is lower-cased and compared against the
// case-insensitive set.
type Choice struct {
	base
	valid   []Literal
	validIC []string // lower-cased case-insensitive accepted texts
}

func newChoice() *Choice {
	r := &Choice{}
	r.base.init("choice", r)
	return r
}

// NewChoice returns a detached choice rule for direct composition.
func NewChoice() *Choice { return newChoice() }

// Accept adds one accepted literal. IgnoreCase applies to text literals only.
func (r *Choice) Accept(spec any, opts ...Option) Rule {
	o := buildOpts(opts)
	lit := mustLiteral(spec, "choice")
	if o.ignoreCase && lit.kind == litText {
		r.validIC = append(r.validIC, strings.ToLower(lit.text))
	} else {
		r.valid = append(r.valid, lit)
	}
	r.base.applyOpts(o)
	return r
}

// AcceptChoices is Accept over multiple values.
func (r *Choice) AcceptChoices(values []any, opts ...Option) Rule {
	for _, v := range values {
		r.Accept(v, opts...)
	}
	return r
}

func (r *Choice) Validateable(data any) bool { return isScalar(data) }

func (r *Choice) validate(ev *Errors, data any) bool {
	for _, lit := range r.valid {
		if lit.equals(data) {
			return true
		}
	}
	if s, ok := data.(string); ok {
		folded := strings.ToLower(s)
		for _, v := range r.validIC {
			if v == folded {
				return true
			}
		}
	}
	acceptable := make([]string, 0, len(r.valid)+len(r.validIC))
	for _, lit := range r.valid {
		acceptable = append(acceptable, lit.String())
	}
	acceptable = append(acceptable, r.validIC...)
	sort.Strings(acceptable)
	ev.Add(i18n.T(codeChoiceInvalid), data, strings.Join(acceptable, ", "))
	return false
}

func (r *Choice) Schema() *js.Schema {
	enum := make([]any, 0, len(r.valid)+len(r.validIC))
	for _, lit := range r.valid {
		enum = append(enum, lit.value())
	}
	for _, v := range r.validIC {
		enum = append(enum, v)
	}
	return &js.Schema{Enum: enum}
}
