package valtree

import (
	"encoding/json"

	"github.com/valtree/valtree/i18n"
	js "github.com/valtree/valtree/jsonschema"
)

func init() {
	Register("text", func() Rule { return newText() })
	Register("number", func() Rule { return newNumber() })
	Register("integer", func() Rule { return newInteger() })
	Register("decimal", func() Rule { return newDecimal() })
	Register("boolean", func() Rule { return newBoolean() })
	Register("any", func() Rule { return newAny() })
	Register("equals", func() Rule { return newEquals() })
}

func isText(v any) bool {
	_, ok := v.(string)
	return ok
}

// isInteger reports whether v is an integral scalar. Booleans are not
// numbers, and a float is a decimal even when it happens to be whole.
func isInteger(v any) bool {
	switch x := v.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return true
	case json.Number:
		_, err := x.Int64()
		return err == nil
	}
	return false
}

func isDecimal(v any) bool {
	switch x := v.(type) {
	case float32, float64:
		return true
	case json.Number:
		if _, err := x.Int64(); err == nil {
			return false
		}
		_, err := x.Float64()
		return err == nil
	}
	return false
}

func isNumber(v any) bool { return isInteger(v) || isDecimal(v) }

func isBoolean(v any) bool {
	_, ok := v.(bool)
	return ok
}

// isScalar covers the shapes equals and choice rules apply to.
func isScalar(v any) bool { return isText(v) || isNumber(v) || isBoolean(v) }

// ---- text ----

type textRule struct{ base }

func newText() *textRule {
	r := &textRule{}
	r.base.init("text", r)
	return r
}

func (r *textRule) Validateable(data any) bool { return isText(data) }

func (r *textRule) validate(ev *Errors, data any) bool {
	if !isText(data) {
		ev.Add(i18n.T(codeNotText), data)
		return false
	}
	return true
}

func (r *textRule) Schema() *js.Schema { return &js.Schema{Type: "string"} }

// ---- number ----

type numberRule struct{ base }

func newNumber() *numberRule {
	r := &numberRule{}
	r.base.init("number", r)
	return r
}

func (r *numberRule) Validateable(data any) bool { return isNumber(data) }

func (r *numberRule) validate(ev *Errors, data any) bool {
	if !isNumber(data) {
		ev.Add(i18n.T(codeNotNumber), data)
		return false
	}
	return true
}

func (r *numberRule) Schema() *js.Schema { return &js.Schema{Type: "number"} }

// ---- integer ----

type integerRule struct{ base }

func newInteger() *integerRule {
	r := &integerRule{}
	r.base.init("integer", r)
	return r
}

func (r *integerRule) Validateable(data any) bool { return isInteger(data) }

func (r *integerRule) validate(ev *Errors, data any) bool {
	if !isInteger(data) {
		ev.Add(i18n.T(codeNotInteger), data)
		return false
	}
	return true
}

func (r *integerRule) Schema() *js.Schema { return &js.Schema{Type: "integer"} }

// ---- decimal ----

type decimalRule struct{ base }

func newDecimal() *decimalRule {
	r := &decimalRule{}
	r.base.init("decimal", r)
	return r
}

func (r *decimalRule) Validateable(data any) bool { return isDecimal(data) }

func (r *decimalRule) validate(ev *Errors, data any) bool {
	if !isDecimal(data) {
		ev.Add(i18n.T(codeNotDecimal), data)
		return false
	}
	return true
}

func (r *decimalRule) Schema() *js.Schema { return &js.Schema{Type: "number"} }

// ---- boolean ----

type booleanRule struct{ base }

func newBoolean() *booleanRule {
	r := &booleanRule{}
	r.base.init("boolean", r)
	return r
}

func (r *booleanRule) Validateable(data any) bool { return isBoolean(data) }

func (r *booleanRule) validate(ev *Errors, data any) bool {
	if !isBoolean(data) {
		ev.Add(i18n.T(codeNotBoolean), data)
		return false
	}
	return true
}

func (r *booleanRule) Schema() *js.Schema { return &js.Schema{Type: "boolean"} }

// ---- any ----

type anyRule struct{ base }

func newAny() *anyRule {
	r := &anyRule{}
	r.base.init("any", r)
	return r
}

func (r *anyRule) Validateable(data any) bool { return true }

func (r *anyRule) validate(ev *Errors, data any) bool { return true }

func (r *anyRule) Schema() *js.Schema { return &js.Schema{} }

// ---- equals ----

// Equals accepts exactly one literal value.
type Equals struct {
	base
	lit    Literal
	hasLit bool
}

func newEquals() *Equals {
	r := &Equals{}
	r.base.init("equals", r)
	return r
}

// Accept sets the literal the rule compares against.
func (r *Equals) Accept(spec any, opts ...Option) Rule {
	r.lit = mustLiteral(spec, "equals")
	r.hasLit = true
	r.base.applyOpts(buildOpts(opts))
	return r
}

func (r *Equals) Validateable(data any) bool { return isScalar(data) }

func (r *Equals) validate(ev *Errors, data any) bool {
	if r.hasLit && r.lit.equals(data) {
		return true
	}
	ev.Add(i18n.T(codeNotEqual), data, r.lit.String())
	return false
}

func (r *Equals) Schema() *js.Schema {
	return &js.Schema{Enum: []any{r.lit.value()}}
}
