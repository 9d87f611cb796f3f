package valtree

import (
	"encoding/json"
	"fmt"
	"strconv"
)

type litKind int

const (
	litText litKind = iota
	litInt
	litReal
	litBool
)

// Literal is a closed sum over the scalar shapes accepted by the choice and
// equals rules: text, integer, real and boolean.
type Literal struct {
	kind litKind
	text string
	i    int64
	f    float64
	b    bool
}

// newLiteral classifies v into the closed literal sum. The second return is
// false for anything outside it.
func newLiteral(v any) (Literal, bool) {
	switch x := v.(type) {
	case Literal:
		return x, true
	case string:
		return Literal{kind: litText, text: x}, true
	case bool:
		return Literal{kind: litBool, b: x}, true
	case int:
		return Literal{kind: litInt, i: int64(x)}, true
	case int8:
		return Literal{kind: litInt, i: int64(x)}, true
	case int16:
		return Literal{kind: litInt, i: int64(x)}, true
	case int32:
		return Literal{kind: litInt, i: int64(x)}, true
	case int64:
		return Literal{kind: litInt, i: x}, true
	case uint:
		return Literal{kind: litInt, i: int64(x)}, true
	case uint8:
		return Literal{kind: litInt, i: int64(x)}, true
	case uint16:
		return Literal{kind: litInt, i: int64(x)}, true
	case uint32:
		return Literal{kind: litInt, i: int64(x)}, true
	case uint64:
		return Literal{kind: litInt, i: int64(x)}, true
	case float32:
		return Literal{kind: litReal, f: float64(x)}, true
	case float64:
		return Literal{kind: litReal, f: x}, true
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return Literal{kind: litInt, i: i}, true
		}
		if f, err := x.Float64(); err == nil {
			return Literal{kind: litReal, f: f}, true
		}
		return Literal{}, false
	}
	return Literal{}, false
}

// mustLiteral is newLiteral for schema-authoring code, where an invalid
// literal type is a defect.
func mustLiteral(v any, kind string) Literal {
	lit, ok := newLiteral(v)
	if !ok {
		panic(fmt.Sprintf("valtree: %s rule accepts text, integer, real or boolean literals, got %T", kind, v))
	}
	return lit
}

// equals reports whether data is the same scalar as the literal. Integers and
// reals compare numerically across kinds, so 1 equals 1.0.
func (l Literal) equals(data any) bool {
	d, ok := newLiteral(data)
	if !ok {
		return false
	}
	if l.kind == d.kind {
		switch l.kind {
		case litText:
			return l.text == d.text
		case litInt:
			return l.i == d.i
		case litReal:
			return l.f == d.f
		case litBool:
			return l.b == d.b
		}
	}
	if l.isNumeric() && d.isNumeric() {
		return l.asFloat() == d.asFloat()
	}
	return false
}

func (l Literal) isNumeric() bool { return l.kind == litInt || l.kind == litReal }

func (l Literal) asFloat() float64 {
	if l.kind == litInt {
		return float64(l.i)
	}
	return l.f
}

// value returns the underlying Go value for schema enum output.
func (l Literal) value() any {
	switch l.kind {
	case litText:
		return l.text
	case litInt:
		return l.i
	case litReal:
		return l.f
	default:
		return l.b
	}
}

func (l Literal) String() string {
	switch l.kind {
	case litText:
		return l.text
	case litInt:
		return strconv.FormatInt(l.i, 10)
	case litReal:
		return strconv.FormatFloat(l.f, 'g', -1, 64)
	default:
		return strconv.FormatBool(l.b)
	}
}
