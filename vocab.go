package valtree

import (
	"github.com/valtree/valtree/i18n"
	js "github.com/valtree/valtree/jsonschema"
)

// Vocabulary parses domain scalar tokens, e.g. quality labels or quality
// requirement expressions. Parse returns nil when text belongs to the
// vocabulary and a descriptive error otherwise; the error message is shown to
// the user verbatim.
type Vocabulary interface {
	Parse(text string) error
}

// VocabularyFunc adapts a function to the Vocabulary interface.
type VocabularyFunc func(text string) error

func (f VocabularyFunc) Parse(text string) error { return f(text) }

// RegisterVocabulary registers a text rule kind backed by an external
// vocabulary. format names the schema format the kind advertises. Features
// then accept the kind by name like any built-in rule.
func RegisterVocabulary(name, format string, vocab Vocabulary) {
	if vocab == nil {
		panic("valtree: RegisterVocabulary with nil vocabulary")
	}
	Register(name, func() Rule {
		r := &vocabRule{format: format, vocab: vocab}
		r.base.init(name, r)
		return r
	})
}

type vocabRule struct {
	base
	format string
	vocab  Vocabulary
}

func (r *vocabRule) Validateable(data any) bool { return isText(data) }

func (r *vocabRule) validate(ev *Errors, data any) bool {
	s, ok := data.(string)
	if !ok {
		ev.Add("%s", i18n.T(codeExpectingText))
		return false
	}
	if err := r.vocab.Parse(s); err != nil {
		if r.message != "" {
			ev.Add("%s", r.message)
		} else {
			ev.Add("%s", err.Error())
		}
		return false
	}
	return true
}

func (r *vocabRule) Schema() *js.Schema {
	return &js.Schema{Type: "string", Format: r.format}
}
