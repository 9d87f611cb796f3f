package valtree

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/valtree/valtree/i18n"
	js "github.com/valtree/valtree/jsonschema"
)

func init() {
	Register("regexp", func() Rule { return newRegexpRule() })
	Register("regexp_match", func() Rule { return newRegexpMatch() })
	Register("interval", func() Rule { return newInterval() })
	Register("url", func() Rule { return newURL() })
}

// ---- regexp ----

// regexpRule validates that the value itself compiles as a regular
// expression.
type regexpRule struct{ base }

func newRegexpRule() *regexpRule {
	r := &regexpRule{}
	r.base.init("regexp", r)
	return r
}

func (r *regexpRule) Validateable(data any) bool { return isText(data) }

func (r *regexpRule) validate(ev *Errors, data any) bool {
	s, ok := data.(string)
	if !ok {
		ev.Add("%s", i18n.T(codeExpectingText))
		return false
	}
	if _, err := regexp.Compile(s); err != nil {
		ev.Add(i18n.T(codeInvalidRegexp), s)
		return false
	}
	return true
}

func (r *regexpRule) Schema() *js.Schema {
	return &js.Schema{Type: "string", Format: "regex"}
}

// ---- regexp_match ----

// matcher keeps the authored pattern for schema output next to its compiled
// form, anchored at the start to mirror prefix-match semantics.
type matcher struct {
	pattern string
	re      *regexp.Regexp
}

func compileMatcher(pattern string) matcher {
	re, err := regexp.Compile(`^(?:` + pattern + `)`)
	if err != nil {
		panic(fmt.Sprintf("valtree: invalid pattern given to regexp_match: %v", err))
	}
	return matcher{pattern: pattern, re: re}
}

// RegexpMatch validates text against accepted pattern sets while rejecting
// anything matching the reject set. Reject patterns are checked first and
// short-circuit.
type RegexpMatch struct {
	base
	accepts []matcher
	rejects []matcher
}

func newRegexpMatch() *RegexpMatch {
	r := &RegexpMatch{}
	r.base.init("regexp_match", r)
	return r
}

// NewRegexpMatch returns a detached regexp_match rule for direct composition.
func NewRegexpMatch() *RegexpMatch { return newRegexpMatch() }

// Accept adds an accepted pattern. An invalid pattern is a schema-authoring
// defect and panics.
func (r *RegexpMatch) Accept(spec any, opts ...Option) Rule {
	pattern, ok := spec.(string)
	if !ok {
		panic(fmt.Sprintf("valtree: regexp_match accepts pattern strings, got %T", spec))
	}
	r.accepts = append(r.accepts, compileMatcher(pattern))
	r.base.applyOpts(buildOpts(opts))
	return r
}

// Reject adds a rejected pattern.
func (r *RegexpMatch) Reject(pattern string) *RegexpMatch {
	r.rejects = append(r.rejects, compileMatcher(pattern))
	return r
}

func (r *RegexpMatch) Validateable(data any) bool { return isText(data) }

func (r *RegexpMatch) validate(ev *Errors, data any) bool {
	s, ok := data.(string)
	if !ok {
		ev.Add("%s", i18n.T(codeExpectingText))
		return false
	}
	rejected := false
	for _, rej := range r.rejects {
		if rej.re.MatchString(s) {
			rejected = true
			break
		}
	}
	if !rejected {
		for _, acc := range r.accepts {
			if acc.re.MatchString(s) {
				return true
			}
		}
	}
	if msg := r.self.customMessage(); msg != "" {
		ev.Add("%s", msg)
	} else {
		ev.Add(i18n.T(codeNoRegexpMatch), s)
	}
	return false
}

func (r *RegexpMatch) Schema() *js.Schema {
	accepted := make([]*js.Schema, len(r.accepts))
	for i, acc := range r.accepts {
		accepted[i] = &js.Schema{Type: "string", Pattern: acc.pattern}
	}
	schema := js.Union(accepted...)
	if len(r.rejects) > 0 {
		rejected := make([]*js.Schema, len(r.rejects))
		for i, rej := range r.rejects {
			rejected[i] = &js.Schema{Pattern: rej.pattern}
		}
		schema.Not = js.Union(rejected...)
	}
	return schema
}

// ---- interval ----

// interval is a regexp_match preloaded with the duration shorthand accepted
// across configuration surfaces, e.g. "5 days" or "1 hour".
type intervalRule struct{ RegexpMatch }

func newInterval() *intervalRule {
	r := &intervalRule{}
	r.base.init("interval", r)
	r.accepts = append(r.accepts, compileMatcher(`^\d+ (second|minute|hour|day|week)s?$`))
	return r
}

// customMessage resolves the format hint at use time so a language switched
// after construction still applies. An explicit Message option wins.
func (r *intervalRule) customMessage() string {
	if r.message != "" {
		return r.message
	}
	return i18n.T(codeIntervalFormat)
}

// ---- url ----

var defaultProtocols = []string{"ftp", "http", "https", "file"}

// urlRule validates scheme-qualified URL shape for an accepted protocol set.
type urlRule struct {
	base
	protocols []string
}

func newURL() *urlRule {
	r := &urlRule{protocols: defaultProtocols}
	r.base.init("url", r)
	return r
}

func (r *urlRule) applyOpts(o *acceptOpts) {
	r.base.applyOpts(o)
	if len(o.protocols) > 0 {
		r.protocols = o.protocols
	}
}

func (r *urlRule) Validateable(data any) bool { return isText(data) }

func (r *urlRule) validate(ev *Errors, data any) bool {
	s, ok := data.(string)
	if !ok {
		ev.Add("%s", i18n.T(codeExpectingText))
		return false
	}
	pattern := `^(` + strings.Join(r.protocols, "|") + `)://(\w+:?\w*@)?(\S+)(:[0-9]+)?(/|/([\w#!:.?+=&%@!\-/]))?`
	if !regexp.MustCompile(pattern).MatchString(s) {
		ev.Add(i18n.T(codeInvalidURL), s)
		return false
	}
	return true
}

func (r *urlRule) Schema() *js.Schema {
	return &js.Schema{Type: "string", Format: "uri"}
}
