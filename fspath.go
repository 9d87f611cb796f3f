package valtree

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/valtree/valtree/i18n"
	js "github.com/valtree/valtree/jsonschema"
)

func init() {
	Register("path", func() Rule { return newPath() })
	Register("file", func() Rule { return newFile() })
}

// expandHome resolves a leading ~ against the current user's home directory.
func expandHome(p string) string {
	if p == "~" || strings.HasPrefix(p, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, p[1:])
		}
	}
	return p
}

// Placeholder tokens a path value may carry when replacement is allowed:
// brace-delimited template markers and legacy percent-format specifiers.
var (
	templateTokenRe = regexp.MustCompile(`\{[{%].*[}%]\}`)
	percentTokenRe  = regexp.MustCompile(`%\([^()]*\)[-+ #0]*(?:\*|[0-9]*)(?:\.(?:\*|[0-9]*))?[EGXcdefgiorsux%]`)
)

// Path validates that the target directory exists. With AllowReplacement only
// the directory before the first placeholder token is checked; with
// AllowMissing existence is not required at all.
type Path struct {
	base
	allowReplacement bool
	allowMissing     bool
}

func newPath() *Path {
	r := &Path{}
	r.base.init("path", r)
	return r
}

// NewPath returns a detached path rule for direct composition.
func NewPath(opts ...Option) *Path {
	r := newPath()
	r.applyOpts(buildOpts(opts))
	return r
}

func (r *Path) applyOpts(o *acceptOpts) {
	r.base.applyOpts(o)
	if o.allowReplacement {
		r.allowReplacement = true
	}
	if o.allowMissing {
		r.allowMissing = true
	}
}

func (r *Path) Validateable(data any) bool { return isText(data) }

func (r *Path) validate(ev *Errors, data any) bool {
	s, ok := data.(string)
	if !ok {
		ev.Add("%s", i18n.T(codeExpectingText))
		return false
	}
	path := s
	if r.allowReplacement {
		loc := templateTokenRe.FindStringIndex(s)
		if loc == nil {
			loc = percentTokenRe.FindStringIndex(s)
		}
		if loc != nil {
			path = filepath.Dir(s[:loc[0]])
		}
	}
	if !r.allowMissing {
		if info, err := os.Stat(expandHome(path)); err != nil || !info.IsDir() {
			ev.Add(i18n.T(codePathMissing), path)
			return false
		}
	}
	return true
}

func (r *Path) Schema() *js.Schema {
	return &js.Schema{Type: "string", Format: "path"}
}

// fileRule validates that the target file exists, expanding home-relative
// paths.
type fileRule struct{ base }

func newFile() *fileRule {
	r := &fileRule{}
	r.base.init("file", r)
	return r
}

func (r *fileRule) Validateable(data any) bool { return isText(data) }

func (r *fileRule) validate(ev *Errors, data any) bool {
	s, ok := data.(string)
	if !ok {
		ev.Add("%s", i18n.T(codeExpectingText))
		return false
	}
	info, err := os.Stat(expandHome(s))
	if err != nil || info.IsDir() {
		ev.Add(i18n.T(codeFileMissing), s)
		return false
	}
	return true
}

func (r *fileRule) Schema() *js.Schema {
	return &js.Schema{Type: "string", Format: "file"}
}
