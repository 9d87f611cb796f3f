package blueprint_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	valtree "github.com/valtree/valtree"
	"github.com/valtree/valtree/internal/blueprint"
)

const seriesDescriptor = `
kind: dict
keys:
  name:
    kind: text
    required: true
  quality:
    kind: choice
    choices: [sd, 720p, 1080p]
    ignore_case: true
  season:
    kind: integer
  exact:
    kind: boolean
reject:
  set: "no ${key} allowed here"
`

func TestParseAndValidate(t *testing.T) {
	rule, err := blueprint.Parse([]byte(seriesDescriptor))
	require.NoError(t, err)

	assert.True(t, rule.Validate(map[string]any{
		"name":    "some show",
		"quality": "720P",
		"season":  3,
	}), "messages: %v", rule.Errors().Messages())
}

func TestParseDiagnostics(t *testing.T) {
	rule, err := blueprint.Parse([]byte(seriesDescriptor))
	require.NoError(t, err)

	assert.False(t, rule.Validate(map[string]any{
		"quality": "betamax",
		"set":     map[string]any{},
	}))
	joined := strings.Join(rule.Errors().Messages(), "\n")
	assert.Contains(t, joined, "'betamax' is not one of acceptable values")
	assert.Contains(t, joined, "no set allowed here")
	assert.Contains(t, joined, "key 'name' required")
}

func TestParseRootCombinator(t *testing.T) {
	rule, err := blueprint.Parse([]byte(`
any_of:
  - kind: text
  - kind: integer
`))
	require.NoError(t, err)

	assert.True(t, rule.Validate("hello"))
	assert.True(t, blueprintMustParse(t, "any_of: [{kind: text}, {kind: integer}]").Validate(7))
	assert.False(t, blueprintMustParse(t, "any_of: [{kind: text}, {kind: integer}]").Validate(true))
}

func TestParseList(t *testing.T) {
	rule := blueprintMustParse(t, `
kind: list
items:
  - kind: regexp_match
    patterns: ["(?i)s\\d\\de\\d\\d"]
    message: "Must be in SXXEXX format"
`)
	assert.True(t, rule.Validate([]any{"S01E05", "s02e11"}))

	failing := blueprintMustParse(t, `
kind: list
items:
  - kind: regexp_match
    patterns: ["(?i)s\\d\\de\\d\\d"]
    message: "Must be in SXXEXX format"
`)
	assert.False(t, failing.Validate([]any{"episode 5"}))
	assert.Contains(t, strings.Join(failing.Errors().Messages(), "\n"), "Must be in SXXEXX format")
}

func TestParseValidKeys(t *testing.T) {
	rule := blueprintMustParse(t, `
kind: dict
valid_keys:
  - key_types: [text]
    value:
      kind: boolean
`)
	assert.True(t, rule.Validate(map[string]any{"whatever": true}))
	assert.False(t, blueprintMustParse(t, `
kind: dict
valid_keys:
  - key_types: [text]
    value:
      kind: boolean
`).Validate(map[string]any{"whatever": "yes"}))
}

func TestParseSchema(t *testing.T) {
	rule := blueprintMustParse(t, seriesDescriptor)
	schema := rule.Schema()
	require.NotNil(t, schema)
	assert.Equal(t, "object", schema.Type)
	assert.Equal(t, []string{"name"}, schema.Required)
	assert.Equal(t, "integer", schema.Properties["season"].Type)
}

func TestParseErrors(t *testing.T) {
	_, err := blueprint.Parse([]byte(`kind: "no_such_kind"`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no_such_kind")

	_, err = blueprint.Parse([]byte(`message: "kindless"`))
	require.Error(t, err)

	_, err = blueprint.Parse([]byte("\t bad yaml"))
	require.Error(t, err)
}

func TestBuildRecoversRegistryMisuse(t *testing.T) {
	// An invalid accept pattern panics inside the engine; Build turns that
	// into an error because descriptors are external input.
	_, err := blueprint.Parse([]byte(`
kind: regexp_match
patterns: ["(["]
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid pattern")
}

func TestLoadFromReader(t *testing.T) {
	rule, err := blueprint.Load(strings.NewReader(seriesDescriptor))
	require.NoError(t, err)
	assert.True(t, rule.Validate(map[string]any{"name": "x"}))
}

func blueprintMustParse(t *testing.T, descriptor string) valtree.Rule {
	t.Helper()
	rule, err := blueprint.Parse([]byte(descriptor))
	require.NoError(t, err)
	return rule
}
