package valtree_test

import (
	"fmt"
	"strings"
	"testing"

	valtree "github.com/valtree/valtree"
)

func init() {
	valtree.RegisterVocabulary("test_quality", "quality", valtree.VocabularyFunc(func(text string) error {
		switch text {
		case "sd", "720p", "1080p":
			return nil
		}
		return fmt.Errorf("'%s' is not a valid quality", text)
	}))
}

func TestVocabularyRule(t *testing.T) {
	rule := valtree.MustNew("test_quality")
	if !rule.Validate("720p") {
		t.Fatalf("expected known token to pass: %v", rule.Errors().Messages())
	}

	bad := valtree.MustNew("test_quality")
	if bad.Validate("480i") {
		t.Fatalf("expected unknown token to fail")
	}
	if !strings.Contains(strings.Join(bad.Errors().Messages(), "\n"), "'480i' is not a valid quality") {
		t.Fatalf("expected parser message verbatim, got %v", bad.Errors().Messages())
	}
}

func TestVocabularyCustomMessage(t *testing.T) {
	rule := valtree.MustNew("test_quality", valtree.Message("pick sd, 720p or 1080p"))
	if rule.Validate("4k") {
		t.Fatalf("expected failure")
	}
	if !strings.Contains(strings.Join(rule.Errors().Messages(), "\n"), "pick sd, 720p or 1080p") {
		t.Fatalf("expected custom message, got %v", rule.Errors().Messages())
	}
}

func TestVocabularyRejectsNonText(t *testing.T) {
	rule := valtree.MustNew("test_quality")
	if rule.Validate(720) {
		t.Fatalf("expected non-text to fail")
	}
}

func TestVocabularySchemaFormat(t *testing.T) {
	schema := valtree.MustNew("test_quality").Schema()
	if schema.Type != "string" || schema.Format != "quality" {
		t.Fatalf("unexpected schema: %#v", schema)
	}
}

func TestVocabularyInsideDict(t *testing.T) {
	dict := valtree.NewDict()
	dict.Accept("test_quality", valtree.Key("quality"))
	if dict.Validate(map[string]any{"quality": "betamax"}) {
		t.Fatalf("expected failure")
	}
	if !strings.Contains(strings.Join(dict.Errors().Messages(), "\n"), "[/dict:quality]") {
		t.Fatalf("expected path-qualified diagnostic, got %v", dict.Errors().Messages())
	}
}

func TestRegisterVocabularyNilPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for nil vocabulary")
		}
	}()
	valtree.RegisterVocabulary("test_nil_vocab", "", nil)
}
