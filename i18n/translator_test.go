package i18n_test

import (
	"testing"

	"github.com/valtree/valtree/i18n"
)

func TestDefaultLanguageIsEnglish(t *testing.T) {
	if got := i18n.T("must_be_one_of"); got != "must be one of %s" {
		t.Fatalf("unexpected template: %q", got)
	}
}

func TestSetLanguage(t *testing.T) {
	i18n.SetLanguage("ja")
	defer i18n.SetLanguage("en")
	if got := i18n.T("must_be_dict"); got != "値は辞書でなければなりません" {
		t.Fatalf("unexpected template: %q", got)
	}
	// unknown languages fall back to english
	i18n.SetLanguage("xx")
	if got := i18n.T("must_be_dict"); got != "value must be a dictionary" {
		t.Fatalf("unexpected template: %q", got)
	}
}

type upperTranslator struct{}

func (upperTranslator) Message(code string) string { return "CODE:" + code }

func TestSetTranslator(t *testing.T) {
	i18n.SetTranslator(upperTranslator{})
	defer i18n.SetTranslator(nil)
	if got := i18n.T("key_required"); got != "CODE:key_required" {
		t.Fatalf("custom translator not used: %q", got)
	}
}

func TestUnknownCodeFallsBackToCode(t *testing.T) {
	if got := i18n.T("no_such_code"); got != "no_such_code" {
		t.Fatalf("unexpected fallback: %q", got)
	}
}
