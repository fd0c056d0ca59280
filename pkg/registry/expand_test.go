package registry

import (
	"reflect"
	"testing"
)

func TestExpandScopes_BareName(t *testing.T) {
	e := Entry{Kind: EntryBareName, Name: "CreditCardRecognizer"}
	scopes := expandScopes(e, []string{"en", "es"})

	want := []Scope{{Language: "en"}, {Language: "es"}}
	if !reflect.DeepEqual(scopes, want) {
		t.Errorf("expected %v, got %v", want, scopes)
	}
}

func TestExpandScopes_NoLanguagesCarriesEntryContext(t *testing.T) {
	e := Entry{
		Kind:    EntryStructured,
		Name:    "ZIP",
		Context: []string{"zip", "code"},
	}
	scopes := expandScopes(e, []string{"en", "de"})

	if len(scopes) != 2 {
		t.Fatalf("expected 2 scopes, got %d", len(scopes))
	}
	for _, s := range scopes {
		if !reflect.DeepEqual(s.Context, []string{"zip", "code"}) {
			t.Errorf("scope %s: expected entry context carried, got %v", s.Language, s.Context)
		}
	}
}

func TestExpandScopes_PlainListDropsContext(t *testing.T) {
	e := Entry{
		Kind:      EntryStructured,
		Name:      "ZIP",
		Context:   []string{"zip"},
		Languages: LanguageList{Kind: LanguagesPlain, Plain: []string{"es", "fr"}},
	}
	scopes := expandScopes(e, []string{"en"})

	want := []Scope{{Language: "es"}, {Language: "fr"}}
	if !reflect.DeepEqual(scopes, want) {
		t.Errorf("plain list must ignore registry languages and entry context: got %v", scopes)
	}
}

func TestExpandScopes_ScopedListPreserved(t *testing.T) {
	scoped := []Scope{
		{Language: "en", Context: []string{"a"}},
		{Language: "de", Context: nil},
	}
	e := Entry{
		Kind:      EntryStructured,
		Name:      "ZIP",
		Languages: LanguageList{Kind: LanguagesScoped, Scoped: scoped},
	}
	scopes := expandScopes(e, []string{"fr"})

	if !reflect.DeepEqual(scopes, scoped) {
		t.Errorf("scoped list must pass through unchanged: got %v", scopes)
	}
}
