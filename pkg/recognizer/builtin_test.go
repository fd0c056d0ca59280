package recognizer

import (
	"sort"
	"testing"
)

func TestLookup(t *testing.T) {
	factory, ok := Lookup("CreditCardRecognizer")
	if !ok {
		t.Fatal("CreditCardRecognizer should be registered")
	}
	r, err := factory(Params{Language: "de"})
	if err != nil {
		t.Fatalf("factory failed: %v", err)
	}
	if r.SupportedEntity() != "CREDIT_CARD" {
		t.Errorf("entity: %s", r.SupportedEntity())
	}
	if r.SupportedLanguage() != "de" {
		t.Errorf("language override not applied: %s", r.SupportedLanguage())
	}
	if r.Name() != "CreditCardRecognizer" {
		t.Errorf("predefined recognizers keep their registered name, got %s", r.Name())
	}
}

func TestLookup_Miss(t *testing.T) {
	if _, ok := Lookup("NoSuchRecognizer"); ok {
		t.Error("unknown name should miss")
	}
}

func TestBuiltinNames(t *testing.T) {
	names := BuiltinNames()
	if len(names) < 10 {
		t.Errorf("expected the full builtin library, got %d names", len(names))
	}
	if !sort.StringsAreSorted(names) {
		t.Error("names should be sorted")
	}

	for _, want := range []string{
		"CreditCardRecognizer", "EmailRecognizer", "IpRecognizer",
		"PhoneRecognizer", "UrlRecognizer", "UsSsnRecognizer",
	} {
		found := false
		for _, name := range names {
			if name == want {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("missing builtin %s", want)
		}
	}
}

func TestBuiltins_AllConstructWithDefaults(t *testing.T) {
	for _, name := range BuiltinNames() {
		factory, _ := Lookup(name)
		r, err := factory(Params{})
		if err != nil {
			t.Errorf("%s: default construction failed: %v", name, err)
			continue
		}
		if r.SupportedEntity() == "" {
			t.Errorf("%s: no entity", name)
		}
		if len(r.Patterns()) == 0 {
			t.Errorf("%s: no patterns", name)
		}
		if len(r.Context()) == 0 {
			t.Errorf("%s: no context words", name)
		}
	}
}

func TestPredefined_ContextOverride(t *testing.T) {
	factory, _ := Lookup("EmailRecognizer")
	r, err := factory(Params{Context: []string{"correo"}})
	if err != nil {
		t.Fatal(err)
	}
	if len(r.Context()) != 1 || r.Context()[0] != "correo" {
		t.Errorf("context override not applied: %v", r.Context())
	}
}
