package recognizer

import "testing"

func TestEmail(t *testing.T) {
	r, err := NewEmail(Params{})
	if err != nil {
		t.Fatal(err)
	}

	for _, sample := range []string{
		"info@example.com",
		"reach me at first.last@sub.example.co.uk today",
		"weird+tag@example.io",
	} {
		matches, err := r.Analyze(sample)
		if err != nil {
			t.Fatal(err)
		}
		if len(matches) == 0 {
			t.Errorf("expected match for %q", sample)
			continue
		}
		if matches[0].Entity != "EMAIL_ADDRESS" {
			t.Errorf("entity: %s", matches[0].Entity)
		}
	}

	for _, sample := range []string{
		"no email here",
		"not@valid",
	} {
		matches, err := r.Analyze(sample)
		if err != nil {
			t.Fatal(err)
		}
		if len(matches) != 0 {
			t.Errorf("unexpected match for %q", sample)
		}
	}
}
