package recognizer

import "testing"

func TestCreditCard(t *testing.T) {
	r, err := NewCreditCard(Params{})
	if err != nil {
		t.Fatal(err)
	}

	positives := []string{
		"4111-1111-1111-1111",
		"4012888888881881",
		"5500 0000 0000 0004",
		"3400 0000 0000 009",
	}
	for _, sample := range positives {
		matches, err := r.Analyze(sample)
		if err != nil {
			t.Fatal(err)
		}
		if len(matches) == 0 {
			t.Errorf("expected match for %q", sample)
		}
	}

	negatives := []string{
		"no numbers here",
		"799273982",
	}
	for _, sample := range negatives {
		matches, err := r.Analyze(sample)
		if err != nil {
			t.Fatal(err)
		}
		if len(matches) != 0 {
			t.Errorf("unexpected match for %q: %+v", sample, matches)
		}
	}
}
