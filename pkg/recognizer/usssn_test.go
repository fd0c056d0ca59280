package recognizer

import "testing"

func TestUsSsn(t *testing.T) {
	r, err := NewUsSsn(Params{})
	if err != nil {
		t.Fatal(err)
	}

	matches, err := r.Analyze("ssn is 078-05-1120")
	if err != nil {
		t.Fatal(err)
	}
	if len(matches) == 0 {
		t.Fatal("expected match for dashed SSN")
	}

	// The medium pattern should be among the hits with its 0.5 score.
	var best float64
	for _, m := range matches {
		if m.Score > best {
			best = m.Score
		}
	}
	if best != 0.5 {
		t.Errorf("expected medium pattern score 0.5, got %v", best)
	}

	matches, err = r.Analyze("just words")
	if err != nil {
		t.Fatal(err)
	}
	if len(matches) != 0 {
		t.Errorf("unexpected match: %+v", matches)
	}
}
