package recognizer

import "testing"

func TestIP(t *testing.T) {
	r, err := NewIP(Params{})
	if err != nil {
		t.Fatal(err)
	}

	for _, sample := range []string{
		"host is 192.168.0.1",
		"public 8.8.8.8 dns",
		"fe80:0000:0000:0000:0202:b3ff:fe1e:8329",
	} {
		matches, err := r.Analyze(sample)
		if err != nil {
			t.Fatal(err)
		}
		if len(matches) == 0 {
			t.Errorf("expected match for %q", sample)
		}
	}

	for _, sample := range []string{
		"999.999.999.999",
		"version 1.2",
	} {
		matches, err := r.Analyze(sample)
		if err != nil {
			t.Fatal(err)
		}
		if len(matches) != 0 {
			t.Errorf("unexpected match for %q: %+v", sample, matches)
		}
	}
}
