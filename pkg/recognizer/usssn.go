package recognizer

import "github.com/lexiguard/lexiguard/pkg/types"

func init() { register("UsSsnRecognizer", NewUsSsn) }

// NewUsSsn builds the built-in US social security number recognizer.
func NewUsSsn(p Params) (*PatternRecognizer, error) {
	return newPredefined(p, Params{
		Name:   "UsSsnRecognizer",
		Entity: "US_SSN",
		Patterns: []types.Pattern{
			{Name: "SSN (very weak)", Regex: `\b([0-9]{5})-([0-9]{4})\b`, Score: 0.05},
			{Name: "SSN (weak)", Regex: `\b[0-9]{9}\b`, Score: 0.3},
			{Name: "SSN (medium)", Regex: `\b([0-9]{3})-([0-9]{2})-([0-9]{4})\b`, Score: 0.5},
		},
		Context: []string{
			"social", "security", "ssn", "ssns", "ssn#", "ss#", "ssid",
		},
	})
}
