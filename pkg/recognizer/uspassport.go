package recognizer

import "github.com/lexiguard/lexiguard/pkg/types"

func init() { register("UsPassportRecognizer", NewUsPassport) }

// NewUsPassport builds the built-in US passport number recognizer.
func NewUsPassport(p Params) (*PatternRecognizer, error) {
	return newPredefined(p, Params{
		Name:   "UsPassportRecognizer",
		Entity: "US_PASSPORT",
		Patterns: []types.Pattern{
			{Name: "Passport (very weak)", Regex: `\b[0-9]{9}\b`, Score: 0.05},
			{Name: "Passport (next gen, very weak)", Regex: `\b[A-Za-z][0-9]{8}\b`, Score: 0.1},
		},
		Context: []string{
			"us", "united", "states", "passport", "passport#", "travel", "document",
		},
	})
}
