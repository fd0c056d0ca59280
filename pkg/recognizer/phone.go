package recognizer

import "github.com/lexiguard/lexiguard/pkg/types"

func init() { register("PhoneRecognizer", NewPhone) }

// NewPhone builds the built-in phone number recognizer, covering common
// North American and E.164-style international shapes.
func NewPhone(p Params) (*PatternRecognizer, error) {
	return newPredefined(p, Params{
		Name:   "PhoneRecognizer",
		Entity: "PHONE_NUMBER",
		Patterns: []types.Pattern{
			{
				Name:  "Phone (US)",
				Regex: `(\+?1[-. ]?)?(\(\d{3}\)|\d{3})[-. ]?\d{3}[-. ]?\d{4}\b`,
				Score: 0.4,
			},
			{
				Name:  "Phone (international)",
				Regex: `\+\d{1,3}[-. ]?\d{1,4}([-. ]?\d{2,4}){2,3}\b`,
				Score: 0.4,
			},
		},
		Context: []string{"phone", "number", "telephone", "cell", "mobile", "call"},
	})
}
