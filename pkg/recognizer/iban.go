package recognizer

import "github.com/lexiguard/lexiguard/pkg/types"

func init() { register("IbanRecognizer", NewIban) }

// NewIban builds the built-in IBAN recognizer. The pattern checks the
// country-prefix shape only; mod-97 checksum verification belongs to the
// scoring stage downstream.
func NewIban(p Params) (*PatternRecognizer, error) {
	return newPredefined(p, Params{
		Name:   "IbanRecognizer",
		Entity: "IBAN_CODE",
		Patterns: []types.Pattern{
			{
				Name:  "IBAN (medium)",
				Regex: `\b[A-Z]{2}[0-9]{2}(?:[ ]?[A-Z0-9]{4}){2,7}(?:[ ]?[A-Z0-9]{1,3})?\b`,
				Score: 0.5,
			},
		},
		Context: []string{"iban", "bank", "account", "transfer"},
	})
}
