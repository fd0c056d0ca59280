package recognizer

import "github.com/lexiguard/lexiguard/pkg/types"

func init() { register("UsItinRecognizer", NewUsItin) }

// NewUsItin builds the built-in US individual taxpayer identification
// number recognizer. ITINs start with 9 and have a 7x or 8x group in the
// middle.
func NewUsItin(p Params) (*PatternRecognizer, error) {
	return newPredefined(p, Params{
		Name:   "UsItinRecognizer",
		Entity: "US_ITIN",
		Patterns: []types.Pattern{
			{Name: "ITIN (very weak)", Regex: `\b9\d{2}[- ](7\d|8[0-8])\d{5}\b`, Score: 0.05},
			{Name: "ITIN (weak)", Regex: `\b9\d{2}(7\d|8[0-8])\d{4}\b`, Score: 0.3},
			{Name: "ITIN (medium)", Regex: `\b9\d{2}[- ](7\d|8[0-8])[- ]\d{4}\b`, Score: 0.5},
		},
		Context: []string{"individual", "taxpayer", "itin", "tax", "payer"},
	})
}
