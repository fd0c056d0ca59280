package recognizer

import "github.com/lexiguard/lexiguard/pkg/types"

func init() { register("CreditCardRecognizer", NewCreditCard) }

// NewCreditCard builds the built-in payment card number recognizer.
// The pattern is deliberately weak: card numbers overlap with many other
// numeric identifiers, so checksum and context scoring happen downstream.
func NewCreditCard(p Params) (*PatternRecognizer, error) {
	return newPredefined(p, Params{
		Name:   "CreditCardRecognizer",
		Entity: "CREDIT_CARD",
		Patterns: []types.Pattern{
			{
				Name:  "All Credit Cards (weak)",
				Regex: `\b((4\d{3})|(5[0-5]\d{2})|(6\d{3})|(1\d{3})|(3\d{3}))[- ]?(\d{3,4})[- ]?(\d{3,4})[- ]?(\d{3,5})\b`,
				Score: 0.3,
			},
		},
		Context: []string{
			"credit", "card", "visa", "mastercard", "cc",
			"amex", "discover", "jcb", "diners", "maestro", "instapayment",
		},
	})
}
