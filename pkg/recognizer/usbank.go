package recognizer

import "github.com/lexiguard/lexiguard/pkg/types"

func init() { register("UsBankRecognizer", NewUsBank) }

// NewUsBank builds the built-in US bank account number recognizer.
// Account numbers are 8-17 plain digits, so the score is very weak and
// context words carry most of the signal.
func NewUsBank(p Params) (*PatternRecognizer, error) {
	return newPredefined(p, Params{
		Name:   "UsBankRecognizer",
		Entity: "US_BANK_NUMBER",
		Patterns: []types.Pattern{
			{Name: "Bank Account (weak)", Regex: `\b[0-9]{8,17}\b`, Score: 0.05},
		},
		Context: []string{
			"bank", "account", "checking", "savings", "debit", "routing",
		},
	})
}
