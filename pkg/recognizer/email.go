package recognizer

import "github.com/lexiguard/lexiguard/pkg/types"

func init() { register("EmailRecognizer", NewEmail) }

// NewEmail builds the built-in email address recognizer.
func NewEmail(p Params) (*PatternRecognizer, error) {
	return newPredefined(p, Params{
		Name:   "EmailRecognizer",
		Entity: "EMAIL_ADDRESS",
		Patterns: []types.Pattern{
			{
				Name:  "Email (Medium)",
				Regex: "\\b((([!#$%&'*+\\-/=?^_`{|}~\\w])|([!#$%&'*+\\-/=?^_`{|}~\\w][!#$%&'*+\\-/=?^_`{|}~\\.\\w]{0,}[!#$%&'*+\\-/=?^_`{|}~\\w]))[@]\\w+([-.]\\w+)*\\.\\w+([-.]\\w+)*)\\b",
				Score: 0.5,
			},
		},
		Context: []string{"email", "mail", "e-mail"},
	})
}
