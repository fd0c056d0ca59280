package recognizer

import "github.com/lexiguard/lexiguard/pkg/types"

func init() { register("UrlRecognizer", NewURL) }

// NewURL builds the built-in URL recognizer.
func NewURL(p Params) (*PatternRecognizer, error) {
	return newPredefined(p, Params{
		Name:   "UrlRecognizer",
		Entity: "URL",
		Patterns: []types.Pattern{
			{
				Name:  "URL (with scheme)",
				Regex: `\bhttps?://[-\w@:%.+~#=]{1,256}\.[a-z]{2,24}\b[-\w()@:%+.~#?&/=]*`,
				Score: 0.6,
			},
			{
				Name:  "URL (without scheme)",
				Regex: `\b(www\.)?[-\w@:%.+~#=]{1,256}\.[a-z]{2,24}\b[-\w()@:%+.~#?&/=]*`,
				Score: 0.5,
			},
		},
		Context: []string{"url", "website", "link"},
	})
}
