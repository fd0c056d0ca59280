package recognizer

import "github.com/lexiguard/lexiguard/pkg/types"

func init() { register("IpRecognizer", NewIP) }

// NewIP builds the built-in IP address recognizer. Covers dotted-quad
// IPv4 and full-form IPv6; compressed IPv6 forms score lower because the
// pattern also matches things like MAC address fragments.
func NewIP(p Params) (*PatternRecognizer, error) {
	return newPredefined(p, Params{
		Name:   "IpRecognizer",
		Entity: "IP_ADDRESS",
		Patterns: []types.Pattern{
			{
				Name:  "IPv4",
				Regex: `\b(?:(?:25[0-5]|2[0-4][0-9]|[01]?[0-9][0-9]?)\.){3}(?:25[0-5]|2[0-4][0-9]|[01]?[0-9][0-9]?)\b`,
				Score: 0.6,
			},
			{
				Name:  "IPv6",
				Regex: `\b([0-9a-fA-F]{1,4}:){7}[0-9a-fA-F]{1,4}\b`,
				Score: 0.6,
			},
			{
				Name:  "IPv6 (compressed)",
				Regex: `\b(([0-9a-fA-F]{1,4}:){1,6}:([0-9a-fA-F]{1,4}:){0,4}[0-9a-fA-F]{1,4})\b`,
				Score: 0.1,
			},
		},
		Context: []string{"ip", "ipv4", "ipv6", "address"},
	})
}
