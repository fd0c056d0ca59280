package recognizer

import "github.com/lexiguard/lexiguard/pkg/types"

func init() { register("CryptoRecognizer", NewCrypto) }

// NewCrypto builds the built-in crypto wallet address recognizer
// (Bitcoin P2PKH/P2SH base58 addresses).
func NewCrypto(p Params) (*PatternRecognizer, error) {
	return newPredefined(p, Params{
		Name:   "CryptoRecognizer",
		Entity: "CRYPTO",
		Patterns: []types.Pattern{
			{Name: "Crypto (Medium)", Regex: `\b[13][a-km-zA-HJ-NP-Z1-9]{25,34}\b`, Score: 0.5},
		},
		Context: []string{"wallet", "btc", "bitcoin", "crypto"},
	})
}
