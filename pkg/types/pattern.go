package types

// Pattern is one weighted regular expression a pattern recognizer matches.
// Score is the confidence assigned to a hit, typically in [0,1].
type Pattern struct {
	Name  string  `yaml:"name" json:"name"`
	Regex string  `yaml:"regex" json:"regex"`
	Score float64 `yaml:"score" json:"score"`
}
