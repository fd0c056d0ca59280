package types

// Recognizer identifies one entity kind within text for one language.
// Every instance is bound to exactly one language; multi-language
// configuration entries expand into one instance per language before
// construction.
type Recognizer interface {
	Name() string
	SupportedEntity() string
	SupportedLanguage() string
	Context() []string
}

// Match is one entity occurrence reported by a recognizer.
type Match struct {
	Entity  string  `json:"entity"`
	Start   int     `json:"start"`
	End     int     `json:"end"`
	Score   float64 `json:"score"`
	Pattern string  `json:"pattern"` // name of the pattern that matched
}
