package recognizer

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/dlclark/regexp2"

	"github.com/lexiguard/lexiguard/pkg/types"
)

// matchTimeout bounds backtracking on pathological inputs.
const matchTimeout = 5 * time.Second

// PatternRecognizer flags occurrences of one entity kind in one language
// using a set of weighted regular expressions.
type PatternRecognizer struct {
	name     string
	entity   string
	language string
	context  []string
	patterns []types.Pattern
	flags    types.RegexFlags
	compiled []*regexp2.Regexp
}

// Params is the allow-listed parameter set for recognizer construction.
// For predefined recognizers, zero fields fall back to the recognizer's
// own defaults.
type Params struct {
	Name     string
	Entity   string
	Language string
	Context  []string
	Patterns []types.Pattern
	DenyList []string
	Flags    types.RegexFlags
}

// NewPattern builds a pattern recognizer. An entity identifier and at
// least one pattern (or deny-list word) are required; a deny list
// compiles to a single exact-word alternation pattern with score 1.0.
func NewPattern(p Params) (*PatternRecognizer, error) {
	name := p.Name
	if name == "" {
		name = p.Entity
	}
	if p.Entity == "" {
		return nil, fmt.Errorf("recognizer %q: supported entity is required", name)
	}
	patterns := p.Patterns
	if len(p.DenyList) > 0 {
		patterns = append(patterns, denyListPattern(p.DenyList))
	}
	if len(patterns) == 0 {
		return nil, fmt.Errorf("recognizer %q: at least one pattern is required", name)
	}
	flags := p.Flags
	if flags == 0 {
		flags = types.DefaultRegexFlags
	}
	language := p.Language
	if language == "" {
		language = "en"
	}

	r := &PatternRecognizer{
		name:     name,
		entity:   p.Entity,
		language: language,
		context:  p.Context,
		patterns: patterns,
		flags:    flags,
	}
	if err := r.compile(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *PatternRecognizer) Name() string              { return r.name }
func (r *PatternRecognizer) SupportedEntity() string   { return r.entity }
func (r *PatternRecognizer) SupportedLanguage() string { return r.language }
func (r *PatternRecognizer) Context() []string         { return r.context }
func (r *PatternRecognizer) Patterns() []types.Pattern { return r.patterns }
func (r *PatternRecognizer) RegexFlags() types.RegexFlags {
	return r.flags
}

// SetGlobalRegexFlags replaces the recognizer's flag bitset with the
// registry-wide one and recompiles all patterns under it.
func (r *PatternRecognizer) SetGlobalRegexFlags(flags types.RegexFlags) error {
	r.flags = flags
	return r.compile()
}

// Analyze reports every pattern hit in text, one match per occurrence,
// carrying the matching pattern's score.
func (r *PatternRecognizer) Analyze(text string) ([]types.Match, error) {
	var results []types.Match
	for i, re := range r.compiled {
		m, err := re.FindStringMatch(text)
		if err != nil {
			return nil, fmt.Errorf("recognizer %s: matching pattern %q: %w", r.name, r.patterns[i].Name, err)
		}
		for m != nil {
			results = append(results, types.Match{
				Entity:  r.entity,
				Start:   m.Index,
				End:     m.Index + m.Length,
				Score:   r.patterns[i].Score,
				Pattern: r.patterns[i].Name,
			})
			m, err = re.FindNextMatch(m)
			if err != nil {
				return nil, fmt.Errorf("recognizer %s: matching pattern %q: %w", r.name, r.patterns[i].Name, err)
			}
		}
	}
	return results, nil
}

func (r *PatternRecognizer) compile() error {
	compiled := make([]*regexp2.Regexp, 0, len(r.patterns))
	for _, p := range r.patterns {
		// Try RE2 mode first (no backtracking); fall back to the default
		// Perl-compatible mode for patterns RE2 cannot express.
		re, err := regexp2.Compile(p.Regex, regexp2.RE2|r.flags.Options())
		if err != nil {
			re, err = regexp2.Compile(p.Regex, r.flags.Options())
			if err != nil {
				return fmt.Errorf("recognizer %s: compiling pattern %q: %w", r.name, p.Name, err)
			}
		}
		re.MatchTimeout = matchTimeout
		compiled = append(compiled, re)
	}
	r.compiled = compiled
	return nil
}

func denyListPattern(words []string) types.Pattern {
	escaped := make([]string, len(words))
	for i, w := range words {
		escaped[i] = regexp.QuoteMeta(w)
	}
	// Lookarounds instead of \b: deny-list words may end in punctuation
	// ("Dr."), which word boundaries do not delimit.
	return types.Pattern{
		Name:  "deny_list",
		Regex: `(?:^|(?<=\W))(` + strings.Join(escaped, "|") + `)(?:(?=\W)|$)`,
		Score: 1.0,
	}
}
