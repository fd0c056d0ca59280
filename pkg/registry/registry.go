package registry

import (
	"slices"

	"github.com/lexiguard/lexiguard/pkg/types"
)

// Registry is the assembled, ordered set of recognizer instances plus the
// registry-wide settings the detection engine consumes. It owns its
// instances exclusively and is immutable after assembly.
type Registry struct {
	recognizers        []types.Recognizer
	supportedLanguages []string
	globalRegexFlags   types.RegexFlags
}

// Recognizers returns the ordered recognizer instances. Instances built
// from predefined entries precede those built from custom entries;
// declaration order is preserved within each group.
func (r *Registry) Recognizers() []types.Recognizer {
	return slices.Clone(r.recognizers)
}

// SupportedLanguages returns the registry-wide language list.
func (r *Registry) SupportedLanguages() []string {
	return slices.Clone(r.supportedLanguages)
}

// GlobalRegexFlags returns the flag bitset already applied to every
// pattern-based instance. Informational: the authoritative copy lives on
// each recognizer.
func (r *Registry) GlobalRegexFlags() types.RegexFlags {
	return r.globalRegexFlags
}

// Len returns the number of recognizer instances.
func (r *Registry) Len() int {
	return len(r.recognizers)
}

// GetRecognizers returns the recognizers bound to the given language,
// optionally filtered to the given entity kinds.
func (r *Registry) GetRecognizers(language string, entities ...string) []types.Recognizer {
	var out []types.Recognizer
	for _, rec := range r.recognizers {
		if rec.SupportedLanguage() != language {
			continue
		}
		if len(entities) > 0 && !slices.Contains(entities, rec.SupportedEntity()) {
			continue
		}
		out = append(out, rec)
	}
	return out
}
