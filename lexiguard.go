// Package lexiguard resolves declarative recognizer configuration into a
// runnable registry of PII detectors.
//
// A configuration document declares which recognizers exist, which
// languages each one covers, and the global matching flags. Recognizers
// are either predefined (resolved by name against the built-in library)
// or custom (constructed from inline regex patterns).
//
// # Basic Usage
//
// Load the packaged default registry:
//
//	reg, err := lexiguard.LoadRegistry("")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, rec := range reg.GetRecognizers("en") {
//	    fmt.Printf("%s detects %s\n", rec.Name(), rec.SupportedEntity())
//	}
//
// # Inline Configuration
//
// Build a registry from an inline configuration instead of a file:
//
//	reg, err := lexiguard.NewRegistry(lexiguard.RegistryConfig{
//	    SupportedLanguages: []string{"en", "es"},
//	    Recognizers: []lexiguard.RecognizerEntry{
//	        {
//	            Kind:     lexiguard.EntryStructured,
//	            Name:     "ZIP",
//	            Entity:   "ZIP",
//	            Patterns: []lexiguard.Pattern{{Name: "zip", Regex: `\d{5}`, Score: 0.1}},
//	        },
//	    },
//	})
package lexiguard

import (
	"github.com/lexiguard/lexiguard/pkg/registry"
	"github.com/lexiguard/lexiguard/pkg/types"
)

// Re-export commonly used types so callers can import just
// "github.com/lexiguard/lexiguard" without subpackages.
type (
	// Pattern is one weighted regular expression of a pattern recognizer.
	Pattern = types.Pattern

	// Recognizer identifies one entity kind within text for one language.
	Recognizer = types.Recognizer

	// Match is one entity occurrence reported by a recognizer.
	Match = types.Match

	// RegexFlags is the matching-engine flag bitset.
	RegexFlags = types.RegexFlags

	// Registry is the assembled recognizer registry.
	Registry = registry.Registry

	// RegistryConfig is the declarative registry configuration.
	RegistryConfig = registry.Config

	// RecognizerEntry is one recognizer declaration in a configuration.
	RecognizerEntry = registry.Entry
)

// Re-export flag constants and entry kinds.
const (
	FlagIgnoreCase    = types.FlagIgnoreCase
	FlagMultiline     = types.FlagMultiline
	FlagDotAll        = types.FlagDotAll
	DefaultRegexFlags = types.DefaultRegexFlags

	EntryBareName   = registry.EntryBareName
	EntryStructured = registry.EntryStructured
)

// ErrAmbiguousSource is returned when both a file path and an inline
// configuration are supplied.
var ErrAmbiguousSource = registry.ErrAmbiguousSource

// LoadRegistry builds a recognizer registry from a YAML configuration
// file. An empty path loads the packaged default configuration; a
// missing or malformed file falls back to it with a logged warning.
func LoadRegistry(path string) (*Registry, error) {
	var opts []registry.Option
	if path != "" {
		opts = append(opts, registry.WithConfigFile(path))
	}
	p, err := registry.NewProvider(opts...)
	if err != nil {
		return nil, err
	}
	return p.CreateRegistry()
}

// NewRegistry builds a recognizer registry from an inline configuration.
// Absent configuration keys are filled from the packaged defaults.
func NewRegistry(cfg RegistryConfig) (*Registry, error) {
	p, err := registry.NewProvider(registry.WithConfig(cfg))
	if err != nil {
		return nil, err
	}
	return p.CreateRegistry()
}
