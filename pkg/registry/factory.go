package registry

import (
	"fmt"

	"github.com/lexiguard/lexiguard/pkg/recognizer"
	"github.com/lexiguard/lexiguard/pkg/types"
)

// buildPredefined instantiates one predefined entry across its resolved
// language scopes. An unknown name contributes zero instances with a
// warning: name availability is build-dependent, so a miss is not an
// error. Construction failures (bad override parameters) do surface.
func (p *Provider) buildPredefined(e Entry, supportedLanguages []string) ([]types.Recognizer, error) {
	if e.Disabled {
		return nil, nil
	}
	factory, ok := recognizer.Lookup(e.Name)
	if !ok {
		p.logger.Warn().
			Str("name", e.Name).
			Msg("no predefined recognizer registered under this name, skipping")
		return nil, nil
	}

	var instances []types.Recognizer
	for _, scope := range expandScopes(e, supportedLanguages) {
		inst, err := factory(recognizer.Params{
			Entity:   e.Entity,
			Language: scope.Language,
			Context:  scope.Context,
			Patterns: e.Patterns,
			DenyList: e.DenyList,
		})
		if err != nil {
			return nil, fmt.Errorf("predefined recognizer %s: %w", e.Name, err)
		}
		instances = append(instances, inst)
	}
	return instances, nil
}

// buildCustom instantiates one custom entry. A legacy entry carrying the
// singular supported_language yields exactly one instance and bypasses
// language expansion; otherwise one instance is built per resolved scope.
// Missing patterns or entity identifier is a construction error.
func (p *Provider) buildCustom(e Entry, supportedLanguages []string) ([]types.Recognizer, error) {
	if e.Disabled {
		return nil, nil
	}

	if e.Language != "" {
		inst, err := recognizer.NewPattern(recognizer.Params{
			Name:     e.Name,
			Entity:   e.Entity,
			Language: e.Language,
			Context:  e.Context,
			Patterns: e.Patterns,
			DenyList: e.DenyList,
		})
		if err != nil {
			return nil, fmt.Errorf("custom recognizer %s: %w", e.Name, err)
		}
		return []types.Recognizer{inst}, nil
	}

	var instances []types.Recognizer
	for _, scope := range expandScopes(e, supportedLanguages) {
		inst, err := recognizer.NewPattern(recognizer.Params{
			Name:     e.Name,
			Entity:   e.Entity,
			Language: scope.Language,
			Context:  scope.Context,
			Patterns: e.Patterns,
			DenyList: e.DenyList,
		})
		if err != nil {
			return nil, fmt.Errorf("custom recognizer %s: %w", e.Name, err)
		}
		instances = append(instances, inst)
	}
	return instances, nil
}
