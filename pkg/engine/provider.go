package engine

import (
	"os"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/lexiguard/lexiguard/pkg/logging"
	"github.com/lexiguard/lexiguard/pkg/registry"
)

// Provider loads an analyzer engine configuration document and assembles
// the settings a detection engine starts from. A missing or unreadable
// document is not an error; every section defaults independently.
type Provider struct {
	config Config
	logger zerolog.Logger
}

// Settings is the assembled engine configuration.
type Settings struct {
	Registry              *registry.Registry
	SupportedLanguages    []string
	DefaultScoreThreshold float64
	NLP                   *NLPConfig
}

// NewProvider reads the configuration document at path. An empty path or
// unusable file leaves the provider on defaults with a logged warning.
func NewProvider(path string) *Provider {
	p := &Provider{logger: logging.GetLogger("engine.provider")}

	if path == "" {
		p.logger.Warn().Msg("no engine configuration file given, using defaults")
		return p
	}
	data, err := os.ReadFile(path)
	if err != nil {
		p.logger.Warn().Err(err).Str("path", path).Msg("engine configuration unreadable, using defaults")
		return p
	}
	if err := yaml.Unmarshal(data, &p.config); err != nil {
		p.logger.Warn().Err(err).Str("path", path).Msg("engine configuration unparseable, using defaults")
		p.config = Config{}
	}
	return p
}

// Configuration returns the loaded configuration document.
func (p *Provider) Configuration() Config {
	return p.config
}

// Settings assembles the engine settings: the recognizer registry is
// resolved through its own provider (inheriting its defaulting), the
// language list falls back to the registry's, and the NLP section passes
// through untouched.
func (p *Provider) Settings() (*Settings, error) {
	var opts []registry.Option
	if p.config.RecognizerRegistry != nil {
		opts = append(opts, registry.WithConfig(*p.config.RecognizerRegistry))
	} else {
		p.logger.Warn().Msg("configuration has no recognizer_registry section, using registry defaults")
	}

	provider, err := registry.NewProvider(opts...)
	if err != nil {
		return nil, err
	}
	reg, err := provider.CreateRegistry()
	if err != nil {
		return nil, err
	}

	languages := p.config.SupportedLanguages
	if len(languages) == 0 {
		languages = reg.SupportedLanguages()
	}

	return &Settings{
		Registry:              reg,
		SupportedLanguages:    languages,
		DefaultScoreThreshold: p.config.DefaultScoreThreshold,
		NLP:                   p.config.NLPConfiguration,
	}, nil
}
