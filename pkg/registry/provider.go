package registry

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/lexiguard/lexiguard/pkg/logging"
	"github.com/lexiguard/lexiguard/pkg/recognizer"
	"github.com/lexiguard/lexiguard/pkg/types"
)

// ErrAmbiguousSource is returned when both an inline configuration and a
// configuration file path are supplied to NewProvider.
var ErrAmbiguousSource = errors.New("either a configuration file or an inline configuration may be provided, not both")

// Fallbacks applied at registry creation if a key is somehow still
// unresolved after merging with the packaged defaults.
var defaultSupportedLanguages = []string{"en"}

// Provider resolves a registry configuration from its source, merges it
// with the packaged defaults, and assembles the recognizer registry.
// Each provider owns its configuration exclusively; resolution happens
// once, at construction.
type Provider struct {
	config Config
	logger zerolog.Logger
}

// Option configures a Provider.
type Option func(*providerOptions)

type providerOptions struct {
	confFile string
	inline   *Config
}

// WithConfigFile loads the registry configuration from a YAML file.
func WithConfigFile(path string) Option {
	return func(o *providerOptions) { o.confFile = path }
}

// WithConfig supplies the registry configuration inline.
func WithConfig(cfg Config) Option {
	return func(o *providerOptions) { o.inline = &cfg }
}

// NewProvider resolves the configuration source. Supplying both a file
// path and an inline configuration is a usage error, rejected before any
// file I/O. A missing or malformed file is not: the packaged default
// configuration takes over, with a logged warning.
func NewProvider(opts ...Option) (*Provider, error) {
	var o providerOptions
	for _, opt := range opts {
		opt(&o)
	}
	if o.confFile != "" && o.inline != nil {
		return nil, ErrAmbiguousSource
	}

	p := &Provider{logger: logging.GetLogger("registry.provider")}
	cfg, err := p.resolveConfiguration(o)
	if err != nil {
		return nil, err
	}
	p.config = cfg
	return p, nil
}

// Configuration returns the resolved configuration (post-merge).
func (p *Provider) Configuration() Config {
	return p.config
}

func (p *Provider) resolveConfiguration(o providerOptions) (Config, error) {
	var base Config
	if o.inline != nil {
		base = *o.inline
	}

	if o.confFile != "" {
		fileCfg, err := loadConfigFile(o.confFile)
		if err != nil {
			p.logger.Warn().
				Err(err).
				Str("path", o.confFile).
				Msg("configuration file unusable, using packaged defaults")
		} else {
			base = fileCfg
		}
	}

	defaults, err := loadPackagedDefaults()
	if err != nil {
		// The embedded document ships with the binary; failing to load it
		// is a build defect, not a runtime condition to absorb.
		return Config{}, fmt.Errorf("loading packaged default configuration: %w", err)
	}

	return p.mergeWithDefaults(base, defaults), nil
}

// mergeWithDefaults fills absent top-level keys from the packaged default
// document, key by key. The merge is shallow: a recognizer list present
// in the source replaces the default list wholesale. Each filled key is
// logged to aid debugging.
func (p *Provider) mergeWithDefaults(cfg, defaults Config) Config {
	if cfg.SupportedLanguages == nil {
		p.logger.Warn().
			Strs("default", defaults.SupportedLanguages).
			Msg("supported_languages not present in configuration, using default")
		cfg.SupportedLanguages = defaults.SupportedLanguages
	}
	if cfg.Recognizers == nil {
		p.logger.Warn().
			Int("count", len(defaults.Recognizers)).
			Msg("recognizers not present in configuration, using default")
		cfg.Recognizers = defaults.Recognizers
	}
	if cfg.GlobalRegexFlags == nil {
		p.logger.Warn().
			Str("default", types.DefaultRegexFlags.String()).
			Msg("global_regex_flags not present in configuration, using default")
		cfg.GlobalRegexFlags = defaults.GlobalRegexFlags
	}
	return cfg
}

// CreateRegistry assembles the recognizer registry from the resolved
// configuration: classify entries, expand language scopes, construct
// instances, then overwrite every pattern-based instance's flag bitset
// with the registry-wide one.
func (p *Provider) CreateRegistry() (*Registry, error) {
	languages := p.config.SupportedLanguages
	if languages == nil {
		languages = defaultSupportedLanguages
	}
	flags := types.DefaultRegexFlags
	if p.config.GlobalRegexFlags != nil {
		flags = *p.config.GlobalRegexFlags
	}

	predefined, custom := splitRecognizers(p.config.Recognizers)

	var instances []types.Recognizer
	for _, e := range predefined {
		built, err := p.buildPredefined(e, languages)
		if err != nil {
			return nil, err
		}
		instances = append(instances, built...)
	}
	for _, e := range custom {
		built, err := p.buildCustom(e, languages)
		if err != nil {
			return nil, err
		}
		instances = append(instances, built...)
	}

	for _, inst := range instances {
		if pr, ok := inst.(*recognizer.PatternRecognizer); ok {
			if err := pr.SetGlobalRegexFlags(flags); err != nil {
				return nil, fmt.Errorf("applying global regex flags to %s: %w", pr.Name(), err)
			}
		}
	}

	return &Registry{
		recognizers:        instances,
		supportedLanguages: languages,
		globalRegexFlags:   flags,
	}, nil
}
