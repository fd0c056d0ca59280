package registry

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lexiguard/lexiguard/pkg/logging"
	"github.com/lexiguard/lexiguard/pkg/types"
)

var cfgLog = logging.GetLogger("registry.config")

// Config is the declarative recognizer registry configuration. A nil
// slice or nil flags pointer means the key was absent from the source and
// should be filled from the packaged defaults; an empty non-nil slice is
// an explicit empty value and is kept as-is.
type Config struct {
	SupportedLanguages []string          `yaml:"supported_languages"`
	Recognizers        []Entry           `yaml:"recognizers"`
	GlobalRegexFlags   *types.RegexFlags `yaml:"global_regex_flags"`
}

// EntryKind discriminates the recognizer entry shapes accepted in
// configuration.
type EntryKind int

const (
	// EntryStructured is a mapping entry with explicit fields. It is the
	// zero value so entries built in code default to the structured form.
	EntryStructured EntryKind = iota
	// EntryBareName is a plain string entry: use the predefined
	// recognizer of that name with its defaults.
	EntryBareName
)

// Entry is one recognizer declaration. The shape variants of the original
// configuration formats are decided once at parse time: a bare string, a
// structured mapping with the legacy singular supported_language, or a
// structured mapping with a plain or scoped supported_languages list.
type Entry struct {
	Kind      EntryKind
	Name      string
	Type      string // "predefined", "custom", or empty (meaning custom)
	Disabled  bool   // inverted from the "enabled" key so the zero value means enabled
	Language  string // legacy singular supported_language
	Languages LanguageList
	Context   []string
	Entity    string
	Patterns  []types.Pattern
	DenyList  []string
}

// LanguageListKind discriminates the supported_languages shapes.
type LanguageListKind int

const (
	// LanguagesAbsent: no supported_languages field; the entry fans out
	// over the registry-wide supported languages.
	LanguagesAbsent LanguageListKind = iota
	// LanguagesPlain: a sequence of language codes.
	LanguagesPlain
	// LanguagesScoped: a sequence of {language, context} mappings.
	LanguagesScoped
)

// LanguageList is the parsed supported_languages field of an entry.
type LanguageList struct {
	Kind   LanguageListKind
	Plain  []string
	Scoped []Scope
}

// Scope binds one recognizer instance to a language and the context
// keywords it should be constructed with.
type Scope struct {
	Language string   `yaml:"language"`
	Context  []string `yaml:"context"`
}

// UnmarshalYAML accepts a bare recognizer name or a structured mapping.
// Unrecognized mapping fields are warned about individually and dropped
// rather than forwarded, keeping the schema checkable.
func (e *Entry) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		var name string
		if err := node.Decode(&name); err != nil {
			return err
		}
		if name == "" {
			return fmt.Errorf("recognizer entry name is empty (line %d)", node.Line)
		}
		e.Kind = EntryBareName
		e.Name = name
		return nil
	}

	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("recognizer entry must be a name or a mapping (line %d)", node.Line)
	}
	e.Kind = EntryStructured

	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i].Value
		val := node.Content[i+1]

		var err error
		switch key {
		case "name":
			err = val.Decode(&e.Name)
		case "type":
			err = val.Decode(&e.Type)
		case "enabled":
			var enabled bool
			if err = val.Decode(&enabled); err == nil {
				e.Disabled = !enabled
			}
		case "supported_language":
			err = val.Decode(&e.Language)
		case "supported_languages":
			err = e.Languages.UnmarshalYAML(val)
		case "context":
			err = val.Decode(&e.Context)
		case "supported_entity":
			err = val.Decode(&e.Entity)
		case "patterns":
			err = val.Decode(&e.Patterns)
		case "deny_list":
			err = val.Decode(&e.DenyList)
		default:
			cfgLog.Warn().
				Str("recognizer", e.Name).
				Str("field", key).
				Int("line", node.Content[i].Line).
				Msg("unrecognized recognizer entry field, ignoring")
		}
		if err != nil {
			return fmt.Errorf("recognizer entry field %q (line %d): %w", key, val.Line, err)
		}
	}

	if e.Name == "" {
		return fmt.Errorf("recognizer entry is missing a name (line %d)", node.Line)
	}
	return nil
}

// UnmarshalYAML decides the list shape from the first element: scalars
// make a plain code list, mappings a scoped list. Shapes are never mixed
// within one entry.
func (l *LanguageList) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.SequenceNode {
		return fmt.Errorf("supported_languages must be a sequence (line %d)", node.Line)
	}
	if len(node.Content) == 0 {
		l.Kind = LanguagesPlain
		return nil
	}
	if node.Content[0].Kind == yaml.ScalarNode {
		l.Kind = LanguagesPlain
		return node.Decode(&l.Plain)
	}
	l.Kind = LanguagesScoped
	return node.Decode(&l.Scoped)
}

func loadConfigFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	return cfg, nil
}

func loadPackagedDefaults() (Config, error) {
	data, err := defaultConfigFS.ReadFile(defaultConfigPath)
	if err != nil {
		return Config{}, fmt.Errorf("reading packaged configuration: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing packaged configuration: %w", err)
	}
	return cfg, nil
}
