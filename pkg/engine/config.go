package engine

import (
	"github.com/lexiguard/lexiguard/pkg/registry"
)

// Config is the top-level analyzer engine configuration document. It
// nests the recognizer registry configuration alongside NLP engine
// settings and engine-wide defaults; this package only assembles the
// pieces and adds nothing of its own.
type Config struct {
	SupportedLanguages    []string         `yaml:"supported_languages"`
	DefaultScoreThreshold float64          `yaml:"default_score_threshold"`
	RecognizerRegistry    *registry.Config `yaml:"recognizer_registry"`
	NLPConfiguration      *NLPConfig       `yaml:"nlp_configuration"`
}

// NLPConfig is handed through untouched to the NLP subsystem.
type NLPConfig struct {
	EngineName string     `yaml:"nlp_engine_name"`
	Models     []NLPModel `yaml:"models"`
}

// NLPModel names the model serving one language.
type NLPModel struct {
	LangCode  string `yaml:"lang_code"`
	ModelName string `yaml:"model_name"`
}
