package main

import (
	"context"
	"errors"
	"fmt"
)

const defaultBatchSize = 50

var errMissingAPIKey = errors.New("the openai provider requires an API key: use --api-key or set OPENAI_API_KEY")

// Translator is the translation capability the segmented translator is
// polymorphic over. TranslateSpans returns one translated string per input
// span; an empty result string means the caller keeps the original span.
type Translator interface {
	TranslateSpans(ctx context.Context, spans []string, sourceLang, targetLang string) ([]string, error)
	Name() string
}

func newTranslator(config *Config) (Translator, error) {
	switch config.provider {
	case "", "google":
		return NewGoogleTranslator(), nil
	case "openai":
		if config.apiKey == "" {
			return nil, errMissingAPIKey
		}
		return NewOpenAITranslator(config.apiKey, config.apiURL, config.modelName), nil
	default:
		return nil, fmt.Errorf("unknown provider %q: options are 'google' and 'openai'", config.provider)
	}
}
