package config

import (
	"errors"
	"os"

	"github.com/shivayapandey/invoice/pkg/classifier"
	"github.com/shivayapandey/invoice/pkg/classifier/llm"
	"github.com/shivayapandey/invoice/pkg/limiter"
	"github.com/shivayapandey/invoice/pkg/otel"
	"github.com/shivayapandey/invoice/pkg/provider"
	"github.com/shivayapandey/invoice/pkg/provider/anthropic"
	"github.com/shivayapandey/invoice/pkg/provider/google"
	"github.com/shivayapandey/invoice/pkg/provider/openai"
)

const groqURL = "https://api.groq.com/openai/v1"

func (cfg *Config) Classifier() classifier.Provider {
	return cfg.classifier
}

type classifierConfig struct {
	Type string `yaml:"type"`

	URL   string `yaml:"url"`
	Model string `yaml:"model"`
	Token string `yaml:"token"`

	Limit *int `yaml:"limit"`
}

func (cfg *Config) registerClassifier(f *configFile) error {
	config := f.Classifier

	if config == nil {
		config = &classifierConfig{
			Type: "groq",
		}
	}

	completer, err := createCompleter(*config)

	if err != nil {
		return err
	}

	if config.Limit != nil {
		completer = limiter.NewCompleter(createLimiter(config.Limit), completer)
	}

	completer = otel.NewCompleter(config.Type, config.Model, completer)

	c, err := llm.New(completer)

	if err != nil {
		return err
	}

	cfg.classifier = otel.NewClassifier(config.Type, config.Model, c)

	return nil
}

func createCompleter(config classifierConfig) (provider.Completer, error) {
	switch config.Type {
	case "groq":
		token, err := resolveToken(config.Token, "GROQ_API_KEY")

		if err != nil {
			return nil, err
		}

		model := config.Model

		if model == "" {
			model = "llama-3.3-70b-versatile"
		}

		url := config.URL

		if url == "" {
			url = groqURL
		}

		return openai.NewCompleter(url, model, openai.WithToken(token))

	case "openai":
		token, err := resolveToken(config.Token, "OPENAI_API_KEY")

		if err != nil {
			return nil, err
		}

		model := config.Model

		if model == "" {
			model = "gpt-4o-mini"
		}

		return openai.NewCompleter(config.URL, model, openai.WithToken(token))

	case "anthropic":
		token, err := resolveToken(config.Token, "ANTHROPIC_API_KEY")

		if err != nil {
			return nil, err
		}

		model := config.Model

		if model == "" {
			model = "claude-sonnet-4-5"
		}

		return anthropic.NewCompleter(config.URL, model, anthropic.WithToken(token))

	case "google":
		token, err := resolveToken(config.Token, "GOOGLE_API_KEY")

		if err != nil {
			return nil, err
		}

		model := config.Model

		if model == "" {
			model = "gemini-2.5-flash"
		}

		return google.NewCompleter(model, google.WithToken(token))

	default:
		return nil, errors.New("invalid classifier type: " + config.Type)
	}
}

// resolveToken reads the API credential once at startup. A missing credential
// is fatal: the pipeline never runs without one.
func resolveToken(token, env string) (string, error) {
	if token != "" {
		return token, nil
	}

	if val := os.Getenv(env); val != "" {
		return val, nil
	}

	return "", &ConfigurationError{Reason: env + " not set"}
}
