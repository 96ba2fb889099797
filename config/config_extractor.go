package config

import (
	"errors"

	"github.com/shivayapandey/invoice/pkg/extractor"
	"github.com/shivayapandey/invoice/pkg/extractor/multi"
	"github.com/shivayapandey/invoice/pkg/extractor/pdftext"
	"github.com/shivayapandey/invoice/pkg/extractor/tabula"
	"github.com/shivayapandey/invoice/pkg/extractor/text"
	"github.com/shivayapandey/invoice/pkg/extractor/unstructured"
	"github.com/shivayapandey/invoice/pkg/limiter"
	"github.com/shivayapandey/invoice/pkg/otel"
)

func (cfg *Config) RegisterExtractor(id string, p extractor.Provider) {
	if cfg.extractor == nil {
		cfg.extractor = make(map[string]extractor.Provider)
	}

	if _, ok := cfg.extractor[""]; !ok {
		cfg.extractor[""] = p
	}

	cfg.extractor[id] = p
}

func (cfg *Config) Extractor(id string) (extractor.Provider, error) {
	if cfg.extractor != nil {
		if e, ok := cfg.extractor[id]; ok {
			return e, nil
		}
	}

	return nil, errors.New("extractor not found: " + id)
}

type extractorConfig struct {
	Type string `yaml:"type"`

	URL   string `yaml:"url"`
	Token string `yaml:"token"`

	Strategy string `yaml:"strategy"`

	Limit *int `yaml:"limit"`
}

func (cfg *Config) registerExtractors(f *configFile) error {
	var configs map[string]extractorConfig

	if len(f.Extractors.Content) > 0 {
		if err := f.Extractors.Decode(&configs); err != nil {
			return err
		}
	}

	if len(configs) == 0 {
		return cfg.registerDefaultExtractors()
	}

	for _, node := range f.Extractors.Content {
		id := node.Value

		config, ok := configs[id]

		if !ok {
			continue
		}

		p, err := createExtractor(config)

		if err != nil {
			return err
		}

		if config.Limit != nil {
			p = limiter.NewExtractor(createLimiter(config.Limit), p)
		}

		cfg.RegisterExtractor(id, otel.NewExtractor(config.Type, id, p))
	}

	return nil
}

func (cfg *Config) registerDefaultExtractors() error {
	local, err := tabula.New()

	if err != nil {
		return err
	}

	fallback, err := pdftext.New()

	if err != nil {
		return err
	}

	plain, err := text.New()

	if err != nil {
		return err
	}

	cfg.RegisterExtractor("default", otel.NewExtractor("multi", "default", multi.New(local, fallback, plain)))

	return nil
}

func createExtractor(config extractorConfig) (extractor.Provider, error) {
	switch config.Type {
	case "unstructured":
		var options []unstructured.Option

		if config.Token != "" {
			options = append(options, unstructured.WithToken(config.Token))
		}

		if config.Strategy != "" {
			options = append(options, unstructured.WithStrategy(unstructured.Strategy(config.Strategy)))
		}

		return unstructured.New(config.URL, options...)

	case "tabula":
		return tabula.New()

	case "pdftext":
		return pdftext.New()

	case "text":
		return text.New()

	default:
		return nil, errors.New("invalid extractor type: " + config.Type)
	}
}
