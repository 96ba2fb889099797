package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/shivayapandey/invoice/pkg/classifier"
	"github.com/shivayapandey/invoice/pkg/extractor"
	"github.com/shivayapandey/invoice/pkg/pager"
	"github.com/shivayapandey/invoice/pkg/renderer"

	"golang.org/x/time/rate"
	"gopkg.in/yaml.v3"
)

// ConfigurationError marks a fatal startup condition, like a missing API
// credential. The pipeline never runs when one is raised.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "configuration: " + e.Reason
}

type Config struct {
	Address string

	extractor map[string]extractor.Provider

	classifier classifier.Provider

	geometry pager.Geometry
	renderer *renderer.Document
}

func Parse(path string) (*Config, error) {
	file, err := parseFile(path)

	if err != nil {
		return nil, err
	}

	c := &Config{
		Address: ":8080",

		geometry: defaultGeometry(),
		renderer: renderer.New(),
	}

	if file.Address != "" {
		c.Address = file.Address
	}

	if err := c.registerLayout(file); err != nil {
		return nil, err
	}

	if err := c.registerExtractors(file); err != nil {
		return nil, err
	}

	if err := c.registerClassifier(file); err != nil {
		return nil, err
	}

	return c, nil
}

type configFile struct {
	Address string `yaml:"address"`

	Extractors yaml.Node `yaml:"extractors"`

	Classifier *classifierConfig `yaml:"classifier"`

	Layout *layoutConfig `yaml:"layout"`
}

func parseFile(path string) (*configFile, error) {
	file := &configFile{}

	if path == "" {
		return file, nil
	}

	data, err := os.ReadFile(path)

	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return file, nil
		}

		return nil, err
	}

	if err := yaml.Unmarshal(data, file); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return file, nil
}

func (cfg *Config) Geometry() pager.Geometry {
	return cfg.geometry
}

func (cfg *Config) Renderer() *renderer.Document {
	return cfg.renderer
}

func createLimiter(limit *int) *rate.Limiter {
	if limit == nil {
		return nil
	}

	return rate.NewLimiter(rate.Limit(*limit), *limit)
}
