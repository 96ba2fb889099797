package config

import (
	"github.com/shivayapandey/invoice/pkg/pager"
)

// Letter geometry with one-inch margins, Helvetica 10 on a 14pt leading.
func defaultGeometry() pager.Geometry {
	return pager.Geometry{
		PageWidth:  612,
		PageHeight: 792,

		Margin:     72,
		LineHeight: 14,

		Font: "Helvetica",
		Size: 10,
	}
}

type layoutConfig struct {
	PageWidth  float64 `yaml:"pageWidth"`
	PageHeight float64 `yaml:"pageHeight"`

	Margin     float64 `yaml:"margin"`
	LineHeight float64 `yaml:"lineHeight"`

	Font string  `yaml:"font"`
	Size float64 `yaml:"fontSize"`
}

func (cfg *Config) registerLayout(f *configFile) error {
	config := f.Layout

	if config == nil {
		return nil
	}

	geometry := cfg.geometry

	if config.PageWidth > 0 {
		geometry.PageWidth = config.PageWidth
	}

	if config.PageHeight > 0 {
		geometry.PageHeight = config.PageHeight
	}

	if config.Margin > 0 {
		geometry.Margin = config.Margin
	}

	if config.LineHeight > 0 {
		geometry.LineHeight = config.LineHeight
	}

	if config.Font != "" {
		geometry.Font = config.Font
	}

	if config.Size > 0 {
		geometry.Size = config.Size
	}

	if err := geometry.Validate(); err != nil {
		return &ConfigurationError{Reason: err.Error()}
	}

	cfg.geometry = geometry

	return nil
}
