package multi

import (
	"context"

	"github.com/shivayapandey/invoice/pkg/document"
	"github.com/shivayapandey/invoice/pkg/extractor"
)

var _ extractor.Provider = &Extractor{}

// Extractor tries each provider in order and returns the first successful
// result.
type Extractor struct {
	providers []extractor.Provider
}

func New(provider ...extractor.Provider) *Extractor {
	return &Extractor{
		providers: provider,
	}
}

func (e *Extractor) Extract(ctx context.Context, file extractor.File, options *extractor.ExtractOptions) ([]document.Element, error) {
	if options == nil {
		options = new(extractor.ExtractOptions)
	}

	for _, p := range e.providers {
		result, err := p.Extract(ctx, file, options)

		if err != nil {
			continue
		}

		return result, nil
	}

	return nil, extractor.ErrUnsupported
}
