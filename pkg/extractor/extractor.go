package extractor

import (
	"context"
	"errors"

	"github.com/shivayapandey/invoice/pkg/document"
	"github.com/shivayapandey/invoice/pkg/provider"
)

// Provider parses a file into an ordered sequence of document elements.
type Provider interface {
	Extract(ctx context.Context, file File, options *ExtractOptions) ([]document.Element, error)
}

var (
	ErrUnsupported = errors.New("unsupported type")
)

type File = provider.File

type ExtractOptions struct {
}
