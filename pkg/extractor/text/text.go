package text

import (
	"context"
	"path"
	"slices"
	"strings"
	"unicode"

	"github.com/shivayapandey/invoice/pkg/document"
	"github.com/shivayapandey/invoice/pkg/extractor"
	"github.com/shivayapandey/invoice/pkg/provider"
)

var _ extractor.Provider = &Extractor{}

type Extractor struct {
}

func New() (*Extractor, error) {
	return &Extractor{}, nil
}

func (e *Extractor) Extract(ctx context.Context, file extractor.File, options *extractor.ExtractOptions) ([]document.Element, error) {
	if options == nil {
		options = new(extractor.ExtractOptions)
	}

	if !detectText(file) {
		return nil, extractor.ErrUnsupported
	}

	var result []document.Element

	for _, line := range strings.Split(string(file.Content), "\n") {
		result = append(result, document.Text{Text: strings.TrimRight(line, "\r")})
	}

	return result, nil
}

func detectText(file provider.File) bool {
	if isSupported(file) {
		return true
	}

	var printableCount int

	for _, b := range file.Content {
		if b == 0 {
			return false
		}

		if unicode.IsPrint(rune(b)) || b == '\n' || b == '\r' || b == '\t' {
			printableCount++
		}
	}

	return printableCount > (len(file.Content) * 90 / 100)
}

var SupportedExtensions = []string{
	".txt",
	".md",
	".csv",
}

var SupportedMimeTypes = []string{
	"text/plain",
	"text/markdown",
	"text/csv",
}

func isSupported(file provider.File) bool {
	if file.Name != "" {
		ext := strings.ToLower(path.Ext(file.Name))

		if slices.Contains(SupportedExtensions, ext) {
			return true
		}
	}

	if file.ContentType != "" {
		if slices.Contains(SupportedMimeTypes, file.ContentType) {
			return true
		}
	}

	return false
}
