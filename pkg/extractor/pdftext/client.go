package pdftext

import (
	"context"
	"os"
	"path"
	"strings"

	"github.com/shivayapandey/invoice/pkg/document"
	"github.com/shivayapandey/invoice/pkg/extractor"

	"github.com/ledongthuc/pdf"
)

var _ extractor.Provider = &Client{}

// Client is a minimal text-only PDF parser. It recovers no structure beyond
// row order, so every row becomes a plain text element. Useful as a fallback
// when the richer parsers are unavailable.
type Client struct {
}

func New() (*Client, error) {
	return &Client{}, nil
}

func (c *Client) Extract(ctx context.Context, file extractor.File, options *extractor.ExtractOptions) ([]document.Element, error) {
	if options == nil {
		options = new(extractor.ExtractOptions)
	}

	if !isSupported(file) {
		return nil, extractor.ErrUnsupported
	}

	tmp, err := os.CreateTemp("", "extract-*.pdf")

	if err != nil {
		return nil, err
	}

	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(file.Content); err != nil {
		tmp.Close()
		return nil, err
	}

	if err := tmp.Close(); err != nil {
		return nil, err
	}

	f, reader, err := pdf.Open(tmp.Name())

	if err != nil {
		return nil, err
	}

	defer f.Close()

	var result []document.Element

	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)

		if page.V.IsNull() {
			continue
		}

		rows, err := page.GetTextByRow()

		if err != nil {
			return nil, err
		}

		for _, row := range rows {
			var builder strings.Builder

			for _, text := range row.Content {
				builder.WriteString(text.S)
			}

			line := strings.TrimSpace(builder.String())

			if line == "" {
				continue
			}

			result = append(result, document.Text{Text: line})
		}
	}

	return result, nil
}

func isSupported(file extractor.File) bool {
	if file.Name != "" {
		if strings.ToLower(path.Ext(file.Name)) == ".pdf" {
			return true
		}
	}

	return file.ContentType == "application/pdf"
}
