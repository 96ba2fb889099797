package tabula

import (
	"context"
	"os"
	"path"
	"strings"

	"github.com/shivayapandey/invoice/pkg/document"
	"github.com/shivayapandey/invoice/pkg/extractor"
	"github.com/shivayapandey/invoice/pkg/provider"

	"github.com/tsawler/tabula"
	"github.com/tsawler/tabula/model"
)

var _ extractor.Provider = &Client{}

// Client parses PDFs locally with the tabula layout analyzer. No external
// service is involved.
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

	doc, _, err := tabula.Open(tmp.Name()).Document()

	if err != nil {
		return nil, err
	}

	var result []document.Element

	for _, page := range doc.Pages {
		for _, e := range page.Elements {
			result = append(result, convertElement(e)...)
		}
	}

	return result, nil
}

func convertElement(e model.Element) []document.Element {
	switch e := e.(type) {
	case *model.Paragraph:
		return []document.Element{document.Text{Text: e.Text}}

	case *model.Heading:
		return []document.Element{document.Heading{Text: e.Text, Level: e.Level}}

	case *model.List:
		var items []document.Element

		for _, item := range e.Items {
			items = append(items, document.ListItem{Text: item.Text})
		}

		return items

	case *model.Table:
		rows := make([][]string, 0, len(e.Rows))

		for _, row := range e.Rows {
			cells := make([]string, 0, len(row))

			for _, cell := range row {
				cells = append(cells, cell.Text)
			}

			rows = append(rows, cells)
		}

		return []document.Element{document.Table{Rows: rows}}
	}

	return nil
}

func isSupported(file provider.File) bool {
	if file.Name != "" {
		if strings.ToLower(path.Ext(file.Name)) == ".pdf" {
			return true
		}
	}

	return file.ContentType == "application/pdf"
}
