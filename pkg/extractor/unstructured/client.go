package unstructured

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"path"
	"slices"
	"strings"

	"github.com/shivayapandey/invoice/pkg/document"
	"github.com/shivayapandey/invoice/pkg/extractor"
	"github.com/shivayapandey/invoice/pkg/provider"

	"golang.org/x/net/html"
)

var _ extractor.Provider = &Client{}

type Client struct {
	client *http.Client

	url   string
	token string

	strategy Strategy
}

func New(url string, options ...Option) (*Client, error) {
	if url == "" {
		url = "https://api.unstructured.io/general/v0/general"
	}

	c := &Client{
		client: http.DefaultClient,

		url: url,

		strategy: StrategyHiRes,
	}

	for _, option := range options {
		option(c)
	}

	return c, nil
}

func (c *Client) Extract(ctx context.Context, file extractor.File, options *extractor.ExtractOptions) ([]document.Element, error) {
	if options == nil {
		options = new(extractor.ExtractOptions)
	}

	if !isSupported(file) {
		return nil, extractor.ErrUnsupported
	}

	var b bytes.Buffer
	w := multipart.NewWriter(&b)

	w.WriteField("strategy", string(c.strategy))
	w.WriteField("include_page_breaks", "true")

	f, err := w.CreateFormFile("files", file.Name)

	if err != nil {
		return nil, err
	}

	if _, err := f.Write(file.Content); err != nil {
		return nil, err
	}

	w.Close()

	req, _ := http.NewRequestWithContext(ctx, "POST", c.url, &b)
	req.Header.Set("Content-Type", w.FormDataContentType())

	if c.token != "" {
		req.Header.Set("unstructured-api-key", c.token)
	}

	resp, err := c.client.Do(req)

	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, convertError(resp)
	}

	var elements []Element

	if err := json.NewDecoder(resp.Body).Decode(&elements); err != nil {
		return nil, err
	}

	var result []document.Element

	for _, e := range elements {
		switch e.Type {
		case "Title":
			result = append(result, document.Heading{Text: e.Text})

		case "ListItem":
			result = append(result, document.ListItem{Text: e.Text})

		case "Table":
			result = append(result, document.Table{Rows: convertRows(e)})

		case "NarrativeText", "Text", "UncategorizedText", "FigureCaption", "Address":
			result = append(result, document.Text{Text: e.Text})
		}
	}

	return result, nil
}

func convertRows(e Element) [][]string {
	if e.Metadata.TextAsHTML != "" {
		if rows := parseTableRows(e.Metadata.TextAsHTML); len(rows) > 0 {
			return rows
		}
	}

	var rows [][]string

	for _, line := range strings.Split(e.Text, "\n") {
		rows = append(rows, []string{line})
	}

	return rows
}

func parseTableRows(markup string) [][]string {
	node, err := html.Parse(strings.NewReader(markup))

	if err != nil {
		return nil
	}

	var rows [][]string

	var walk func(*html.Node)

	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "tr" {
			var cells []string

			for c := n.FirstChild; c != nil; c = c.NextSibling {
				if c.Type == html.ElementNode && (c.Data == "td" || c.Data == "th") {
					cells = append(cells, strings.TrimSpace(nodeText(c)))
				}
			}

			if len(cells) > 0 {
				rows = append(rows, cells)
			}

			return
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	walk(node)

	return rows
}

func nodeText(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}

	var builder strings.Builder

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		builder.WriteString(nodeText(c))
	}

	return builder.String()
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

func convertError(resp *http.Response) error {
	data, _ := io.ReadAll(resp.Body)

	if len(data) == 0 {
		return errors.New(http.StatusText(resp.StatusCode))
	}

	return errors.New(string(data))
}
