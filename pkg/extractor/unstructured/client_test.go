package unstructured_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shivayapandey/invoice/pkg/document"
	"github.com/shivayapandey/invoice/pkg/extractor"
	"github.com/shivayapandey/invoice/pkg/extractor/unstructured"

	"github.com/stretchr/testify/require"
)

func TestExtract(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "POST", r.Method)

		require.NoError(t, r.ParseMultipartForm(32<<20))
		require.Equal(t, "hi_res", r.FormValue("strategy"))

		_, header, err := r.FormFile("files")
		require.NoError(t, err)
		require.Equal(t, "invoice.pdf", header.Filename)

		elements := []unstructured.Element{
			{Type: "Title", Text: "Invoice #42"},
			{Type: "NarrativeText", Text: "Billed to ACME Corp."},
			{Type: "ListItem", Text: "Widget A"},
			{
				Type: "Table",
				Text: "Item Qty\nWidget 2",
				Metadata: unstructured.Metadata{
					TextAsHTML: "<table><tr><td>Item</td><td>Qty</td></tr><tr><td>Widget</td><td>2</td></tr></table>",
				},
			},
			{Type: "PageBreak", Text: ""},
			{Type: "Footer", Text: "page 1 of 1"},
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(elements)
	}))
	defer server.Close()

	c, err := unstructured.New(server.URL)
	require.NoError(t, err)

	file := extractor.File{
		Name: "invoice.pdf",

		Content:     []byte("%PDF-1.4"),
		ContentType: "application/pdf",
	}

	elements, err := c.Extract(context.Background(), file, nil)
	require.NoError(t, err)

	require.Equal(t, []document.Element{
		document.Heading{Text: "Invoice #42"},
		document.Text{Text: "Billed to ACME Corp."},
		document.ListItem{Text: "Widget A"},
		document.Table{Rows: [][]string{
			{"Item", "Qty"},
			{"Widget", "2"},
		}},
	}, elements)
}

func TestExtractTableWithoutHTML(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		elements := []unstructured.Element{
			{Type: "Table", Text: "Item Qty\nWidget 2"},
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(elements)
	}))
	defer server.Close()

	c, err := unstructured.New(server.URL)
	require.NoError(t, err)

	file := extractor.File{
		Name:        "invoice.pdf",
		ContentType: "application/pdf",
	}

	elements, err := c.Extract(context.Background(), file, nil)
	require.NoError(t, err)

	require.Equal(t, []document.Element{
		document.Table{Rows: [][]string{
			{"Item Qty"},
			{"Widget 2"},
		}},
	}, elements)
}

func TestExtractUnsupported(t *testing.T) {
	c, err := unstructured.New("http://localhost:0")
	require.NoError(t, err)

	file := extractor.File{
		Name:        "image.webp",
		ContentType: "image/webp",
	}

	_, err = c.Extract(context.Background(), file, nil)
	require.ErrorIs(t, err, extractor.ErrUnsupported)
}

func TestExtractServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "invalid document", http.StatusUnprocessableEntity)
	}))
	defer server.Close()

	c, err := unstructured.New(server.URL)
	require.NoError(t, err)

	file := extractor.File{
		Name:        "invoice.pdf",
		ContentType: "application/pdf",
	}

	_, err = c.Extract(context.Background(), file, nil)
	require.Error(t, err)
}
