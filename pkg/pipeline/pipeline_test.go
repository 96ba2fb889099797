package pipeline_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/shivayapandey/invoice/pkg/classifier"
	"github.com/shivayapandey/invoice/pkg/document"
	"github.com/shivayapandey/invoice/pkg/extractor"
	"github.com/shivayapandey/invoice/pkg/pager"
	"github.com/shivayapandey/invoice/pkg/pipeline"
	"github.com/shivayapandey/invoice/pkg/renderer"

	"github.com/stretchr/testify/require"
)

type fakeExtractor struct {
	fail map[string]bool
}

func (e *fakeExtractor) Extract(ctx context.Context, file extractor.File, options *extractor.ExtractOptions) ([]document.Element, error) {
	if e.fail[file.Name] {
		return nil, errors.New("malformed file")
	}

	return []document.Element{
		document.Text{Text: string(file.Content)},
	}, nil
}

// fakeClassifier extracts any text containing the word "invoice".
type fakeClassifier struct {
	fail map[string]bool
}

func (c *fakeClassifier) Classify(ctx context.Context, text string) (*classifier.Extraction, error) {
	if c.fail[text] {
		return nil, &classifier.ClassificationError{Err: errors.New("upstream unavailable")}
	}

	if !strings.Contains(text, "invoice") {
		return nil, nil
	}

	return &classifier.Extraction{Invoice: strings.ToUpper(text)}, nil
}

func testGeometry() pager.Geometry {
	return pager.Geometry{
		PageWidth:  612,
		PageHeight: 792,

		Margin:     72,
		LineHeight: 14,

		Font: "Helvetica",
		Size: 10,
	}
}

func newTestPipeline(t *testing.T, e extractor.Provider, c classifier.Provider) *pipeline.Pipeline {
	t.Helper()

	doc := renderer.New()

	p, err := pipeline.New(e, c, doc, doc, testGeometry())
	require.NoError(t, err)

	return p
}

func TestProcess(t *testing.T) {
	p := newTestPipeline(t, &fakeExtractor{}, &fakeClassifier{})

	files := []extractor.File{
		{Name: "a.pdf", Content: []byte("invoice one")},
		{Name: "b.pdf", Content: []byte("a shopping list")},
		{Name: "c.pdf", Content: []byte("invoice two")},
	}

	result, err := p.Process(context.Background(), files)
	require.NoError(t, err)

	require.Equal(t, 3, result.Files)
	require.Equal(t, 2, result.Extracted)
	require.Empty(t, result.Warnings)

	require.Contains(t, result.Text, "--- Invoice from a.pdf ---")
	require.Contains(t, result.Text, "--- Invoice from c.pdf ---")
	require.NotContains(t, result.Text, "b.pdf")

	require.Less(t, strings.Index(result.Text, "a.pdf"), strings.Index(result.Text, "c.pdf"))
}

func TestProcessParseErrorContinues(t *testing.T) {
	e := &fakeExtractor{fail: map[string]bool{"broken.pdf": true}}

	p := newTestPipeline(t, e, &fakeClassifier{})

	files := []extractor.File{
		{Name: "broken.pdf", Content: []byte("invoice zero")},
		{Name: "ok.pdf", Content: []byte("invoice one")},
	}

	result, err := p.Process(context.Background(), files)
	require.NoError(t, err)

	require.Equal(t, 1, result.Extracted)
	require.Len(t, result.Warnings, 1)
	require.Equal(t, "broken.pdf", result.Warnings[0].File)

	var perr *pipeline.ParseError
	require.ErrorAs(t, result.Warnings[0].Err, &perr)

	require.Contains(t, result.Text, "ok.pdf")
	require.NotContains(t, result.Text, "broken.pdf")
}

func TestProcessClassificationErrorContinues(t *testing.T) {
	c := &fakeClassifier{fail: map[string]bool{"invoice zero": true}}

	p := newTestPipeline(t, &fakeExtractor{}, c)

	files := []extractor.File{
		{Name: "a.pdf", Content: []byte("invoice zero")},
		{Name: "b.pdf", Content: []byte("invoice one")},
	}

	result, err := p.Process(context.Background(), files)
	require.NoError(t, err)

	require.Equal(t, 1, result.Extracted)
	require.Len(t, result.Warnings, 1)

	var cerr *classifier.ClassificationError
	require.ErrorAs(t, result.Warnings[0].Err, &cerr)
}

func TestProcessNothingExtracted(t *testing.T) {
	p := newTestPipeline(t, &fakeExtractor{}, &fakeClassifier{})

	files := []extractor.File{
		{Name: "a.pdf", Content: []byte("a shopping list")},
	}

	result, err := p.Process(context.Background(), files)
	require.NoError(t, err)

	require.Equal(t, 0, result.Extracted)
	require.Equal(t, "", result.Text)
}

func TestRender(t *testing.T) {
	p := newTestPipeline(t, &fakeExtractor{}, &fakeClassifier{})

	data, err := p.Render("--- Invoice from a.pdf ---\nINVOICE ONE")
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(string(data), "%PDF-"))
}
