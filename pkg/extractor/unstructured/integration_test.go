package unstructured_test

import (
	"context"
	"os"
	"testing"

	"github.com/shivayapandey/invoice/pkg/extractor"
	"github.com/shivayapandey/invoice/pkg/extractor/unstructured"
	"github.com/shivayapandey/invoice/pkg/pager"
	"github.com/shivayapandey/invoice/pkg/renderer"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
)

// Runs the open-source partition API in a container. Enable with
// TEST_UNSTRUCTURED=1; the image is large and needs Docker.
func TestExtractIntegration(t *testing.T) {
	if os.Getenv("TEST_UNSTRUCTURED") == "" {
		t.Skip("TEST_UNSTRUCTURED not set")
	}

	ctx := context.Background()

	server, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		Started: true,

		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "quay.io/unstructured-io/unstructured-api:latest",
			ExposedPorts: []string{"8000/tcp"},
		},
	})

	require.NoError(t, err)
	defer server.Terminate(ctx)

	url, err := server.Endpoint(ctx, "")
	require.NoError(t, err)

	c, err := unstructured.New("http://" + url + "/general/v0/general")
	require.NoError(t, err)

	doc := renderer.New()

	data, err := doc.Render([]pager.DrawInstruction{
		{Page: 0, X: 72, Y: 720, Text: "Invoice #42"},
		{Page: 0, X: 72, Y: 706, Text: "Total: 10.00"},
	}, pager.Geometry{
		PageWidth:  612,
		PageHeight: 792,

		Margin:     72,
		LineHeight: 14,

		Font: "Helvetica",
		Size: 10,
	})
	require.NoError(t, err)

	file := extractor.File{
		Name: "invoice.pdf",

		Content:     data,
		ContentType: "application/pdf",
	}

	elements, err := c.Extract(ctx, file, nil)
	require.NoError(t, err)

	require.NotEmpty(t, elements)
}
