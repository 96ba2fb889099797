package llm_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shivayapandey/invoice/pkg/classifier"
	"github.com/shivayapandey/invoice/pkg/classifier/llm"
	"github.com/shivayapandey/invoice/pkg/provider"

	"github.com/stretchr/testify/require"
)

type fakeCompleter struct {
	response string
	err      error

	prompt string
}

func (c *fakeCompleter) Complete(ctx context.Context, messages []provider.Message, options *provider.CompleteOptions) (*provider.Completion, error) {
	if len(messages) > 0 {
		c.prompt = messages[len(messages)-1].Text()
	}

	if c.err != nil {
		return nil, c.err
	}

	return &provider.Completion{
		Message: &provider.Message{
			Role: provider.MessageRoleAssistant,

			Content: []provider.Content{
				provider.TextContent(c.response),
			},
		},
	}, nil
}

func TestClassify(t *testing.T) {
	completer := &fakeCompleter{response: "Invoice #42\nTotal: 10.00"}

	c, err := llm.New(completer)
	require.NoError(t, err)

	result, err := c.Classify(context.Background(), "some document text")
	require.NoError(t, err)
	require.NotNil(t, result)
	require.Equal(t, "Invoice #42\nTotal: 10.00", result.Invoice)

	require.Contains(t, completer.prompt, "some document text")
	require.Contains(t, completer.prompt, classifier.Sentinel)
}

func TestClassifySentinel(t *testing.T) {
	completer := &fakeCompleter{response: classifier.Sentinel}

	c, err := llm.New(completer)
	require.NoError(t, err)

	result, err := c.Classify(context.Background(), "random text")
	require.NoError(t, err)
	require.Nil(t, result)
}

func TestClassifySentinelWhitespace(t *testing.T) {
	completer := &fakeCompleter{response: "  " + classifier.Sentinel + "\n"}

	c, err := llm.New(completer)
	require.NoError(t, err)

	result, err := c.Classify(context.Background(), "random text")
	require.NoError(t, err)
	require.Nil(t, result)
}

func TestClassifySentinelSubstring(t *testing.T) {
	completer := &fakeCompleter{response: "the model replied " + classifier.Sentinel + " for part of the text"}

	c, err := llm.New(completer)
	require.NoError(t, err)

	result, err := c.Classify(context.Background(), "random text")
	require.NoError(t, err)
	require.NotNil(t, result)
}

func TestClassifyError(t *testing.T) {
	completer := &fakeCompleter{err: errors.New("upstream unavailable")}

	c, err := llm.New(completer)
	require.NoError(t, err)

	_, err = c.Classify(context.Background(), "random text")

	var cerr *classifier.ClassificationError
	require.ErrorAs(t, err, &cerr)
}
