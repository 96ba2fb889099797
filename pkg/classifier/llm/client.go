package llm

import (
	"context"
	"errors"
	"strings"

	"github.com/shivayapandey/invoice/pkg/classifier"
	"github.com/shivayapandey/invoice/pkg/provider"
)

var _ classifier.Provider = &Client{}

// Client classifies document text by prompting a chat completer.
type Client struct {
	completer provider.Completer
}

func New(completer provider.Completer, options ...Option) (*Client, error) {
	if completer == nil {
		return nil, errors.New("completer required")
	}

	c := &Client{
		completer: completer,
	}

	for _, option := range options {
		option(c)
	}

	return c, nil
}

type Option func(*Client)

func (c *Client) Classify(ctx context.Context, text string) (*classifier.Extraction, error) {
	prompt, err := renderPrompt(classifier.Sentinel, text)

	if err != nil {
		return nil, &classifier.ClassificationError{Err: err}
	}

	messages := []provider.Message{
		provider.UserMessage(prompt),
	}

	completion, err := c.completer.Complete(ctx, messages, nil)

	if err != nil {
		return nil, &classifier.ClassificationError{Err: err}
	}

	if completion.Message == nil {
		return nil, &classifier.ClassificationError{Err: errors.New("empty completion")}
	}

	response := completion.Message.Text()

	if strings.TrimSpace(response) == classifier.Sentinel {
		return nil, nil
	}

	return &classifier.Extraction{
		Invoice: response,
	}, nil
}
