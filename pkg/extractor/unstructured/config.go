package unstructured

import (
	"net/http"
)

type Strategy string

const (
	StrategyFast  Strategy = "fast"
	StrategyHiRes Strategy = "hi_res"
	StrategyAuto  Strategy = "auto"
)

var SupportedExtensions = []string{
	".pdf",
	".doc",
	".docx",
	".odt",
	".ppt",
	".pptx",
	".rtf",
	".html",
	".md",
	".txt",
}

var SupportedMimeTypes = []string{
	"application/pdf",
	"application/msword",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	"application/vnd.oasis.opendocument.text",
	"application/vnd.ms-powerpoint",
	"application/vnd.openxmlformats-officedocument.presentationml.presentation",
	"application/rtf",
	"text/html",
	"text/markdown",
	"text/plain",
}

type Element struct {
	Type string `json:"type"`
	Text string `json:"text"`

	Metadata Metadata `json:"metadata"`
}

type Metadata struct {
	PageNumber int `json:"page_number"`

	TextAsHTML string `json:"text_as_html"`
}

type Option func(*Client)

func WithClient(client *http.Client) Option {
	return func(c *Client) {
		c.client = client
	}
}

func WithToken(token string) Option {
	return func(c *Client) {
		c.token = token
	}
}

func WithStrategy(strategy Strategy) Option {
	return func(c *Client) {
		c.strategy = strategy
	}
}
