package otel

import (
	"context"

	"github.com/shivayapandey/invoice/pkg/classifier"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

type Classifier interface {
	Observable
	classifier.Provider
}

type observableClassifier struct {
	model    string
	provider string

	classifier classifier.Provider
}

func NewClassifier(provider, model string, p classifier.Provider) Classifier {
	return &observableClassifier{
		classifier: p,

		model:    model,
		provider: provider,
	}
}

func (p *observableClassifier) otelSetup() {
}

func (p *observableClassifier) Classify(ctx context.Context, text string) (*classifier.Extraction, error) {
	ctx, span := otel.Tracer(instrumentationName).Start(ctx, "classify "+p.model)
	defer span.End()

	result, err := p.classifier.Classify(ctx, text)

	span.SetAttributes(attribute.Bool("invoice.found", result != nil))

	return result, err
}
