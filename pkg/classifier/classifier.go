package classifier

import (
	"context"
	"fmt"
)

// Sentinel is the fixed response value meaning "no invoice content found".
// Only a response equal to it (after trimming surrounding whitespace) counts:
// a response merely containing it is treated as extracted content.
const Sentinel = "NO_INVOICE_FOUND"

// Extraction is the invoice text recovered from one document.
type Extraction struct {
	Invoice string
}

// Provider decides whether a text stream contains an invoice and extracts it.
// A nil Extraction with a nil error means the text holds no invoice content.
type Provider interface {
	Classify(ctx context.Context, text string) (*Extraction, error)
}

// ClassificationError wraps transport or provider failures. Callers skip the
// affected file and continue with the rest of the batch.
type ClassificationError struct {
	Err error
}

func (e *ClassificationError) Error() string {
	return fmt.Sprintf("classification failed: %v", e.Err)
}

func (e *ClassificationError) Unwrap() error {
	return e.Err
}
