package aggregator

import (
	"fmt"
	"strings"
)

// FileResult is the per-file outcome of a classification pass. Invoice is nil
// when the file yielded no invoice content.
type FileResult struct {
	Name string

	Invoice *string
}

const separator = "=================================================="

// Aggregate combines the extracted invoices in input order. Each hit is
// prefixed with a header naming its source file; hits are joined with a
// 50-character separator line. Zero hits return an empty string, which
// callers must report as "nothing extracted" rather than rendering an empty
// document.
func Aggregate(results []FileResult) string {
	var sections []string

	for _, result := range results {
		if result.Invoice == nil {
			continue
		}

		sections = append(sections, fmt.Sprintf("--- Invoice from %s ---\n%s", result.Name, *result.Invoice))
	}

	if len(sections) == 0 {
		return ""
	}

	return strings.Join(sections, "\n\n"+separator+"\n\n")
}
