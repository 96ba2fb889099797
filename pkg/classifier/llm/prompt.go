package llm

import (
	"strings"
	"text/template"
)

// promptTmpl instructs the model to extract invoice fields from the
// normalized document text and to answer with the sentinel when the text
// holds no invoice content.
var promptTmpl = template.Must(template.New("classify").Parse(`You are an expert invoice data extractor. Analyze the following text and extract ONLY invoice-related information.

Key information to identify and extract:
1. Invoice numbers/IDs
2. Issue dates and due dates
3. Company names (both vendor and client)
4. Billing addresses
5. Line items with:
   - Item descriptions
   - Quantities
   - Unit prices
   - Subtotals
6. Tax amounts
7. Total amounts
8. Payment terms
9. Payment instructions if present

Format the output to maintain the original invoice structure.
If you find an invoice, format it clearly with appropriate sections and spacing.
If no invoice-like content is found, return exactly "{{.Sentinel}}".

Text to analyze:
{{.Text}}
`))

func renderPrompt(sentinel, text string) (string, error) {
	var builder strings.Builder

	data := struct {
		Sentinel string
		Text     string
	}{
		Sentinel: sentinel,
		Text:     text,
	}

	if err := promptTmpl.Execute(&builder, data); err != nil {
		return "", err
	}

	return builder.String(), nil
}
