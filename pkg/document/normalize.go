package document

import (
	"strings"
)

// Normalize flattens an element sequence into a single newline-joined text
// stream, preserving reading order.
//
// Text and headings pass through unchanged, list items get a bullet prefix,
// and tables expand to one line per row with cells joined by " | ".
// Elements outside the known set are dropped.
func Normalize(elements []Element) string {
	var lines []string

	for _, e := range elements {
		switch e := e.(type) {
		case Text:
			lines = append(lines, e.Text)

		case Heading:
			lines = append(lines, e.Text)

		case ListItem:
			lines = append(lines, "• "+e.Text)

		case Table:
			for _, row := range e.Rows {
				lines = append(lines, strings.Join(row, " | "))
			}

		default:
			// unrecognized element types carry no text
		}
	}

	return strings.Join(lines, "\n")
}
