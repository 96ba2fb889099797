package pager

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// Measurer reports the rendered width of a string in a given font and size.
// Implementations are expected to be deterministic.
type Measurer interface {
	Width(text string, font string, size float64) (float64, error)
}

// MeasurementError signals that font metrics were unavailable or inconsistent
// during a layout pass. Layout has no fallback: the pass is aborted and no
// partial instruction sequence is returned.
type MeasurementError struct {
	Font string
	Err  error
}

func (e *MeasurementError) Error() string {
	return fmt.Sprintf("measure %q: %v", e.Font, e.Err)
}

func (e *MeasurementError) Unwrap() error {
	return e.Err
}

// Geometry is the fixed page configuration for a layout pass. Coordinates are
// bottom-up: y grows toward the top of the page.
type Geometry struct {
	PageWidth  float64
	PageHeight float64

	Margin     float64
	LineHeight float64

	Font string
	Size float64
}

var ErrInvalidGeometry = errors.New("margin leaves no usable page area")

func (g Geometry) Validate() error {
	if g.Margin >= g.PageWidth/2 || g.Margin >= g.PageHeight/2 {
		return ErrInvalidGeometry
	}

	return nil
}

// UsableWidth is the horizontal space available for text on one line.
func (g Geometry) UsableWidth() float64 {
	return g.PageWidth - 2*g.Margin
}

// DrawInstruction places a text segment on a page. Page indexes are 0-based
// and non-decreasing across an instruction sequence.
type DrawInstruction struct {
	Page int

	X float64
	Y float64

	Text string
}

// Layout flows text onto fixed-size pages and returns the ordered draw
// instructions. Input lines are processed independently; every input line
// advances the vertical cursor by one line height, so blank lines keep their
// vertical space even though they emit no instruction. Lines wider than the
// usable width are wrapped at word boundaries: the break index starts at a
// linear interpolation of the width overshoot and walks backward to the
// nearest whitespace. When no whitespace precedes it, the line is cut at a
// fixed character budget derived from the width of a single reference
// character, an approximation kept for variable-width fonts.
func Layout(text string, geometry Geometry, measure Measurer) ([]DrawInstruction, error) {
	if err := geometry.Validate(); err != nil {
		return nil, err
	}

	var result []DrawInstruction

	page := 0
	y := geometry.PageHeight - geometry.Margin

	usable := geometry.UsableWidth()

	for _, line := range strings.Split(text, "\n") {
		if y < geometry.Margin {
			page++
			y = geometry.PageHeight - geometry.Margin
		}

		remaining := []rune(line)

		for len(remaining) > 0 {
			width, err := measure.Width(string(remaining), geometry.Font, geometry.Size)

			if err != nil {
				return nil, &MeasurementError{Font: geometry.Font, Err: err}
			}

			if width <= usable {
				result = append(result, DrawInstruction{
					Page: page,

					X: geometry.Margin,
					Y: y,

					Text: string(remaining),
				})

				remaining = nil
				continue
			}

			cut := int(float64(len(remaining)) * usable / width)

			for cut > 0 && !unicode.IsSpace(remaining[cut]) {
				cut--
			}

			if cut == 0 {
				ref, err := measure.Width("x", geometry.Font, geometry.Size)

				if err != nil {
					return nil, &MeasurementError{Font: geometry.Font, Err: err}
				}

				cut = int(usable / ref)

				if cut < 1 {
					cut = 1
				}

				if cut > len(remaining) {
					cut = len(remaining)
				}
			}

			result = append(result, DrawInstruction{
				Page: page,

				X: geometry.Margin,
				Y: y,

				Text: string(remaining[:cut]),
			})

			remaining = []rune(strings.TrimLeftFunc(string(remaining[cut:]), unicode.IsSpace))

			y -= geometry.LineHeight

			if y < geometry.Margin {
				page++
				y = geometry.PageHeight - geometry.Margin
			}
		}

		y -= geometry.LineHeight
	}

	return result, nil
}
