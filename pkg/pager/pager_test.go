package pager_test

import (
	"errors"
	"testing"

	"github.com/shivayapandey/invoice/pkg/pager"

	"github.com/stretchr/testify/require"
)

// fixedMeasurer gives every rune the same width, which makes wrap points
// easy to predict.
type fixedMeasurer struct {
	charWidth float64
}

func (m fixedMeasurer) Width(text string, font string, size float64) (float64, error) {
	return float64(len([]rune(text))) * m.charWidth, nil
}

type failingMeasurer struct {
}

func (m failingMeasurer) Width(text string, font string, size float64) (float64, error) {
	return 0, errors.New("font metrics unavailable")
}

func testGeometry() pager.Geometry {
	return pager.Geometry{
		PageWidth:  200,
		PageHeight: 100,

		Margin:     10,
		LineHeight: 14,

		Font: "Helvetica",
		Size: 10,
	}
}

func TestLayoutShortLine(t *testing.T) {
	geometry := testGeometry()

	result, err := pager.Layout("hello", geometry, fixedMeasurer{charWidth: 10})
	require.NoError(t, err)

	require.Len(t, result, 1)
	require.Equal(t, 0, result[0].Page)
	require.Equal(t, geometry.Margin, result[0].X)
	require.Equal(t, geometry.PageHeight-geometry.Margin, result[0].Y)
	require.Equal(t, "hello", result[0].Text)
}

func TestLayoutInvalidGeometry(t *testing.T) {
	geometry := testGeometry()
	geometry.Margin = 120

	_, err := pager.Layout("hello", geometry, fixedMeasurer{charWidth: 10})
	require.ErrorIs(t, err, pager.ErrInvalidGeometry)
}

func TestLayoutBounds(t *testing.T) {
	geometry := testGeometry()

	text := "a short line\nthis line is long enough that it must wrap onto several segments before it fits\n\nanother one"

	result, err := pager.Layout(text, geometry, fixedMeasurer{charWidth: 10})
	require.NoError(t, err)
	require.NotEmpty(t, result)

	page := 0

	for _, instruction := range result {
		require.GreaterOrEqual(t, instruction.Page, page)
		page = instruction.Page

		require.GreaterOrEqual(t, instruction.X, geometry.Margin)
		require.LessOrEqual(t, instruction.X, geometry.PageWidth-geometry.Margin)
		require.GreaterOrEqual(t, instruction.Y, geometry.Margin)
		require.LessOrEqual(t, instruction.Y, geometry.PageHeight-geometry.Margin)
	}
}

func TestLayoutIdempotent(t *testing.T) {
	geometry := testGeometry()

	text := "first line\nsecond line that needs wrapping because it is rather long indeed\nthird"

	first, err := pager.Layout(text, geometry, fixedMeasurer{charWidth: 7})
	require.NoError(t, err)

	second, err := pager.Layout(text, geometry, fixedMeasurer{charWidth: 7})
	require.NoError(t, err)

	require.Equal(t, first, second)
}

func TestLayoutBlankLinePreserved(t *testing.T) {
	geometry := testGeometry()

	result, err := pager.Layout("A\n\nB", geometry, fixedMeasurer{charWidth: 10})
	require.NoError(t, err)

	require.Len(t, result, 2)
	require.Equal(t, "A", result[0].Text)
	require.Equal(t, "B", result[1].Text)

	// the blank line consumes one line height even though it draws nothing
	require.Equal(t, result[0].Y-2*geometry.LineHeight, result[1].Y)
}

func TestLayoutPageOverflow(t *testing.T) {
	geometry := testGeometry()
	geometry.PageHeight = geometry.Margin + 3*geometry.LineHeight

	result, err := pager.Layout("one\ntwo\nthree\nfour", geometry, fixedMeasurer{charWidth: 1})
	require.NoError(t, err)

	require.Len(t, result, 4)
	require.Equal(t, 0, result[0].Page)
	require.Equal(t, 0, result[1].Page)
	require.Equal(t, 0, result[2].Page)
	require.Equal(t, 1, result[3].Page)

	require.Equal(t, result[0].Y, result[3].Y)
}

func TestLayoutWrapAtWhitespace(t *testing.T) {
	geometry := testGeometry()

	// usable width is 180, so 18 characters fit per segment
	result, err := pager.Layout("aaaa bbbb cccc dddd", geometry, fixedMeasurer{charWidth: 10})
	require.NoError(t, err)

	require.Len(t, result, 2)
	require.Equal(t, "aaaa bbbb cccc", result[0].Text)
	require.Equal(t, "dddd", result[1].Text)
}

func TestLayoutWrapWithoutWhitespace(t *testing.T) {
	geometry := testGeometry()

	// no whitespace before the interpolated break: fall back to the
	// fixed character budget of usable / width("x") = 18
	result, err := pager.Layout("aaaaaaaaaaaaaaaaaaaaaaaa", geometry, fixedMeasurer{charWidth: 10})
	require.NoError(t, err)

	require.Len(t, result, 2)
	require.Equal(t, "aaaaaaaaaaaaaaaaaa", result[0].Text)
	require.Equal(t, "aaaaaa", result[1].Text)
}

func TestLayoutMeasurementError(t *testing.T) {
	geometry := testGeometry()

	_, err := pager.Layout("hello", geometry, failingMeasurer{})

	var merr *pager.MeasurementError
	require.ErrorAs(t, err, &merr)
	require.Equal(t, geometry.Font, merr.Font)
}

func TestLayoutEmptyText(t *testing.T) {
	geometry := testGeometry()

	result, err := pager.Layout("", geometry, fixedMeasurer{charWidth: 10})
	require.NoError(t, err)
	require.Empty(t, result)
}
