package renderer

import (
	"bytes"
	"errors"
	"sync"

	"github.com/shivayapandey/invoice/pkg/pager"

	"github.com/phpdave11/gofpdf"
)

var _ Renderer = &Document{}
var _ pager.Measurer = &Document{}

// Document renders draw instructions into a PDF and measures string widths
// with the same font metrics the output is drawn with, so layout and
// rendering cannot disagree.
type Document struct {
	mu sync.Mutex

	pdf *gofpdf.Fpdf
}

func New() *Document {
	return &Document{
		pdf: newFpdf(),
	}
}

func newFpdf() *gofpdf.Fpdf {
	pdf := gofpdf.New("P", "pt", "Letter", "")
	pdf.SetAutoPageBreak(false, 0)

	return pdf
}

// Width implements pager.Measurer using the core font metrics shipped with
// gofpdf. Unknown fonts have no metric tables and fail the layout pass.
func (d *Document) Width(text string, font string, size float64) (float64, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.pdf.SetFont(font, "", size)

	if err := d.pdf.Error(); err != nil {
		d.pdf = newFpdf()
		return 0, err
	}

	return d.pdf.GetStringWidth(text), nil
}

// Render draws the instruction sequence onto fresh pages. Instruction
// coordinates are bottom-up; gofpdf draws top-down, so y is flipped against
// the page height.
func (d *Document) Render(instructions []pager.DrawInstruction, geometry pager.Geometry) ([]byte, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size: gofpdf.SizeType{
			Wd: geometry.PageWidth,
			Ht: geometry.PageHeight,
		},
	})

	pdf.SetAutoPageBreak(false, 0)
	pdf.SetFont(geometry.Font, "", geometry.Size)

	page := -1

	for _, instruction := range instructions {
		if instruction.Page < page {
			return nil, errors.New("instruction sequence out of page order")
		}

		for page < instruction.Page {
			pdf.AddPage()
			page++
		}

		pdf.Text(instruction.X, geometry.PageHeight-instruction.Y, instruction.Text)
	}

	if page < 0 {
		pdf.AddPage()
	}

	var buf bytes.Buffer

	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
