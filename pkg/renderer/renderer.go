package renderer

import (
	"github.com/shivayapandey/invoice/pkg/pager"
)

// Renderer turns an instruction sequence into final document bytes.
type Renderer interface {
	Render(instructions []pager.DrawInstruction, geometry pager.Geometry) ([]byte, error)
}
