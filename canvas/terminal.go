/*
File    : gridplot/canvas/terminal.go

Terminal is the reference Canvas implementation: a character-raster
sink that renders directly to an io.Writer, colored through
github.com/fatih/color when the destination is a real terminal
(detected via github.com/mattn/go-isatty, fatih/color's own
transitive dependency) and left plain otherwise so redirected output
and test fixtures stay readable.

The transform math — scale, then rotate, then translate, cached and
only recomputed when origin/scale/rotation actually change — is
ported from original_source/Canvas.cpp's RegenerateTransformMatrix and
MultiplyMatrixMatrix, which compose exactly that order before every
Plot call. The Win32 window/device-context half of that file has no
analogue here; spec.md's Non-goals put the GUI surface out of scope,
so Terminal's canvas is a fixed character grid instead of a resizable
window.
*/
package canvas

import (
	"fmt"
	"io"
	"math"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Terminal rasterizes onto a fixed-size character grid, flushed to Out
// by Render. Model-space units map to grid cells through the current
// origin/scale/rotation the same way original_source/Canvas.cpp maps
// model space to device pixels.
type Terminal struct {
	Out    io.Writer
	Width  int
	Height int

	originX, originY float64
	scaleX, scaleY   float64
	rotation         float64
	pointSize        int
	pointColor       rgb
	backgroundColor  rgb

	matrixValid bool
	m00, m01    float64
	m10, m11    float64

	grid   []rgb
	filled []bool

	forceColor bool
}

type rgb struct{ r, g, b int }

// NewTerminal returns a Terminal with the given character grid size,
// scale 1, no rotation, origin at the grid center, and a 1-pixel point
// size — the same defaults original_source/Canvas.cpp installs before
// the first statement ever sets anything explicitly.
func NewTerminal(out io.Writer, width, height int) *Terminal {
	t := &Terminal{
		Out:        out,
		Width:      width,
		Height:     height,
		scaleX:     1,
		scaleY:     1,
		pointSize:  1,
		pointColor: rgb{255, 255, 255},
	}
	t.grid = make([]rgb, width*height)
	t.filled = make([]bool, width*height)
	return t
}

// ForceColor overrides the isatty auto-detection, for tests that want
// to assert on ANSI-colored output regardless of the test runner's
// own terminal.
func (t *Terminal) ForceColor(on bool) {
	t.forceColor = on
}

func (t *Terminal) colorEnabled() bool {
	if t.forceColor {
		return true
	}
	f, ok := t.Out.(interface{ Fd() uintptr })
	return ok && isatty.IsTerminal(f.Fd())
}

func (t *Terminal) SetOrigin(x, y float64) {
	t.originX, t.originY = x, y
	t.matrixValid = false
}

func (t *Terminal) SetScale(x, y float64) {
	t.scaleX, t.scaleY = x, y
	t.matrixValid = false
}

func (t *Terminal) SetRotation(radians float64) {
	t.rotation = radians
	t.matrixValid = false
}

func (t *Terminal) SetPointSize(pixels int) {
	t.pointSize = pixels
}

func (t *Terminal) SetPointColor(r, g, b int) {
	t.pointColor = rgb{r, g, b}
}

func (t *Terminal) SetBackgroundColor(r, g, b int) {
	t.backgroundColor = rgb{r, g, b}
}

// recomputeMatrix rebuilds the cached 2x2 scale-then-rotate matrix.
// Translation (origin) is applied separately in DrawPoint, exactly as
// original_source/Canvas.cpp keeps the rotation/scale matrix distinct
// from the origin offset it adds afterward.
func (t *Terminal) recomputeMatrix() {
	sin, cos := math.Sin(t.rotation), math.Cos(t.rotation)
	// scale first, then rotate: R * S
	t.m00 = cos * t.scaleX
	t.m01 = -sin * t.scaleY
	t.m10 = sin * t.scaleX
	t.m11 = cos * t.scaleY
	t.matrixValid = true
}

func (t *Terminal) transform(x, y float64) (float64, float64) {
	if !t.matrixValid {
		t.recomputeMatrix()
	}
	tx := t.m00*x + t.m01*y + t.originX
	ty := t.m10*x + t.m11*y + t.originY
	return tx, ty
}

func (t *Terminal) DrawPoint(x, y float64) {
	tx, ty := t.transform(x, y)

	cx := int(math.Round(tx)) + t.Width/2
	cy := t.Height/2 - int(math.Round(ty))

	half := t.pointSize / 2
	for dy := -half; dy <= half; dy++ {
		for dx := -half; dx <= half; dx++ {
			px, py := cx+dx, cy+dy
			if px < 0 || px >= t.Width || py < 0 || py >= t.Height {
				continue
			}
			idx := py*t.Width + px
			t.grid[idx] = t.pointColor
			t.filled[idx] = true
		}
	}
}

func (t *Terminal) Clear() {
	for i := range t.filled {
		t.filled[i] = false
	}
}

// Render flushes the grid as lines of text, one glyph per filled cell
// and a space otherwise, colored per-point when the destination is a
// real terminal.
func (t *Terminal) Render() {
	colored := t.colorEnabled()
	for row := 0; row < t.Height; row++ {
		for col := 0; col < t.Width; col++ {
			idx := row*t.Width + col
			if !t.filled[idx] {
				fmt.Fprint(t.Out, " ")
				continue
			}
			if colored {
				c := t.grid[idx]
				pc := color.RGB(c.r, c.g, c.b)
				pc.EnableColor()
				pc.Fprint(t.Out, "*")
			} else {
				fmt.Fprint(t.Out, "*")
			}
		}
		fmt.Fprintln(t.Out)
	}
}
