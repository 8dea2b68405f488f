package willowui

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// EbitenTarget is a RenderTarget that draws into an ebiten.Image. Scissoring
// is expressed as a SubImage of the screen and the transform as an
// ebiten.GeoM; draw code asks the target for both before issuing draws.
type EbitenTarget struct {
	screen  *ebiten.Image
	scissor image.Rectangle
	clipped bool
	geoM    ebiten.GeoM
}

// NewEbitenTarget returns a target drawing into screen.
func NewEbitenTarget(screen *ebiten.Image) *EbitenTarget {
	return &EbitenTarget{screen: screen}
}

// SetScreen swaps the destination image, e.g. once per frame in Draw.
// Scissor and transform state carry over.
func (t *EbitenTarget) SetScreen(screen *ebiten.Image) {
	t.screen = screen
}

// EnableScissorRegion implements RenderTarget.
func (t *EbitenTarget) EnableScissorRegion(enable bool) {
	t.clipped = enable
}

// SetScissorRegion implements RenderTarget.
func (t *EbitenTarget) SetScissorRegion(x, y, width, height int) {
	t.scissor = image.Rect(x, y, x+width, y+height)
}

// SetTransform implements RenderTarget.
func (t *EbitenTarget) SetTransform(m *Matrix) {
	if m == nil {
		t.geoM.Reset()
		return
	}
	t.geoM = matrixGeoM(*m)
}

// Image returns the image draws should go to: the screen, or the scissored
// part of it while scissoring is enabled.
func (t *EbitenTarget) Image() *ebiten.Image {
	if !t.clipped {
		return t.screen
	}
	return t.screen.SubImage(scissorBounds(t.screen.Bounds(), t.scissor)).(*ebiten.Image)
}

// GeoM returns the current transform.
func (t *EbitenTarget) GeoM() ebiten.GeoM {
	return t.geoM
}

// StrokeRect implements OutlineDrawer. The rectangle is transformed by the
// translation of the current transform only.
func (t *EbitenTarget) StrokeRect(r Rect, c Color, width float64) {
	tx := t.geoM.Element(0, 2)
	ty := t.geoM.Element(1, 2)
	vector.StrokeRect(t.Image(),
		float32(r.X+tx), float32(r.Y+ty), float32(r.Width), float32(r.Height),
		float32(width), c.RGBA(), false)
}

// scissorBounds clamps a scissor rectangle to the screen bounds. A scissor
// entirely off screen yields an empty rectangle, which draws nothing.
func scissorBounds(screen, scissor image.Rectangle) image.Rectangle {
	return scissor.Intersect(screen)
}

// matrixGeoM converts an affine Matrix to an ebiten.GeoM.
func matrixGeoM(m Matrix) ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, m[0])
	g.SetElement(1, 0, m[1])
	g.SetElement(0, 1, m[2])
	g.SetElement(1, 1, m[3])
	g.SetElement(0, 2, m[4])
	g.SetElement(1, 2, m[5])
	return g
}
