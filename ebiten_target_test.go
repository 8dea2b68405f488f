package willowui

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScissorBounds(t *testing.T) {
	screen := image.Rect(0, 0, 640, 480)
	tests := []struct {
		name    string
		scissor image.Rectangle
		want    image.Rectangle
	}{
		{"inside", image.Rect(10, 10, 100, 100), image.Rect(10, 10, 100, 100)},
		{"overhang", image.Rect(600, 400, 700, 500), image.Rect(600, 400, 640, 480)},
		{"off screen", image.Rect(700, 0, 800, 10), image.Rectangle{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := scissorBounds(screen, tt.scissor)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMatrixGeoM(t *testing.T) {
	m := Matrix{1, 2, 3, 4, 5, 6}
	g := matrixGeoM(m)

	for _, p := range [][2]float64{{0, 0}, {1, 0}, {0, 1}, {3, -2}} {
		wx, wy := m.Apply(p[0], p[1])
		gx, gy := g.Apply(p[0], p[1])
		assert.InDelta(t, wx, gx, epsilon)
		assert.InDelta(t, wy, gy, epsilon)
	}
}

func TestEbitenTargetState(t *testing.T) {
	target := NewEbitenTarget(nil)

	target.SetTransform(&Matrix{1, 0, 0, 1, 7, 8})
	g := target.GeoM()
	assert.Equal(t, 7.0, g.Element(0, 2))
	assert.Equal(t, 8.0, g.Element(1, 2))

	target.SetTransform(nil)
	g = target.GeoM()
	assert.Equal(t, 0.0, g.Element(0, 2))
	assert.Equal(t, 1.0, g.Element(0, 0))

	target.SetScissorRegion(1, 2, 3, 4)
	target.EnableScissorRegion(true)
	assert.Equal(t, image.Rect(1, 2, 4, 6), target.scissor)
	assert.True(t, target.clipped)
}

func TestEbitenTargetDrivenByContext(t *testing.T) {
	target := NewEbitenTarget(nil)
	ctx := NewContext(ContextConfig{RenderTarget: target})
	doc := ctx.CreateDocument("body")
	panel := newClipper("panel", 5, 5, 20, 20)
	item := NewElement("item")
	doc.AppendChild(panel)
	panel.AppendChild(item)

	var scissor image.Rectangle
	var clipped bool
	ctx.Render(func(e *Element, rt RenderTarget) {
		if e == item {
			scissor, clipped = target.scissor, target.clipped
		}
	})
	assert.True(t, clipped)
	assert.Equal(t, image.Rect(5, 5, 25, 25), scissor)
	assert.False(t, target.clipped)
}
