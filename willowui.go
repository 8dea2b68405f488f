package willowui

import "image/color"

// Vec2 is a 2D vector used for positions, offsets and sizes throughout the API.
type Vec2 struct {
	X, Y float64
}

// Add returns the component-wise sum of v and o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns the component-wise difference v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Color represents an RGBA color with 8-bit components. Not premultiplied.
type Color struct {
	R, G, B, A uint8
}

// RGBA converts c to the premultiplied color.RGBA used by Ebitengine.
func (c Color) RGBA() color.RGBA {
	a := uint16(c.A)
	return color.RGBA{
		R: uint8(uint16(c.R) * a / 255),
		G: uint8(uint16(c.G) * a / 255),
		B: uint8(uint16(c.B) * a / 255),
		A: c.A,
	}
}

// BoxArea selects one of the four nested areas of a Box.
type BoxArea uint8

const (
	AreaMargin  BoxArea = iota // outermost area, includes margins
	AreaBorder                 // border box; the origin for Box positions
	AreaPadding                // padding box
	AreaContent                // content box
)

// BoxEdge selects one side of a box area. Sides start at the top and travel
// clockwise.
type BoxEdge uint8

const (
	EdgeTop BoxEdge = iota
	EdgeRight
	EdgeBottom
	EdgeLeft
)

// Anchor is a bitmask that selects which edges of the containing block a
// position offset is measured from. The zero value measures from the top-left.
type Anchor uint8

const (
	AnchorRight  Anchor = 1 << iota // offset.X is measured in from the right edge
	AnchorBottom                    // offset.Y is measured up from the bottom edge
)

const (
	AnchorTop  Anchor = 0
	AnchorLeft Anchor = 0

	AnchorTopLeft     = AnchorTop | AnchorLeft
	AnchorTopRight    = AnchorTop | AnchorRight
	AnchorBottomLeft  = AnchorBottom | AnchorLeft
	AnchorBottomRight = AnchorBottom | AnchorRight
)

// ScrollbarAxis selects the vertical or horizontal scrollbar of an element.
type ScrollbarAxis uint8

const (
	ScrollbarVertical   ScrollbarAxis = iota // reduces the available width
	ScrollbarHorizontal                      // reduces the available height
)
