package willowui

// Box is an element's layout box following the CSS box model: a content
// size wrapped by padding, border and margin edges. Positions returned by a
// Box are relative to the top-left of its border area.
type Box struct {
	// Offset positions secondary boxes (inline fragments) relative to the
	// element's primary box. It is zero for the primary box.
	Offset Vec2

	content Vec2
	// edges holds widths for the padding, border and margin areas, indexed
	// by edgeIndex(area) then BoxEdge.
	edges [3][4]float64
}

// NewBox returns a box with the given content size and no edges.
func NewBox(content Vec2) Box {
	return Box{content: content}
}

// edgeIndex maps an area that carries edges to its slot in Box.edges.
func edgeIndex(area BoxArea) (int, bool) {
	switch area {
	case AreaPadding:
		return 0, true
	case AreaBorder:
		return 1, true
	case AreaMargin:
		return 2, true
	}
	return 0, false
}

// SetContent sets the size of the content area.
func (b *Box) SetContent(size Vec2) {
	b.content = size
}

// SetEdge sets the width of one side of area. Negative widths are clamped
// to zero. The content area has no edges; setting one is a no-op.
func (b *Box) SetEdge(area BoxArea, edge BoxEdge, width float64) {
	i, ok := edgeIndex(area)
	if !ok {
		return
	}
	if width < 0 {
		width = 0
	}
	b.edges[i][edge] = width
}

// Edge returns the width of one side of area.
func (b Box) Edge(area BoxArea, edge BoxEdge) float64 {
	i, ok := edgeIndex(area)
	if !ok {
		return 0
	}
	return b.edges[i][edge]
}

// Position returns the top-left corner of area relative to the border box.
func (b Box) Position(area BoxArea) Vec2 {
	switch area {
	case AreaMargin:
		return Vec2{-b.Edge(AreaMargin, EdgeLeft), -b.Edge(AreaMargin, EdgeTop)}
	case AreaPadding:
		return Vec2{b.Edge(AreaBorder, EdgeLeft), b.Edge(AreaBorder, EdgeTop)}
	case AreaContent:
		return Vec2{
			b.Edge(AreaBorder, EdgeLeft) + b.Edge(AreaPadding, EdgeLeft),
			b.Edge(AreaBorder, EdgeTop) + b.Edge(AreaPadding, EdgeTop),
		}
	}
	return Vec2{}
}

// Size returns the size of area: the content size grown by every edge from
// the content area out to area.
func (b Box) Size(area BoxArea) Vec2 {
	size := b.content
	for a := AreaContent; a > area; a-- {
		outer := a - 1
		size.X += b.Edge(outer, EdgeLeft) + b.Edge(outer, EdgeRight)
		size.Y += b.Edge(outer, EdgeTop) + b.Edge(outer, EdgeBottom)
	}
	return size
}
