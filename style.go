package willowui

// Unit specifies how a Length is interpreted.
type Unit uint8

const (
	UnitAuto    Unit = iota // resolved by layout
	UnitPx                  // absolute pixels
	UnitPercent             // percentage of the containing block
)

// Length is a computed style dimension that can be fixed, a percentage, or auto.
type Length struct {
	Amount float64
	Unit   Unit
}

// Auto returns a Length that layout resolves from context.
func Auto() Length {
	return Length{Unit: UnitAuto}
}

// Px returns an absolute Length in pixels.
func Px(n float64) Length {
	return Length{Amount: n, Unit: UnitPx}
}

// Percent returns a Length relative to the containing block on a 0-100 scale.
func Percent(p float64) Length {
	return Length{Amount: p, Unit: UnitPercent}
}

// IsAuto reports whether l is the automatic keyword.
func (l Length) IsAuto() bool {
	return l.Unit == UnitAuto
}

// Resolve returns the length in pixels against base. Auto resolves to fallback.
func (l Length) Resolve(base, fallback float64) float64 {
	switch l.Unit {
	case UnitPx:
		return l.Amount
	case UnitPercent:
		return base * l.Amount / 100
	default:
		return fallback
	}
}

// Style holds the computed values box construction reads. The style cascade
// that produces them lives outside this package.
type Style struct {
	Width, Height Length
	// Margin, Padding and Border are indexed by BoxEdge.
	Margin  [4]Length
	Padding [4]Length
	Border  [4]Length
}

// DefaultStyle returns a style with auto width and height and no edges.
func DefaultStyle() Style {
	return Style{Width: Auto(), Height: Auto()}
}

// BoxBuilder resolves an element's box against a containing block. It is the
// hook for the layout engine; StyleBoxBuilder is used when none is set.
type BoxBuilder interface {
	BuildBox(containingBlock Vec2, e *Element, inline bool) Box
}

// StyleBoxBuilder builds boxes directly from an element's computed Style.
// Percentages of every edge resolve against the containing block width, as
// in CSS. An auto width fills the containing block; an auto height is zero
// until content is laid out.
type StyleBoxBuilder struct{}

// BuildBox implements BoxBuilder.
func (StyleBoxBuilder) BuildBox(containingBlock Vec2, e *Element, inline bool) Box {
	st := e.Style()
	cw := containingBlock.X

	var box Box
	for edge := EdgeTop; edge <= EdgeLeft; edge++ {
		box.SetEdge(AreaPadding, edge, st.Padding[edge].Resolve(cw, 0))
		box.SetEdge(AreaBorder, edge, st.Border[edge].Resolve(cw, 0))
		box.SetEdge(AreaMargin, edge, st.Margin[edge].Resolve(cw, 0))
	}

	horizontal := func(area BoxArea) float64 {
		return box.Edge(area, EdgeLeft) + box.Edge(area, EdgeRight)
	}

	var content Vec2
	if st.Width.IsAuto() {
		if !inline {
			content.X = cw - horizontal(AreaMargin) - horizontal(AreaBorder) - horizontal(AreaPadding)
		}
	} else {
		content.X = st.Width.Resolve(cw, 0)
	}
	content.Y = st.Height.Resolve(containingBlock.Y, 0)

	if content.X < 0 {
		content.X = 0
	}
	if content.Y < 0 {
		content.Y = 0
	}
	box.SetContent(content)
	return box
}
