package willowui

// defaultBoxBuilder builds boxes for elements whose context sets no builder.
var defaultBoxBuilder BoxBuilder = StyleBoxBuilder{}

func boxBuilderFor(e *Element) BoxBuilder {
	if ctx := e.Context(); ctx != nil && ctx.boxBuilder != nil {
		return ctx.boxBuilder
	}
	return defaultBoxBuilder
}

// BuildBox builds a box for e against containingBlock using the layout
// engine configured for e's context.
func BuildBox(containingBlock Vec2, e *Element, inline bool) Box {
	return boxBuilderFor(e).BuildBox(containingBlock, e, inline)
}

// BuildAndSizeBox builds e's box against its parent's content area and sets
// it as e's primary box. The containing block is the parent's content size
// less the space its own scrollbars reserve: a vertical scrollbar narrows
// it, a horizontal one shortens it.
//
// When e's computed height is not auto, the content height is forced to the
// containing block height.
//
// It returns false, leaving e untouched, when e has no parent.
func BuildAndSizeBox(e *Element) bool {
	parent := e.Parent()
	if parent == nil {
		return false
	}

	containingBlock := parent.Box().Size(AreaContent)
	containingBlock.X -= parent.ScrollbarSize(ScrollbarVertical)
	containingBlock.Y -= parent.ScrollbarSize(ScrollbarHorizontal)

	box := BuildBox(containingBlock, e, false)
	if !e.Style().Height.IsAuto() {
		box.SetContent(Vec2{box.Size(AreaContent).X, containingBlock.Y})
	}

	e.SetBox(box)
	return true
}

// PositionByAnchor sizes e and places it inside its parent's content area.
// offset is measured from the edges anchor selects: from the left/top by
// default, or in from the right and up from the bottom with AnchorRight and
// AnchorBottom, in which case it locates e's margin edge. It returns false
// when e has no parent.
func PositionByAnchor(e *Element, offset Vec2, anchor Anchor) bool {
	parent := e.Parent()
	if parent == nil {
		return false
	}

	BuildAndSizeBox(e)

	containingBlock := parent.Box().Size(AreaContent)
	marginBox := e.Box().Size(AreaMargin)

	resolved := offset
	if anchor&AnchorRight != 0 {
		resolved.X = containingBlock.X - (marginBox.X + offset.X)
	}
	if anchor&AnchorBottom != 0 {
		resolved.Y = containingBlock.Y - (marginBox.Y + offset.Y)
	}

	box := e.Box()
	relative := parent.Box().Position(AreaContent).Add(resolved)
	relative.X += box.Edge(AreaMargin, EdgeLeft)
	relative.Y += box.Edge(AreaMargin, EdgeTop)

	e.SetOffset(relative, parent)
	return true
}
